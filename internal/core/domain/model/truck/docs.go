// Package truck contains the Truck entity and its Status.
//
// A truck is one of the two scarce resources a shipment needs. Shipments assign
// a truck while planned, reserve it on start (Available -> OnRoute) and release it
// on completion (OnRoute -> Available). Operators may override the status directly,
// for example to send a truck to Maintenance.
package truck

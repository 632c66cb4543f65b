// Package shipment contains the Shipment aggregate, its Cargo value object and
// its lifecycle Status.
//
// The aggregate enforces its own state machine and the both-or-neither rule for
// truck and driver references. Rules that span several aggregates, such as
// capacity checks and resource reservation, live in the services package.
package shipment

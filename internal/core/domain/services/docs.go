// Package services provides domain services for rules that do not belong to a
// single aggregate.
//
// The package includes:
//   - CostCalculator: prices a shipment from distance and cargo weight using exact decimals
//   - ResourceDispatcher: assigns, reserves and releases trucks and drivers for shipments
package services

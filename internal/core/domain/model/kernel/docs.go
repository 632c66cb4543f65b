// Package kernel provides the domain primitives shared by trucks, drivers and shipments.
//
// The package includes:
//   - ID: the store-assigned integer identifier (zero means "unassigned")
//   - Money: a fixed-point monetary amount backed by shopspring/decimal
//   - Date: a calendar day used for date-only comparisons of planned dates
//   - OrderNumber: a UUID-based external shipment reference
//
// All primitives are immutable values and safe for concurrent use.
package kernel

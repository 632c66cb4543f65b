// Package driver contains the Driver entity. A driver is available on creation,
// becomes unavailable when a shipment starts and available again on completion.
package driver

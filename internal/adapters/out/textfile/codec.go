package textfile

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
)

const (
	sectionTrucks    = "[TRUCKS]"
	sectionDrivers   = "[DRIVERS]"
	sectionShipments = "[SHIPMENTS]"

	truckFields    = 5
	driverFields   = 4
	shipmentFields = 13
)

func encode(w io.Writer, s ports.Snapshot) error {
	cw := csv.NewWriter(w)

	write := func(record ...string) {
		// csv.Writer keeps the first error; it is read back by Error below.
		_ = cw.Write(record)
	}

	write(sectionTrucks)
	for _, t := range s.Trucks {
		write(
			t.ID().String(),
			t.Registration(),
			formatFloat(t.Capacity()),
			formatFloat(t.FuelConsumption()),
			t.Status().String(),
		)
	}

	write(sectionDrivers)
	for _, d := range s.Drivers {
		write(
			d.ID().String(),
			d.FullName(),
			d.License(),
			strconv.FormatBool(d.IsAvailable()),
		)
	}

	write(sectionShipments)
	for _, sh := range s.Shipments {
		cargo := sh.Cargo()
		write(
			sh.ID().String(),
			sh.OrderNumber().String(),
			cargo.Description(),
			formatFloat(cargo.Weight()),
			strconv.FormatBool(cargo.Refrigerated()),
			formatOptionalID(sh.TruckID()),
			formatOptionalID(sh.DriverID()),
			formatFloat(sh.Distance()),
			sh.PlannedDate().Format(time.RFC3339Nano),
			formatOptionalTime(sh.DepartureTime()),
			formatOptionalTime(sh.ArrivalTime()),
			sh.Status().String(),
			sh.Cost().String(),
		)
	}

	cw.Flush()
	return cw.Error()
}

func decode(r io.Reader) (ports.Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var (
		snapshot ports.Snapshot
		section  string
	)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return snapshot, nil
		}
		if err != nil {
			return ports.Snapshot{}, err
		}

		line, _ := cr.FieldPos(0)

		if len(record) == 1 && isSection(record[0]) {
			section = strings.TrimSpace(record[0])
			continue
		}

		switch section {
		case sectionTrucks:
			t, err := decodeTruck(record)
			if err != nil {
				return ports.Snapshot{}, errors.Wrapf(err, "line %d", line)
			}
			snapshot.Trucks = append(snapshot.Trucks, t)
		case sectionDrivers:
			d, err := decodeDriver(record)
			if err != nil {
				return ports.Snapshot{}, errors.Wrapf(err, "line %d", line)
			}
			snapshot.Drivers = append(snapshot.Drivers, d)
		case sectionShipments:
			s, err := decodeShipment(record)
			if err != nil {
				return ports.Snapshot{}, errors.Wrapf(err, "line %d", line)
			}
			snapshot.Shipments = append(snapshot.Shipments, s)
		default:
			return ports.Snapshot{}, errors.Errorf("line %d: record outside of a section", line)
		}
	}
}

func isSection(field string) bool {
	switch strings.TrimSpace(field) {
	case sectionTrucks, sectionDrivers, sectionShipments:
		return true
	}
	return false
}

func decodeTruck(record []string) (*truck.Truck, error) {
	if len(record) != truckFields {
		return nil, errors.Errorf("truck: expected %d fields, got %d", truckFields, len(record))
	}

	id, err := kernel.ParseID(record[0])
	if err != nil {
		return nil, errors.Wrap(err, "truck id")
	}
	capacity, err := parseFloat(record[2])
	if err != nil {
		return nil, errors.Wrap(err, "truck capacity")
	}
	fuel, err := parseFloat(record[3])
	if err != nil {
		return nil, errors.Wrap(err, "truck fuel consumption")
	}
	status, err := truck.ParseStatus(record[4])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(id, record[1], capacity, fuel, status)
}

func decodeDriver(record []string) (*driver.Driver, error) {
	if len(record) != driverFields {
		return nil, errors.Errorf("driver: expected %d fields, got %d", driverFields, len(record))
	}

	id, err := kernel.ParseID(record[0])
	if err != nil {
		return nil, errors.Wrap(err, "driver id")
	}
	available, err := strconv.ParseBool(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, errors.Wrap(err, "driver availability")
	}

	return driver.RestoreDriver(id, record[1], record[2], available)
}

func decodeShipment(record []string) (*shipment.Shipment, error) {
	if len(record) != shipmentFields {
		return nil, errors.Errorf("shipment: expected %d fields, got %d", shipmentFields, len(record))
	}

	id, err := kernel.ParseID(record[0])
	if err != nil {
		return nil, errors.Wrap(err, "shipment id")
	}
	orderNumber, err := kernel.OrderNumberFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, errors.Wrap(err, "order number")
	}
	weight, err := parseFloat(record[3])
	if err != nil {
		return nil, errors.Wrap(err, "weight")
	}
	refrigerated, err := strconv.ParseBool(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, errors.Wrap(err, "refrigerated")
	}
	cargo, err := shipment.NewCargo(record[2], weight, refrigerated)
	if err != nil {
		return nil, err
	}
	truckID, err := parseOptionalID(record[5])
	if err != nil {
		return nil, errors.Wrap(err, "truck id")
	}
	driverID, err := parseOptionalID(record[6])
	if err != nil {
		return nil, errors.Wrap(err, "driver id")
	}
	distance, err := parseFloat(record[7])
	if err != nil {
		return nil, errors.Wrap(err, "distance")
	}
	planned, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(record[8]))
	if err != nil {
		return nil, errors.Wrap(err, "planned date")
	}
	departure, err := parseOptionalTime(record[9])
	if err != nil {
		return nil, errors.Wrap(err, "departure time")
	}
	arrival, err := parseOptionalTime(record[10])
	if err != nil {
		return nil, errors.Wrap(err, "arrival time")
	}
	status, err := shipment.ParseStatus(record[11])
	if err != nil {
		return nil, err
	}
	cost, err := kernel.MoneyFromString(strings.TrimSpace(record[12]))
	if err != nil {
		return nil, errors.Wrap(err, "cost")
	}

	return shipment.RestoreShipment(
		id, orderNumber, cargo, truckID, driverID, distance, planned, departure, arrival, status, cost,
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatOptionalID(id *kernel.ID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func parseOptionalID(s string) (*kernel.ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.ParseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil //nolint:nilnil // absent timestamp
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

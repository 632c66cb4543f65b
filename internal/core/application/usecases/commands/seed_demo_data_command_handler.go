package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"
)

type demoTruck struct {
	registration string
	capacity     float64
	fuel         float64
	status       truck.Status
}

type demoDriver struct {
	name      string
	license   string
	available bool
}

type demoShipment struct {
	description  string
	weight       float64
	refrigerated bool
	distance     float64
	dayOffset    int
}

var demoTrucks = []demoTruck{
	{"AA1001-BC", 10, 24, truck.Available},
	{"AA1002-BC", 20, 28, truck.Available},
	{"AA1003-BC", 15, 22, truck.Available},
	{"AA1004-BC", 25, 30, truck.Available},
	{"AA1005-BC", 8, 20, truck.Available},
	{"AA1006-BC", 12, 25, truck.Available},
	{"AA1007-BC", 18, 27, truck.Available},
	{"AA1008-BC", 5, 18, truck.Maintenance},
	{"AA1009-BC", 30, 32, truck.Available},
	{"AA1010-BC", 22, 29, truck.Available},
}

var demoDrivers = []demoDriver{
	{"Ivan Petrov", "DRV-001", true},
	{"Petr Ivanov", "DRV-002", true},
	{"Sergey Sidorov", "DRV-003", false},
	{"Alexey Smirnov", "DRV-004", true},
	{"Dmitry Kozlov", "DRV-005", true},
	{"Mikhail Novikov", "DRV-006", true},
	{"Andrey Morozov", "DRV-007", true},
	{"Vladimir Pavlov", "DRV-008", true},
	{"Nikolay Volkov", "DRV-009", false},
	{"Oleg Sokolov", "DRV-010", true},
}

var demoShipments = []demoShipment{
	{"Steel coils", 8.5, false, 320, 0},
	{"Frozen fish", 6.0, true, 150, 1},
	{"Wooden boards", 12.0, false, 450, 2},
	{"Medical equipment", 3.5, false, 280, -1},
	{"Vegetables and fruit", 9.0, true, 200, 3},
	{"Building materials", 15.0, false, 380, 4},
	{"Electronics", 4.5, false, 520, -2},
	{"Chemicals", 7.0, false, 300, 5},
	{"Clothing", 5.5, false, 250, 6},
	{"Furniture", 11.0, false, 400, 7},
}

// SeedDemoDataCommandHandler adds the demonstration data in one transaction,
// only when the truck store is empty.
type SeedDemoDataCommandHandler struct {
	uowFactory UoWFactory
	calculator services.CostCalculator
	now        Clock
}

func NewSeedDemoDataCommandHandler(uowFactory UoWFactory, now Clock) SeedDemoDataCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SeedDemoDataCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewCostCalculator(),
		now:        now,
	}
}

// Handle reports whether anything was seeded.
func (h SeedDemoDataCommandHandler) Handle(ctx context.Context, cmd SeedDemoDataCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.TruckRepository().GetAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	if err = h.seedTrucks(ctx, uow); err != nil {
		return false, err
	}
	if err = h.seedDrivers(ctx, uow); err != nil {
		return false, err
	}
	if err = h.seedShipments(ctx, uow); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (h SeedDemoDataCommandHandler) seedTrucks(ctx context.Context, uow UoW) error {
	repo := uow.TruckRepository()
	for _, demo := range demoTrucks {
		t, err := truck.NewTruck(demo.registration, demo.capacity, demo.fuel)
		if err != nil {
			return err
		}
		if err = t.ChangeStatus(demo.status); err != nil {
			return err
		}
		if _, err = repo.Add(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (h SeedDemoDataCommandHandler) seedDrivers(ctx context.Context, uow UoW) error {
	repo := uow.DriverRepository()
	for _, demo := range demoDrivers {
		d, err := driver.NewDriver(demo.name, demo.license)
		if err != nil {
			return err
		}
		d.SetAvailable(demo.available)
		if _, err = repo.Add(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (h SeedDemoDataCommandHandler) seedShipments(ctx context.Context, uow UoW) error {
	now := h.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	repo := uow.ShipmentRepository()
	for _, demo := range demoShipments {
		cargo, err := shipment.NewCargo(demo.description, demo.weight, demo.refrigerated)
		if err != nil {
			return err
		}
		cost := h.calculator.Calculate(demo.distance, demo.weight)
		s, err := shipment.NewShipment(cargo, demo.distance, today.AddDate(0, 0, demo.dayOffset), cost)
		if err != nil {
			return err
		}
		if _, err = repo.Add(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

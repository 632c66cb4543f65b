package memory

import (
	"context"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
)

// Registry owns the three entity stores and the engine lock that serialises
// every unit of work, snapshot and restore.
type Registry struct {
	lock      chan struct{}
	trucks    *Store[*truck.Truck]
	drivers   *Store[*driver.Driver]
	shipments *Store[*shipment.Shipment]
}

func NewRegistry() *Registry {
	return &Registry{
		lock:      make(chan struct{}, 1),
		trucks:    NewStore[*truck.Truck]("truck"),
		drivers:   NewStore[*driver.Driver]("driver"),
		shipments: NewStore[*shipment.Shipment]("shipment"),
	}
}

func (r *Registry) Trucks() *Store[*truck.Truck] {
	return r.trucks
}

func (r *Registry) Drivers() *Store[*driver.Driver] {
	return r.drivers
}

func (r *Registry) Shipments() *Store[*shipment.Shipment] {
	return r.shipments
}

// Snapshot copies all three stores at one consistent point in time.
func (r *Registry) Snapshot(ctx context.Context) (ports.Snapshot, error) {
	if err := r.acquire(ctx); err != nil {
		return ports.Snapshot{}, err
	}
	defer r.release()

	return ports.Snapshot{
		Trucks:    r.trucks.GetAll(),
		Drivers:   r.drivers.GetAll(),
		Shipments: r.shipments.GetAll(),
	}, nil
}

// Restore bulk-loads a snapshot into the stores, replacing their content.
// Each identifier counter resumes after the largest identifier in the snapshot.
// Nothing is replaced unless all three collections load.
func (r *Registry) Restore(ctx context.Context, s ports.Snapshot) error {
	if err := r.acquire(ctx); err != nil {
		return err
	}
	defer r.release()

	trucks := NewStore[*truck.Truck](r.trucks.name)
	drivers := NewStore[*driver.Driver](r.drivers.name)
	shipments := NewStore[*shipment.Shipment](r.shipments.name)

	if err := trucks.LoadData(s.Trucks, maxID(s.Trucks)); err != nil {
		return err
	}
	if err := drivers.LoadData(s.Drivers, maxID(s.Drivers)); err != nil {
		return err
	}
	if err := shipments.LoadData(s.Shipments, maxID(s.Shipments)); err != nil {
		return err
	}

	r.trucks.replace(trucks)
	r.drivers.replace(drivers)
	r.shipments.replace(shipments)
	return nil
}

func (r *Registry) acquire(ctx context.Context) error {
	select {
	case r.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Registry) release() {
	<-r.lock
}

func maxID[T Record[T]](records []T) kernel.ID {
	var m kernel.ID
	for _, r := range records {
		m = max(m, r.ID())
	}
	return m
}

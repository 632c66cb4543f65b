package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/memory"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
)

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

type funcShipmentUoWFactory func() commands.ShipmentUoW

func (f funcShipmentUoWFactory) Create() commands.ShipmentUoW { return f() }

type funcTruckUoWFactory func() commands.TruckUoW

func (f funcTruckUoWFactory) Create() commands.TruckUoW { return f() }

type funcDriverUoWFactory func() commands.DriverUoW

func (f funcDriverUoWFactory) Create() commands.DriverUoW { return f() }

type discardStore struct{ saved int }

func (d *discardStore) Load(_ context.Context) (ports.Snapshot, error) { return ports.Snapshot{}, nil }

func (d *discardStore) Save(_ context.Context, _ ports.Snapshot) error {
	d.saved++
	return nil
}

func newTestAPI(t *testing.T) (*echo.Echo, *discardStore) {
	t.Helper()

	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)
	clock := func() time.Time { return time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC) }

	uow := funcUoWFactory(func() commands.UoW { return factory.Create() })
	shipmentUoW := funcShipmentUoWFactory(func() commands.ShipmentUoW { return factory.Create() })
	truckUoW := funcTruckUoWFactory(func() commands.TruckUoW { return factory.Create() })
	driverUoW := funcDriverUoWFactory(func() commands.DriverUoW { return factory.Create() })

	trucks := memory.NewTruckRepository(registry.Trucks())
	drivers := memory.NewDriverRepository(registry.Drivers())
	shipments := memory.NewShipmentRepository(registry.Shipments())
	store := &discardStore{}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateShipment:           commands.NewCreateShipmentCommandHandler(shipmentUoW),
		AssignResources:          commands.NewAssignResourcesCommandHandler(uow),
		StartShipment:            commands.NewStartShipmentCommandHandler(uow, clock),
		CompleteShipment:         commands.NewCompleteShipmentCommandHandler(uow, clock),
		CancelShipment:           commands.NewCancelShipmentCommandHandler(shipmentUoW),
		AddTruck:                 commands.NewAddTruckCommandHandler(truckUoW),
		DeleteTruck:              commands.NewDeleteTruckCommandHandler(truckUoW),
		ChangeTruckStatus:        commands.NewChangeTruckStatusCommandHandler(truckUoW),
		AddDriver:                commands.NewAddDriverCommandHandler(driverUoW),
		DeleteDriver:             commands.NewDeleteDriverCommandHandler(driverUoW),
		ChangeDriverAvailability: commands.NewChangeDriverAvailabilityCommandHandler(driverUoW),
		SaveSnapshot:             commands.NewSaveSnapshotCommandHandler(registry, store),
		GetShipment:              queries.NewGetShipmentQueryHandler(shipments),
		GetAllShipments:          queries.NewGetAllShipmentsQueryHandler(shipments),
		GetShipmentsByPeriod:     queries.NewGetShipmentsByPeriodQueryHandler(shipments),
		GetAllTrucks:             queries.NewGetAllTrucksQueryHandler(trucks),
		GetAvailableTrucks:       queries.NewGetAvailableTrucksQueryHandler(trucks),
		GetAllDrivers:            queries.NewGetAllDriversQueryHandler(drivers),
		GetAvailableDrivers:      queries.NewGetAvailableDriversQueryHandler(drivers),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return httpadapter.NewEcho(server, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := do(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestShipmentLifecycle(t *testing.T) {
	e, _ := newTestAPI(t)

	// Given a truck, a driver and a shipment
	rec := do(t, e, http.MethodPost, "/api/v1/trucks",
		`{"registration":"AA1001-BC","capacity":10,"fuel_consumption":24}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	truck := decode[httpadapter.Truck](t, rec)
	assert.Equal(t, "Available", truck.Status)

	rec = do(t, e, http.MethodPost, "/api/v1/drivers", `{"full_name":"Ivan Petrov","license":"DRV-001"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	driver := decode[httpadapter.Driver](t, rec)

	rec = do(t, e, http.MethodPost, "/api/v1/shipments",
		`{"description":"Steel coils","weight":8.5,"distance":320,"planned_date":"2025-06-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	shipment := decode[httpadapter.Shipment](t, rec)
	assert.Equal(t, "1744.00", shipment.Cost)
	assert.Equal(t, "Planned", shipment.Status)
	assert.NotEmpty(t, shipment.OrderNumber)

	// When it is assigned, started and completed
	base := "/api/v1/shipments/" + shipment.ID.String()
	rec = do(t, e, http.MethodPost, base+"/assign",
		`{"truck_id":`+truck.ID.String()+`,"driver_id":`+driver.ID.String()+`}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, base+"/start", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/trucks/available", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]httpadapter.Truck](t, rec))

	rec = do(t, e, http.MethodPost, base+"/start", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e, http.MethodPost, base+"/complete", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// Then
	rec = do(t, e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	done := decode[httpadapter.Shipment](t, rec)
	assert.Equal(t, "Delivered", done.Status)
	require.NotNil(t, done.ArrivalTime)
	require.NotNil(t, done.TruckID)
	assert.Equal(t, truck.ID, *done.TruckID)

	rec = do(t, e, http.MethodGet, "/api/v1/drivers/available", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpadapter.Driver](t, rec), 1)
}

func TestErrorMapping(t *testing.T) {
	e, _ := newTestAPI(t)
	do(t, e, http.MethodPost, "/api/v1/trucks", `{"registration":"AA1008-BC","capacity":5,"fuel_consumption":18}`)
	do(t, e, http.MethodPost, "/api/v1/drivers", `{"full_name":"Ivan Petrov","license":"DRV-001"}`)
	do(t, e, http.MethodPost, "/api/v1/shipments",
		`{"description":"Frozen fish","weight":6,"refrigerated":true,"distance":150,"planned_date":"2025-06-11"}`)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"unknown shipment", http.MethodGet, "/api/v1/shipments/42", "", http.StatusNotFound},
		{"malformed id", http.MethodGet, "/api/v1/shipments/abc", "", http.StatusBadRequest},
		{"zero id", http.MethodPost, "/api/v1/shipments/0/start", "", http.StatusBadRequest},
		{"negative weight", http.MethodPost, "/api/v1/shipments",
			`{"weight":-1,"distance":10,"planned_date":"2025-06-10"}`, http.StatusBadRequest},
		{"missing planned date", http.MethodPost, "/api/v1/shipments",
			`{"weight":1,"distance":10}`, http.StatusBadRequest},
		{"broken json", http.MethodPost, "/api/v1/trucks", `{"registration":`, http.StatusBadRequest},
		{"over capacity", http.MethodPost, "/api/v1/shipments/1/assign",
			`{"truck_id":1,"driver_id":1}`, http.StatusConflict},
		{"missing assignment", http.MethodPost, "/api/v1/shipments/1/start", "", http.StatusConflict},
		{"complete planned", http.MethodPost, "/api/v1/shipments/1/complete", "", http.StatusConflict},
		{"unknown truck status", http.MethodPut, "/api/v1/trucks/1/status",
			`{"status":"Parked"}`, http.StatusBadRequest},
		{"availability omitted", http.MethodPut, "/api/v1/drivers/1/availability", `{}`, http.StatusBadRequest},
		{"negative min capacity", http.MethodGet, "/api/v1/trucks/available?min_capacity=-1", "", http.StatusBadRequest},
		{"report window reversed", http.MethodGet,
			"/api/v1/shipments/report?from=2025-06-12&to=2025-06-10", "", http.StatusBadRequest},
		{"report bad date", http.MethodGet, "/api/v1/shipments/report?from=June", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			body := decode[httpadapter.Error](t, rec)
			assert.Equal(t, tt.want, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestShipmentsReport(t *testing.T) {
	e, _ := newTestAPI(t)
	for _, day := range []string{"2025-06-12", "2025-06-09", "2025-06-10", "2025-06-13"} {
		rec := do(t, e, http.MethodPost, "/api/v1/shipments",
			`{"weight":1,"distance":10,"planned_date":"`+day+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, e, http.MethodGet, "/api/v1/shipments/report?from=2025-06-10&to=2025-06-12", "")

	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[[]httpadapter.Shipment](t, rec)
	require.Len(t, report, 2)
	assert.Equal(t, "2025-06-10", report[0].PlannedDate.Format(time.DateOnly))
	assert.Equal(t, "2025-06-12", report[1].PlannedDate.Format(time.DateOnly))
}

func TestOperatorEndpoints(t *testing.T) {
	e, store := newTestAPI(t)
	do(t, e, http.MethodPost, "/api/v1/trucks", `{"registration":"AA1001-BC","capacity":10,"fuel_consumption":24}`)
	do(t, e, http.MethodPost, "/api/v1/drivers", `{"full_name":"Ivan Petrov","license":"DRV-001"}`)

	rec := do(t, e, http.MethodPut, "/api/v1/trucks/1/status", `{"status":"Maintenance"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/trucks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	trucks := decode[[]httpadapter.Truck](t, rec)
	require.Len(t, trucks, 1)
	assert.Equal(t, "Maintenance", trucks[0].Status)

	rec = do(t, e, http.MethodPut, "/api/v1/drivers/1/availability", `{"available":false}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = do(t, e, http.MethodGet, "/api/v1/drivers", "")
	drivers := decode[[]httpadapter.Driver](t, rec)
	require.Len(t, drivers, 1)
	assert.False(t, drivers[0].Available)

	rec = do(t, e, http.MethodDelete, "/api/v1/trucks/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, e, http.MethodDelete, "/api/v1/drivers/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, e, http.MethodGet, "/api/v1/trucks", "")
	assert.Empty(t, decode[[]httpadapter.Truck](t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/snapshot", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, store.saved)
}

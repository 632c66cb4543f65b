// Package http exposes the freight engine over a JSON API built on echo.
package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	CreateShipment           commands.CreateShipmentCommandHandler
	AssignResources          commands.AssignResourcesCommandHandler
	StartShipment            commands.StartShipmentCommandHandler
	CompleteShipment         commands.CompleteShipmentCommandHandler
	CancelShipment           commands.CancelShipmentCommandHandler
	AddTruck                 commands.AddTruckCommandHandler
	DeleteTruck              commands.DeleteTruckCommandHandler
	ChangeTruckStatus        commands.ChangeTruckStatusCommandHandler
	AddDriver                commands.AddDriverCommandHandler
	DeleteDriver             commands.DeleteDriverCommandHandler
	ChangeDriverAvailability commands.ChangeDriverAvailabilityCommandHandler
	SaveSnapshot             commands.SaveSnapshotCommandHandler

	GetShipment          queries.GetShipmentQueryHandler
	GetAllShipments      queries.GetAllShipmentsQueryHandler
	GetShipmentsByPeriod queries.GetShipmentsByPeriodQueryHandler
	GetAllTrucks         queries.GetAllTrucksQueryHandler
	GetAvailableTrucks   queries.GetAvailableTrucksQueryHandler
	GetAllDrivers        queries.GetAllDriversQueryHandler
	GetAvailableDrivers  queries.GetAvailableDriversQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	now      func() time.Time
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
		now:      time.Now,
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	trucks := api.Group("/trucks")
	trucks.GET("", s.GetTrucks)
	trucks.POST("", s.AddTruck)
	trucks.GET("/available", s.GetAvailableTrucks)
	trucks.DELETE("/:id", s.DeleteTruck)
	trucks.PUT("/:id/status", s.ChangeTruckStatus)

	drivers := api.Group("/drivers")
	drivers.GET("", s.GetDrivers)
	drivers.POST("", s.AddDriver)
	drivers.GET("/available", s.GetAvailableDrivers)
	drivers.DELETE("/:id", s.DeleteDriver)
	drivers.PUT("/:id/availability", s.ChangeDriverAvailability)

	shipments := api.Group("/shipments")
	shipments.GET("", s.GetShipments)
	shipments.POST("", s.CreateShipment)
	shipments.GET("/report", s.GetShipmentsReport)
	shipments.GET("/:id", s.GetShipment)
	shipments.POST("/:id/assign", s.AssignResources)
	shipments.POST("/:id/start", s.StartShipment)
	shipments.POST("/:id/complete", s.CompleteShipment)
	shipments.POST("/:id/cancel", s.CancelShipment)

	api.POST("/snapshot", s.SaveSnapshot)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetTrucks handles GET /api/v1/trucks.
func (s *Server) GetTrucks(c echo.Context) error {
	result, err := s.handlers.GetAllTrucks.Handle(c.Request().Context(), queries.NewGetAllTrucksQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(result, toTruck))
}

// GetAvailableTrucks handles GET /api/v1/trucks/available?min_capacity=.
func (s *Server) GetAvailableTrucks(c echo.Context) error {
	var minCapacity float64
	if err := echo.QueryParamsBinder(c).Float64("min_capacity", &minCapacity).BindError(); err != nil {
		return badRequest(c, "min_capacity must be a number")
	}

	query, err := queries.NewGetAvailableTrucksQuery(minCapacity)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.GetAvailableTrucks.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(result, toTruck))
}

// AddTruck handles POST /api/v1/trucks.
func (s *Server) AddTruck(c echo.Context) error {
	var req NewTruck
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddTruckCommand(req.Registration, req.Capacity, req.FuelConsumption)
	if err != nil {
		return s.fail(c, err)
	}

	added, err := s.handlers.AddTruck.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Truck{
		ID:              added.ID(),
		Registration:    added.Registration(),
		Capacity:        added.Capacity(),
		FuelConsumption: added.FuelConsumption(),
		Status:          added.Status().String(),
	})
}

// DeleteTruck handles DELETE /api/v1/trucks/:id.
func (s *Server) DeleteTruck(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteTruckCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteTruck.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeTruckStatus handles PUT /api/v1/trucks/:id/status.
func (s *Server) ChangeTruckStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req TruckStatusChange
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	status, err := truck.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeTruckStatusCommand(id, status)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.ChangeTruckStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(c echo.Context) error {
	result, err := s.handlers.GetAllDrivers.Handle(c.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(result, toDriver))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(c echo.Context) error {
	result, err := s.handlers.GetAvailableDrivers.Handle(c.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(result, toDriver))
}

// AddDriver handles POST /api/v1/drivers.
func (s *Server) AddDriver(c echo.Context) error {
	var req NewDriver
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddDriverCommand(req.FullName, req.License)
	if err != nil {
		return s.fail(c, err)
	}

	added, err := s.handlers.AddDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Driver{
		ID:        added.ID(),
		FullName:  added.FullName(),
		License:   added.License(),
		Available: added.IsAvailable(),
	})
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeDriverAvailability handles PUT /api/v1/drivers/:id/availability.
func (s *Server) ChangeDriverAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req DriverAvailabilityChange
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeDriverAvailabilityCommand(id, *req.Available)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.ChangeDriverAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(c echo.Context) error {
	result, err := s.handlers.GetAllShipments.Handle(c.Request().Context(), queries.NewGetAllShipmentsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(result, toShipment))
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toShipment(result))
}

// GetShipmentsReport handles GET /api/v1/shipments/report?from=&to=.
// Both bounds are calendar dates and default to today. A window that ends
// before it starts is rejected.
func (s *Server) GetShipmentsReport(c echo.Context) error {
	today := kernel.DateOf(s.now())

	from, err := queryDate(c, "from", today)
	if err != nil {
		return s.fail(c, err)
	}
	to, err := queryDate(c, "to", today)
	if err != nil {
		return s.fail(c, err)
	}
	if from.Compare(to) > 0 {
		return badRequest(c, "from must not be after to")
	}

	result, err := s.handlers.GetShipmentsByPeriod.Handle(
		c.Request().Context(),
		queries.NewGetShipmentsByPeriodQuery(from, to),
	)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapAll(result, toShipment))
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req NewShipment
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	planned, err := parsePlannedDate(req.PlannedDate)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(req.Description, req.Weight, req.Refrigerated, req.Distance, planned)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetShipmentQuery(created.ID())
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toShipment(result))
}

// AssignResources handles POST /api/v1/shipments/:id/assign.
func (s *Server) AssignResources(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req Assignment
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignResourcesCommand(id, req.TruckID, req.DriverID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.AssignResources.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// StartShipment handles POST /api/v1/shipments/:id/start.
func (s *Server) StartShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewStartShipmentCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.StartShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CompleteShipment handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCompleteShipmentCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CompleteShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CancelShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SaveSnapshot handles POST /api/v1/snapshot and writes the stores to durable storage now.
func (s *Server) SaveSnapshot(c echo.Context) error {
	if err := s.handlers.SaveSnapshot.Handle(c.Request().Context(), commands.NewSaveSnapshotCommand()); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return c.Validate(req)
}

func pathID(c echo.Context) (kernel.ID, error) {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return 0, err
	}
	return id, id.Validate()
}

func queryDate(c echo.Context, name string, fallback kernel.Date) (kernel.Date, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	return kernel.ParseDate(raw)
}

func parsePlannedDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	d, err := kernel.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(time.UTC), nil
}

package http

import (
	"errors"
	"net/http"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/generated/servers"
	"consolidation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	consolidateOrdersHandler   commands.ConsolidateOrdersCommandHandler
	addOrderToLoadHandler      commands.AddOrderToLoadCommandHandler
	removeOrderFromLoadHandler commands.RemoveOrderFromLoadCommandHandler

	// Query handlers
	getActiveLoadsHandler      queries.GetActiveLoadsQueryHandler
	canAddOrderToLoadHandler   queries.CanAddOrderToLoadQueryHandler
	detectLoadConflictsHandler queries.DetectLoadConflictsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	consolidateOrdersHandler commands.ConsolidateOrdersCommandHandler,
	addOrderToLoadHandler commands.AddOrderToLoadCommandHandler,
	removeOrderFromLoadHandler commands.RemoveOrderFromLoadCommandHandler,
	getActiveLoadsHandler queries.GetActiveLoadsQueryHandler,
	canAddOrderToLoadHandler queries.CanAddOrderToLoadQueryHandler,
	detectLoadConflictsHandler queries.DetectLoadConflictsQueryHandler,
) *Server {
	return &Server{
		consolidateOrdersHandler:   consolidateOrdersHandler,
		addOrderToLoadHandler:      addOrderToLoadHandler,
		removeOrderFromLoadHandler: removeOrderFromLoadHandler,
		getActiveLoadsHandler:      getActiveLoadsHandler,
		canAddOrderToLoadHandler:   canAddOrderToLoadHandler,
		detectLoadConflictsHandler: detectLoadConflictsHandler,
	}
}

// ConsolidateOrders handles POST /api/v1/loads/consolidate - groups pending
// orders around a center into loads.
func (s *Server) ConsolidateOrders(ctx echo.Context) error {
	var request servers.ConsolidationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	center, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid consolidation center: " + err.Error(),
		})
	}

	overrides := services.OptionOverrides{
		MaxDistanceKm:               request.MaxDistanceKm,
		MaxWeightKg:                 request.MaxWeightKg,
		MaxVolumeM3:                 request.MaxVolumeM3,
		MaxTimeWindowOverlapMinutes: request.MaxTimeWindowOverlapMinutes,
	}

	cmd, err := commands.NewConsolidateOrdersCommand(center, overrides)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid consolidation request: " + err.Error(),
		})
	}

	loads, err := s.consolidateOrdersHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		response := make([]servers.Load, len(loads))
		for i, l := range loads {
			response[i] = toLoadResponse(l)
		}
		return ctx.JSON(http.StatusOK, response)
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid consolidation options: " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to consolidate orders",
		})
	}
}

// GetActiveLoads handles GET /api/v1/loads/active - retrieves all non-completed loads.
func (s *Server) GetActiveLoads(ctx echo.Context) error {
	query := queries.NewGetActiveLoadsQuery()

	loads, err := s.getActiveLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve active loads",
		})
	}

	response := make([]servers.ActiveLoad, len(loads))
	for i, l := range loads {
		response[i] = servers.ActiveLoad{
			Id:          l.ID.Bytes(),
			Status:      l.Status.String(),
			TotalWeight: l.TotalWeight,
			TotalVolume: l.TotalVolume,
			OrderCount:  l.OrderCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddOrderToLoad handles POST /api/v1/loads/{loadId}/orders/{orderId}.
func (s *Server) AddOrderToLoad(ctx echo.Context, loadId servers.LoadId, orderId servers.OrderId) error {
	loadID, orderID, err := bindIDs(loadId[:], orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid identifier: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddOrderToLoadCommand(loadID, orderID, services.OptionOverrides{})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	l, err := s.addOrderToLoadHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, toLoadResponse(l))
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Load or order not found",
		})
	case errors.Is(err, services.ErrLoadCapacityExceeded),
		errors.Is(err, services.ErrTimeWindowIncompatible),
		errors.Is(err, load.ErrOrderAlreadyInLoad):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Cannot add order to load: " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to add order to load",
		})
	}
}

// RemoveOrderFromLoad handles DELETE /api/v1/loads/{loadId}/orders/{orderId}.
func (s *Server) RemoveOrderFromLoad(ctx echo.Context, loadId servers.LoadId, orderId servers.OrderId) error {
	loadID, orderID, err := bindIDs(loadId[:], orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid identifier: " + err.Error(),
		})
	}

	cmd, err := commands.NewRemoveOrderFromLoadCommand(loadID, orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	l, err := s.removeOrderFromLoadHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, toLoadResponse(l))
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Load or order not found",
		})
	case errors.Is(err, load.ErrOrderNotInLoad):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Order is not part of this load",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to remove order from load",
		})
	}
}

// CanAddOrderToLoad handles GET /api/v1/loads/{loadId}/orders/{orderId}/feasibility.
func (s *Server) CanAddOrderToLoad(ctx echo.Context, loadId servers.LoadId, orderId servers.OrderId) error {
	loadID, orderID, err := bindIDs(loadId[:], orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid identifier: " + err.Error(),
		})
	}

	query, err := queries.NewCanAddOrderToLoadQuery(loadID, orderID, services.OptionOverrides{})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	result, err := s.canAddOrderToLoadHandler.Handle(ctx.Request().Context(), query)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, servers.Feasibility{CanAdd: result.CanAdd})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Load or order not found",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to evaluate feasibility",
		})
	}
}

// DetectLoadConflicts handles GET /api/v1/loads/{loadId}/conflicts.
func (s *Server) DetectLoadConflicts(ctx echo.Context, loadId servers.LoadId) error {
	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid identifier: " + err.Error(),
		})
	}

	query, err := queries.NewDetectLoadConflictsQuery(loadID, services.OptionOverrides{})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	result, err := s.detectLoadConflictsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to inspect load",
		})
	}

	return ctx.JSON(http.StatusOK, servers.ConflictReport{Conflicts: result.Conflicts})
}

// bindIDs converts raw path parameter bytes to domain identifiers.
func bindIDs(rawLoadID, rawOrderID []byte) (kernel.UUID, kernel.UUID, error) {
	loadID, err := kernel.UUIDFromBytes(rawLoadID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromBytes(rawOrderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return loadID, orderID, nil
}

// toLoadResponse maps a load aggregate to its API representation.
func toLoadResponse(l *load.Load) servers.Load {
	orderIDs := l.OrderIDs()
	rawIDs := make([]servers.OrderId, len(orderIDs))
	for i, id := range orderIDs {
		rawIDs[i] = id.Bytes()
	}

	return servers.Load{
		Id:          l.ID().Bytes(),
		OrderIds:    rawIDs,
		Status:      l.Status().String(),
		TotalWeight: l.TotalWeight(),
		TotalVolume: l.TotalVolume(),
	}
}

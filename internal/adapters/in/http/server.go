// Package http exposes the booking service over a JSON REST API built on
// Echo. Handlers translate between wire contracts and application use cases;
// all business rules live below this layer.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler commands.RegisterUserCommandHandler
	bookShipmentHandler commands.BookShipmentCommandHandler
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	authenticateHandler      queries.AuthenticateUserQueryHandler
	getShipmentHandler       queries.GetShipmentQueryHandler
	getOwnerShipmentsHandler queries.GetOwnerShipmentsQueryHandler
	searchShipmentsHandler   queries.SearchShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	bookShipmentHandler commands.BookShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	authenticateHandler queries.AuthenticateUserQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getOwnerShipmentsHandler queries.GetOwnerShipmentsQueryHandler,
	searchShipmentsHandler queries.SearchShipmentsQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		bookShipmentHandler:      bookShipmentHandler,
		updateStatusHandler:      updateStatusHandler,
		authenticateHandler:      authenticateHandler,
		getShipmentHandler:       getShipmentHandler,
		getOwnerShipmentsHandler: getOwnerShipmentsHandler,
		searchShipmentsHandler:   searchShipmentsHandler,
	}
}

// RegisterRoutes wires all API routes onto the Echo instance.
// Customer routes require a valid token; admin routes additionally require
// the admin flag.
func (s *Server) RegisterRoutes(e *echo.Echo, tokenProvider ports.TokenProvider) {
	e.GET("/health", s.Health)

	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", s.Signup)
	authGroup.POST("/login", s.Login)

	api := e.Group("/api", AuthMiddleware(tokenProvider))
	api.POST("/shipments", s.BookShipment)
	api.GET("/shipments", s.GetMyShipments)
	api.GET("/shipments/:trackingNumber", s.GetShipment)

	admin := api.Group("/admin", AdminMiddleware())
	admin.GET("/shipments", s.SearchShipments)
	admin.PUT("/shipments/:trackingNumber/status", s.UpdateShipmentStatus)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Signup handles POST /api/auth/signup - creates a new user account.
func (s *Server) Signup(ctx echo.Context) error {
	var req SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SignupResponse{
		ID:        account.ID().String(),
		Email:     account.Email(),
		FirstName: account.FirstName(),
		LastName:  account.LastName(),
	})
}

// Login handles POST /api/auth/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrAccessDenied) {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "invalid credentials",
			})
		}
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		UserID:    result.UserID.String(),
		Email:     result.Email,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		IsAdmin:   result.IsAdmin,
	})
}

// BookShipment handles POST /api/shipments - books a new shipment for the
// authenticated user and returns it with its tracking number and charges.
func (s *Server) BookShipment(ctx echo.Context) error {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	var req BookShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := bookShipmentCommandFromRequest(claims, req)
	if err != nil {
		return respondError(ctx, err)
	}

	booked, err := s.bookShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentPayloadFromDomain(booked))
}

// GetMyShipments handles GET /api/shipments - lists the authenticated
// user's shipments, newest booking first.
func (s *Server) GetMyShipments(ctx echo.Context) error {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	query, err := queries.NewGetOwnerShipmentsQuery(claims.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	shipments, err := s.getOwnerShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentPayload, 0, len(shipments))
	for _, resp := range shipments {
		response = append(response, shipmentPayloadFromResponse(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/shipments/:trackingNumber - shipment detail
// for the booking owner or an admin.
func (s *Server) GetShipment(ctx echo.Context) error {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	trackingNumber, err := kernel.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(trackingNumber, claims)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentPayloadFromResponse(detail))
}

// SearchShipments handles GET /api/admin/shipments - paginated admin
// listing with optional status and free text filters.
func (s *Server) SearchShipments(ctx echo.Context) error {
	page, err := queryParamInt(ctx, "page")
	if err != nil {
		return respondError(ctx, err)
	}
	limit, err := queryParamInt(ctx, "limit")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewSearchShipmentsQuery(page, limit, ctx.QueryParam("status"), ctx.QueryParam("q"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.searchShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ShipmentPageResponse{
		Shipments:   make([]ShipmentPayload, 0, len(result.Shipments)),
		TotalCount:  result.TotalCount,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	}
	for _, resp := range result.Shipments {
		response.Shipments = append(response.Shipments, shipmentPayloadFromResponse(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShipmentStatus handles PUT /api/admin/shipments/:trackingNumber/status -
// moves a shipment to a new status and appends the tracking event.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(trackingNumber, newStatus, req.Location, req.Activity)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentPayloadFromDomain(updated))
}

func bookShipmentCommandFromRequest(
	claims ports.Claims, req BookShipmentRequest,
) (commands.BookShipmentCommand, error) {
	sender, err := partyFromPayload(req.Sender)
	if err != nil {
		return commands.BookShipmentCommand{}, err
	}

	receiver, err := partyFromPayload(req.Receiver)
	if err != nil {
		return commands.BookShipmentCommand{}, err
	}

	parcel, err := parcelFromPayload(req.Parcel)
	if err != nil {
		return commands.BookShipmentCommand{}, err
	}

	tier, err := shipment.ServiceTierFromString(req.ServiceTier)
	if err != nil {
		return commands.BookShipmentCommand{}, err
	}

	pickupDate, err := time.Parse(pickupDateLayout, req.PickupDate)
	if err != nil {
		return commands.BookShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("pickupDate", err)
	}

	return commands.NewBookShipmentCommand(claims.UserID, sender, receiver, parcel, tier, pickupDate)
}

func partyFromPayload(payload PartyPayload) (shipment.Party, error) {
	return shipment.NewParty(
		payload.Name, payload.Street, payload.City, payload.State,
		payload.Pincode, payload.Country, payload.Phone,
	)
}

func parcelFromPayload(payload ParcelPayload) (shipment.Parcel, error) {
	weightKg, err := decimal.NewFromString(payload.WeightKg)
	if err != nil {
		return shipment.Parcel{}, errs.NewValueIsInvalidErrorWithCause("weightKg", err)
	}
	widthCm, err := decimal.NewFromString(payload.WidthCm)
	if err != nil {
		return shipment.Parcel{}, errs.NewValueIsInvalidErrorWithCause("widthCm", err)
	}
	heightCm, err := decimal.NewFromString(payload.HeightCm)
	if err != nil {
		return shipment.Parcel{}, errs.NewValueIsInvalidErrorWithCause("heightCm", err)
	}
	lengthCm, err := decimal.NewFromString(payload.LengthCm)
	if err != nil {
		return shipment.Parcel{}, errs.NewValueIsInvalidErrorWithCause("lengthCm", err)
	}

	return shipment.NewParcel(weightKg, widthCm, heightCm, lengthCm)
}

func queryParamInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

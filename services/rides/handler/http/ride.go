package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sydoni/sydoni-drive/internal/pkg/logger"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/utils"
	"github.com/sydoni/sydoni-drive/services/location"
	"github.com/sydoni/sydoni-drive/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC    rides.RideUC
	locations location.Provider
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC, locations location.Provider) *RidesHandler {
	return &RidesHandler{
		rideUC:    rideUC,
		locations: locations,
	}
}

// RegisterRoutes registers the ride API routes
func (h *RidesHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/listings", h.Publish)
	e.GET("/listings", h.Search)
	e.GET("/listings/nearby", h.Nearby)
	e.POST("/listings/:listingID/reservations", h.Reserve)
	e.POST("/listings/:listingID/complete", h.Complete)
	e.POST("/listings/:listingID/cancel", h.Cancel)
	e.POST("/listings/:listingID/ratings", h.Rate)
	e.DELETE("/listings/:listingID", h.Remove)
	e.GET("/users/:email/history", h.History)
}

type publishRequest struct {
	DriverEmail   string   `json:"driver_email"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departure_time"`
	Seats         int      `json:"seats"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type reserveRequest struct {
	PassengerEmail string   `json:"passenger_email"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

type rateRequest struct {
	PassengerEmail string `json:"passenger_email"`
	Score          int    `json:"score"`
}

// resolvePosition uses the request coordinates when present, falling back to
// the injected location provider.
func (h *RidesHandler) resolvePosition(lat, lon *float64) (models.Location, error) {
	if lat != nil && lon != nil {
		return models.Location{Latitude: *lat, Longitude: *lon}, nil
	}
	return h.locations.CurrentLocation()
}

// Publish handles the listing publication request
func (h *RidesHandler) Publish(c echo.Context) error {
	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverEmail == "" || req.Destination == "" || req.DepartureTime == "" {
		return utils.BadRequestResponse(c, "driver_email, destination and departure_time are required")
	}
	if req.Seats <= 0 {
		return utils.BadRequestResponse(c, "seats must be positive")
	}

	departure, err := h.resolvePosition(req.Latitude, req.Longitude)
	if err != nil {
		return utils.BadRequestResponse(c, "Departure coordinates are required")
	}

	listing, err := h.rideUC.Publish(c.Request().Context(), rides.PublishRequest{
		DriverEmail:   req.DriverEmail,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		Seats:         req.Seats,
		Departure:     departure,
	})
	if err != nil {
		return h.errorResponse(c, err, "Failed to publish listing")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Listing published successfully", listing)
}

// Search handles the availability and eligibility queries. Without a
// destination it returns every available listing; with a destination and a
// passenger position it applies the proximity eligibility rule.
func (h *RidesHandler) Search(c echo.Context) error {
	destination := c.QueryParam("destination")
	if destination == "" {
		listings, err := h.rideUC.AvailableListings(c.Request().Context())
		if err != nil {
			return h.errorResponse(c, err, "Failed to list available listings")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Available listings", listings)
	}

	position, err := h.resolvePosition(queryFloat(c, "latitude"), queryFloat(c, "longitude"))
	if err != nil {
		return utils.BadRequestResponse(c, "Passenger coordinates are required")
	}

	listings, err := h.rideUC.ListingsFor(c.Request().Context(), destination, position)
	if err != nil {
		return h.errorResponse(c, err, "Failed to search listings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Eligible listings", listings)
}

// Nearby handles the map-view lookup of listings departing close by
func (h *RidesHandler) Nearby(c echo.Context) error {
	position, err := h.resolvePosition(queryFloat(c, "latitude"), queryFloat(c, "longitude"))
	if err != nil {
		return utils.BadRequestResponse(c, "Coordinates are required")
	}

	listings, err := h.rideUC.ListNearby(c.Request().Context(), position)
	if err != nil {
		return h.errorResponse(c, err, "Failed to list nearby listings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby listings", listings)
}

// Reserve handles the seat reservation request
func (h *RidesHandler) Reserve(c echo.Context) error {
	listingID := c.Param("listingID")
	if listingID == "" {
		return utils.BadRequestResponse(c, "Listing ID is required")
	}

	var req reserveRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PassengerEmail == "" {
		return utils.BadRequestResponse(c, "passenger_email is required")
	}

	position, err := h.resolvePosition(req.Latitude, req.Longitude)
	if err != nil {
		return utils.BadRequestResponse(c, "Passenger coordinates are required")
	}

	if err := h.rideUC.Reserve(c.Request().Context(), listingID, req.PassengerEmail, position); err != nil {
		return h.errorResponse(c, err, "Failed to reserve seat")
	}

	logger.Info("Seat reserved",
		logger.String("listing_id", listingID),
		logger.String("passenger", req.PassengerEmail))
	return utils.SuccessResponse(c, http.StatusOK, "Reservation completed successfully", nil)
}

// Complete handles the trip completion request
func (h *RidesHandler) Complete(c echo.Context) error {
	listingID := c.Param("listingID")
	if listingID == "" {
		return utils.BadRequestResponse(c, "Listing ID is required")
	}

	result, err := h.rideUC.Complete(c.Request().Context(), listingID)
	if err != nil {
		return h.errorResponse(c, err, "Failed to complete trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", result)
}

// Cancel handles the administrative cancellation request
func (h *RidesHandler) Cancel(c echo.Context) error {
	listingID := c.Param("listingID")
	if listingID == "" {
		return utils.BadRequestResponse(c, "Listing ID is required")
	}

	if err := h.rideUC.Cancel(c.Request().Context(), listingID); err != nil {
		return h.errorResponse(c, err, "Failed to cancel listing")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing cancelled", nil)
}

// Rate handles the trip rating request
func (h *RidesHandler) Rate(c echo.Context) error {
	listingID := c.Param("listingID")
	if listingID == "" {
		return utils.BadRequestResponse(c, "Listing ID is required")
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PassengerEmail == "" {
		return utils.BadRequestResponse(c, "passenger_email is required")
	}

	awarded, err := h.rideUC.Rate(c.Request().Context(), listingID, req.PassengerEmail, req.Score)
	if err != nil {
		return h.errorResponse(c, err, "Failed to rate trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip rated successfully", map[string]int{"points_awarded": awarded})
}

// Remove handles the administrative listing removal request
func (h *RidesHandler) Remove(c echo.Context) error {
	listingID := c.Param("listingID")
	if listingID == "" {
		return utils.BadRequestResponse(c, "Listing ID is required")
	}

	if err := h.rideUC.Remove(c.Request().Context(), listingID); err != nil {
		return h.errorResponse(c, err, "Failed to remove listing")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing removed", nil)
}

// History returns the per-user trip history view
func (h *RidesHandler) History(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	entries, err := h.rideUC.HistoryFor(c.Request().Context(), email)
	if err != nil {
		return h.errorResponse(c, err, "Failed to load history")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip history", entries)
}

// errorResponse maps domain errors onto HTTP statuses with their
// human-readable messages; anything unexpected becomes a generic failure with
// the underlying cause appended.
func (h *RidesHandler) errorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, rides.ErrListingNotFound),
		errors.Is(err, rides.ErrUnknownDestination):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, rides.ErrNotDriver),
		errors.Is(err, rides.ErrNotParticipant):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, rides.ErrNoSeats),
		errors.Is(err, rides.ErrAlreadyReserved),
		errors.Is(err, rides.ErrAlreadyCompleted),
		errors.Is(err, rides.ErrAlreadyCancelled),
		errors.Is(err, rides.ErrNotCompleted),
		errors.Is(err, rides.ErrAlreadyRated):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, rides.ErrInvalidScore):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback+": "+err.Error())
	}
}

// queryFloat parses an optional float query parameter, returning nil when the
// parameter is absent or malformed.
func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

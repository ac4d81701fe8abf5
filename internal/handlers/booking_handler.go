package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripora/travel-booking-backend/internal/middleware"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/receipt"
	"github.com/tripora/travel-booking-backend/internal/services"
)

// BookingHandler handles booking lifecycle HTTP requests
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /api/bookings. Anonymous bookings are allowed;
// when a session is present the booking is attached to that user.
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	booking, err := h.bookingService.Create(middleware.UserIDPtr(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// List handles GET /api/bookings, scoped to the authenticated user.
// Unauthenticated callers get an empty array, not an error.
func (h *BookingHandler) List(c *gin.Context) {
	userCtx, authenticated := middleware.GetUserContext(c)
	if !authenticated {
		c.JSON(http.StatusOK, []models.Booking{})
		return
	}

	bookings, err := h.bookingService.ListForUser(userCtx.UserID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(id, middleware.UserIDPtr(c))
	if err != nil {
		h.ownershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Receipt handles GET /api/bookings/:id/receipt, returning a plain-text
// receipt document under the same visibility rules as Get.
func (h *BookingHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(id, middleware.UserIDPtr(c))
	if err != nil {
		h.ownershipError(c, err)
		return
	}

	c.String(http.StatusOK, receipt.Render(booking))
}

// Cancel handles PUT /api/bookings/:id/cancel. Requires an identity:
// anonymous callers get 401 before any ownership check.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	userCtx, _ := middleware.GetUserContext(c)

	booking, err := h.bookingService.Cancel(id, userCtx.UserID)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyCancelled) {
			badRequest(c, map[string]string{"status": models.ErrAlreadyCancelled.Error()})
			return
		}
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// OccupiedSeats handles GET /api/bookings/seats?busId=&travelDate=
func (h *BookingHandler) OccupiedSeats(c *gin.Context) {
	busID := c.Query("busId")
	travelDate := c.Query("travelDate")

	problems := map[string]string{}
	if busID == "" {
		problems["busId"] = "busId query parameter is required"
	}
	if travelDate == "" {
		problems["travelDate"] = "travelDate query parameter is required"
	}
	if len(problems) > 0 {
		badRequest(c, problems)
		return
	}

	seats, err := h.bookingService.OccupiedSeats(busID, travelDate)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, seats)
}

// ownershipError distinguishes "no identity at all" (401) from "wrong
// identity" (403) when an owned booking is accessed.
func (h *BookingHandler) ownershipError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotOwner) {
		if _, authenticated := middleware.GetUserContext(c); !authenticated {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "Authentication is required to access this booking",
				Code:    "UNAUTHENTICATED",
			})
			return
		}
	}
	serviceError(c, err)
}

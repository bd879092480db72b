package handlers

import (
	"errors"
	"net/http"

	"medicare/middleware"
	"medicare/models"
	"medicare/services/booking"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Booking booking.BookingService
}

func NewBookingHandler(bs booking.BookingService) *BookingHandler {
	return &BookingHandler{Booking: bs}
}

// CreateBooking handles POST /bookings. A duplicate is answered with 200 and
// acknowledged false, a strict-mode slot conflict with 409.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.AdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	reservation, err := h.Booking.Admit(c.Request.Context(), req)
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) && (appErr.Kind == utils.KindDuplicateBooking || appErr.Kind == utils.KindSlotTaken) {
			getLogger(c).Info("booking refused",
				zap.String("kind", string(appErr.Kind)),
				zap.String("service", req.ServiceName),
				zap.String("date", req.AppointmentDate),
			)
			c.JSON(utils.StatusFor(appErr.Kind), models.BookingResponse{
				Acknowledged: false,
				Message:      appErr.Message,
			})
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Acknowledged: true,
		InsertedID:   &reservation.ID,
	})
}

// GetMyBookings handles GET /bookings?email=E for the token holder.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	bookings, err := h.Booking.ListForRequester(c.Request.Context(), middleware.GetPrincipal(c), c.Query("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /bookings/:id. Unknown ids yield null.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	reservation, err := h.Booking.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/services/booking"
	"medicare/services/catalog"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves the service catalog and its availability.
type SlotHandler struct {
	Booking booking.BookingService
	Catalog catalog.CatalogService
}

func NewSlotHandler(bs booking.BookingService, cs catalog.CatalogService) *SlotHandler {
	return &SlotHandler{Booking: bs, Catalog: cs}
}

// GetAvailability handles GET /slots?date=D.
func (h *SlotHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	view, err := h.Booking.Resolve(c.Request.Context(), date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateTemplate handles POST /slots.
func (h *SlotHandler) CreateTemplate(c *gin.Context) {
	var template models.ServiceTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	res, err := h.Catalog.CreateTemplate(c.Request.Context(), template)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetServiceNames handles GET /slotSpeciality.
func (h *SlotHandler) GetServiceNames(c *gin.Context) {
	names, err := h.Catalog.ListNames(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// AddPrice handles GET /addPrice.
func (h *SlotHandler) AddPrice(c *gin.Context) {
	res, err := h.Catalog.SetPriceAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("bulk price update failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

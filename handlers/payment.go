package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/services/booking"
	"medicare/services/payment"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Payments payment.PaymentService
	Booking  booking.BookingService
}

func NewPaymentHandler(ps payment.PaymentService, bs booking.BookingService) *PaymentHandler {
	return &PaymentHandler{Payments: ps, Booking: bs}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.Payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPayment handles POST /payment: the client reports a confirmed charge.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	res, err := h.Booking.RecordPayment(c.Request.Context(), &p)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

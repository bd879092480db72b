package handlers

import (
	"medicare/services/access"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Tokens *utils.TokenManager
	Roles  access.RoleResolver

	// Probe endpoints
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Slot endpoints
	GetAvailabilityHandler gin.HandlerFunc
	CreateTemplateHandler  gin.HandlerFunc
	GetServiceNamesHandler gin.HandlerFunc
	AddPriceHandler        gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler  gin.HandlerFunc
	GetMyBookingsHandler  gin.HandlerFunc
	GetBookingByIDHandler gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntentHandler gin.HandlerFunc
	RecordPaymentHandler       gin.HandlerFunc

	// User endpoints
	IssueTokenHandler     gin.HandlerFunc
	UpsertUserHandler     gin.HandlerFunc
	ListUsersHandler      gin.HandlerFunc
	CheckAdminHandler     gin.HandlerFunc
	PromoteToAdminHandler gin.HandlerFunc

	// Doctor endpoints
	AddDoctorHandler    gin.HandlerFunc
	ListDoctorsHandler  gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
}

// Services are the dependencies NewHandlerBundle wires handlers from.
type Services struct {
	Slots    *SlotHandler
	Bookings *BookingHandler
	Payments *PaymentHandler
	Users    *UserHandler
	Doctors  *DoctorHandler
	Health   *HealthHandler
}

// NewHandlerBundle assembles the bundle from the per-resource handlers.
func NewHandlerBundle(tokens *utils.TokenManager, roles access.RoleResolver, s Services) *HandlerBundle {
	return &HandlerBundle{
		Tokens: tokens,
		Roles:  roles,

		RootHandler:   s.Health.Root,
		HealthHandler: s.Health.Health,

		GetAvailabilityHandler: s.Slots.GetAvailability,
		CreateTemplateHandler:  s.Slots.CreateTemplate,
		GetServiceNamesHandler: s.Slots.GetServiceNames,
		AddPriceHandler:        s.Slots.AddPrice,

		CreateBookingHandler:  s.Bookings.CreateBooking,
		GetMyBookingsHandler:  s.Bookings.GetMyBookings,
		GetBookingByIDHandler: s.Bookings.GetBookingByID,

		CreatePaymentIntentHandler: s.Payments.CreatePaymentIntent,
		RecordPaymentHandler:       s.Payments.RecordPayment,

		IssueTokenHandler:     s.Users.IssueToken,
		UpsertUserHandler:     s.Users.UpsertUser,
		ListUsersHandler:      s.Users.ListUsers,
		CheckAdminHandler:     s.Users.CheckAdmin,
		PromoteToAdminHandler: s.Users.PromoteToAdmin,

		AddDoctorHandler:    s.Doctors.AddDoctor,
		ListDoctorsHandler:  s.Doctors.ListDoctors,
		DeleteDoctorHandler: s.Doctors.DeleteDoctor,
	}
}

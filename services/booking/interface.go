package booking

import (
	"context"

	bookingRepo "medicare/database/repository/booking"
	"medicare/models"
	"medicare/services/access"
)

// BookingService is the slot-availability and reservation engine.
type BookingService interface {
	Resolve(ctx context.Context, date string) ([]models.ServiceAvailability, error)
	Admit(ctx context.Context, req models.AdmissionRequest) (*models.Reservation, error)
	Reconcile(ctx context.Context, reservationID, transactionID string) error
	RecordPayment(ctx context.Context, payment *models.Payment) (*models.InsertResult, error)
	ListForRequester(ctx context.Context, caller access.Principal, email string) ([]models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Resolver   *AvailabilityResolver
	Admission  *AdmissionController
	Reconciler *PaymentReconciler
	Ledger     bookingRepo.BookingRepository
}

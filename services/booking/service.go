package booking

import (
	"context"

	bookingRepo "medicare/database/repository/booking"
	catalogRepo "medicare/database/repository/catalog"
	paymentRepo "medicare/database/repository/payment"
	"medicare/models"
	"medicare/services/access"
	"medicare/utils"

	"go.uber.org/zap"
)

// Options carries the runtime switches of the booking engine.
type Options struct {
	StrictSlotUniqueness bool
	StrictReconcile      bool
}

// NewBookingService wires the resolver, admission controller and reconciler
// over the same ledger. cache may be nil.
func NewBookingService(
	catalog catalogRepo.CatalogRepository,
	ledger bookingRepo.BookingRepository,
	payments paymentRepo.PaymentRepository,
	cache AvailabilityCache,
	opts Options,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Resolver: &AvailabilityResolver{
			Catalog: catalog,
			Ledger:  ledger,
			Cache:   cache,
			Logger:  logger,
		},
		Admission:  NewAdmissionController(ledger, cache, opts.StrictSlotUniqueness, logger),
		Reconciler: NewPaymentReconciler(ledger, payments, cache, opts.StrictReconcile, logger),
		Ledger:     ledger,
	}
}

func (s *DefaultBookingService) Resolve(ctx context.Context, date string) ([]models.ServiceAvailability, error) {
	if date == "" {
		return nil, utils.NewError(utils.KindBadRequest, "date is required")
	}
	return s.Resolver.Resolve(ctx, date)
}

func (s *DefaultBookingService) Admit(ctx context.Context, req models.AdmissionRequest) (*models.Reservation, error) {
	return s.Admission.Admit(ctx, req)
}

func (s *DefaultBookingService) Reconcile(ctx context.Context, reservationID, transactionID string) error {
	return s.Reconciler.Reconcile(ctx, reservationID, transactionID)
}

func (s *DefaultBookingService) RecordPayment(ctx context.Context, payment *models.Payment) (*models.InsertResult, error) {
	return s.Reconciler.RecordPayment(ctx, payment)
}

// ListForRequester returns the bookings of email. Only the holder of that
// email may read them.
func (s *DefaultBookingService) ListForRequester(ctx context.Context, caller access.Principal, email string) ([]models.Reservation, error) {
	if err := access.RequireSubject(caller, email); err != nil {
		return nil, err
	}
	bookings, err := s.Ledger.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to load bookings", err)
	}
	if bookings == nil {
		bookings = []models.Reservation{}
	}
	return bookings, nil
}

// GetByID returns nil without error when no booking has that id.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.Ledger.GetByID(ctx, id)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to load booking", err)
	}
	return res, nil
}

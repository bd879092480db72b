package booking

import (
	"context"
	"time"

	bookingRepo "medicare/database/repository/booking"
	paymentRepo "medicare/database/repository/payment"
	"medicare/models"
	"medicare/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PaymentReconciler marks reservations paid once the provider confirms.
type PaymentReconciler struct {
	Ledger   bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Cache    AvailabilityCache
	// StrictReconcile turns reconciliation of an unknown booking id into a
	// NotFound error instead of a silent success.
	StrictReconcile bool
	Logger          *zap.Logger

	validate *validator.Validate
	now      func() time.Time
}

func NewPaymentReconciler(ledger bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository, cache AvailabilityCache, strict bool, logger *zap.Logger) *PaymentReconciler {
	return &PaymentReconciler{
		Ledger:          ledger,
		Payments:        payments,
		Cache:           cache,
		StrictReconcile: strict,
		Logger:          logger,
		validate:        validator.New(),
		now:             time.Now,
	}
}

// Reconcile sets paid and transactionId on the reservation. Calling it again
// with the same arguments changes nothing.
func (p *PaymentReconciler) Reconcile(ctx context.Context, reservationID, transactionID string) error {
	if transactionID == "" {
		return utils.NewError(utils.KindBadRequest, "transactionId is required")
	}

	updated, err := p.Ledger.MarkPaid(ctx, reservationID, transactionID)
	if err != nil {
		utils.ReconciliationsTotal.WithLabelValues("error").Inc()
		return utils.WrapError(utils.KindTransientStorage, "failed to mark booking paid", err)
	}
	if updated == nil {
		utils.ReconciliationsTotal.WithLabelValues("missing").Inc()
		p.Logger.Warn("payment confirmation for unknown booking",
			zap.String("bookingId", reservationID),
			zap.String("transactionId", transactionID),
			zap.Bool("strict", p.StrictReconcile),
		)
		if p.StrictReconcile {
			return ErrBookingNotFound(reservationID)
		}
		return nil
	}

	if p.Cache != nil {
		if err := p.Cache.Invalidate(ctx, updated.AppointmentDate); err != nil {
			p.Logger.Error("availability cache invalidation failed", zap.String("date", updated.AppointmentDate), zap.Error(err))
		}
	}
	utils.ReconciliationsTotal.WithLabelValues("paid").Inc()
	p.Logger.Info("booking marked paid",
		zap.String("bookingId", reservationID),
		zap.String("transactionId", transactionID),
	)
	return nil
}

// RecordPayment appends the payment to the log and then reconciles the booking
// it names. The two writes are not atomic: when the second fails the payment
// stays logged and the booking unpaid until a manual sweep.
func (p *PaymentReconciler) RecordPayment(ctx context.Context, payment *models.Payment) (*models.InsertResult, error) {
	if err := p.validate.Struct(payment); err != nil {
		return nil, utils.WrapError(utils.KindBadRequest, "invalid payment: "+err.Error(), err)
	}

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = p.now().UTC()
	if err := p.Payments.Insert(ctx, payment); err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to log payment", err)
	}

	if err := p.Reconcile(ctx, payment.BookingID, payment.TransactionID); err != nil {
		p.Logger.Error("payment logged but booking not reconciled",
			zap.String("paymentId", payment.ID.Hex()),
			zap.String("bookingId", payment.BookingID),
			zap.Error(err),
		)
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: payment.ID}, nil
}

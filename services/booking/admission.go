package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "medicare/database/repository/booking"
	"medicare/models"
	"medicare/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AdmissionController validates and stores new reservations.
//
// The per-requester duplicate check and the insert are two separate store
// calls, so two concurrent requests from the same requester can both pass.
// Unless StrictSlotUniqueness is set, the requested time is not re-checked
// either: two requesters can hold the same (service, date, time).
type AdmissionController struct {
	Ledger               bookingRepo.BookingRepository
	Cache                AvailabilityCache
	StrictSlotUniqueness bool
	Logger               *zap.Logger

	validate *validator.Validate
	now      func() time.Time
}

func NewAdmissionController(ledger bookingRepo.BookingRepository, cache AvailabilityCache, strict bool, logger *zap.Logger) *AdmissionController {
	return &AdmissionController{
		Ledger:               ledger,
		Cache:                cache,
		StrictSlotUniqueness: strict,
		Logger:               logger,
		validate:             validator.New(),
		now:                  time.Now,
	}
}

// Admit stores a reservation for req unless the requester already holds one
// for the same service and date.
func (a *AdmissionController) Admit(ctx context.Context, req models.AdmissionRequest) (*models.Reservation, error) {
	if err := a.validate.Struct(req); err != nil {
		utils.AdmissionsTotal.WithLabelValues("invalid").Inc()
		return nil, utils.WrapError(utils.KindBadRequest, "invalid booking request: "+err.Error(), err)
	}

	exists, err := a.Ledger.ExistsForRequester(ctx, req.ServiceName, req.AppointmentDate, req.Email)
	if err != nil {
		utils.AdmissionsTotal.WithLabelValues("error").Inc()
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to check existing bookings", err)
	}
	if exists {
		utils.AdmissionsTotal.WithLabelValues("duplicate").Inc()
		return nil, ErrDuplicateBooking(req.AppointmentDate)
	}

	reservation := &models.Reservation{
		ID:              primitive.NewObjectID(),
		ServiceName:     req.ServiceName,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Email:           req.Email,
		Patient:         req.Patient,
		Phone:           req.Phone,
		Price:           req.Price,
		Paid:            false,
		TransactionID:   nil,
		CreatedAt:       a.now().UTC(),
	}

	var claimKey string
	if a.StrictSlotUniqueness {
		claimKey = bookingRepo.ClaimKey(req.ServiceName, req.AppointmentDate, req.AppointmentTime)
		err := a.Ledger.ClaimSlot(ctx, &models.SlotClaim{
			Key:           claimKey,
			ReservationID: reservation.ID,
			CreatedAt:     reservation.CreatedAt,
		})
		if errors.Is(err, bookingRepo.ErrSlotClaimed) {
			utils.AdmissionsTotal.WithLabelValues("slot_taken").Inc()
			return nil, ErrSlotTaken(req.AppointmentDate, req.AppointmentTime)
		}
		if err != nil {
			utils.AdmissionsTotal.WithLabelValues("error").Inc()
			return nil, utils.WrapError(utils.KindTransientStorage, "failed to claim slot", err)
		}
	}

	if err := a.Ledger.Create(ctx, reservation); err != nil {
		if claimKey != "" {
			if relErr := a.Ledger.ReleaseSlot(ctx, claimKey); relErr != nil {
				a.Logger.Error("failed to release slot claim after insert failure",
					zap.String("claim", claimKey), zap.Error(relErr))
			}
		}
		utils.AdmissionsTotal.WithLabelValues("error").Inc()
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to store booking", err)
	}

	a.invalidate(ctx, req.AppointmentDate)
	utils.AdmissionsTotal.WithLabelValues("admitted").Inc()
	a.Logger.Info("booking admitted",
		zap.String("bookingId", reservation.ID.Hex()),
		zap.String("service", reservation.ServiceName),
		zap.String("date", reservation.AppointmentDate),
		zap.String("time", reservation.AppointmentTime),
	)
	return reservation, nil
}

func (a *AdmissionController) invalidate(ctx context.Context, date string) {
	if a.Cache == nil {
		return
	}
	if err := a.Cache.Invalidate(ctx, date); err != nil {
		a.Logger.Error("availability cache invalidation failed", zap.String("date", date), zap.Error(err))
	}
}

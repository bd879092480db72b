package bookingRepo

import (
	"context"
	"errors"
	"strings"

	"medicare/models"
)

// ErrSlotClaimed is returned by ClaimSlot when another reservation already
// holds the (service, date, time) key.
var ErrSlotClaimed = errors.New("slot already claimed")

// BookingRepository is the reservation ledger.
type BookingRepository interface {
	// FindByDate returns every reservation for the date, paid or not.
	FindByDate(ctx context.Context, date string) ([]models.Reservation, error)
	// ExistsForRequester reports whether email already booked serviceName on date.
	ExistsForRequester(ctx context.Context, serviceName, date, email string) (bool, error)
	// FindByEmail lists the requester's reservations.
	FindByEmail(ctx context.Context, email string) ([]models.Reservation, error)
	// GetByID returns nil, nil when no reservation has that id.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// Create inserts a new reservation. The caller assigns the id.
	Create(ctx context.Context, reservation *models.Reservation) error
	// MarkPaid sets paid and transactionId and returns the updated record,
	// or nil, nil when no reservation has that id.
	MarkPaid(ctx context.Context, id, transactionID string) (*models.Reservation, error)
	// ClaimSlot atomically inserts the claim or fails with ErrSlotClaimed.
	ClaimSlot(ctx context.Context, claim *models.SlotClaim) error
	// ReleaseSlot drops a claim whose reservation could not be stored.
	ReleaseSlot(ctx context.Context, key string) error
	EnsureIndexes(ctx context.Context) error
}

// ClaimKey builds the slot claim identifier for (service, date, time).
func ClaimKey(serviceName, date, time string) string {
	return strings.Join([]string{serviceName, date, time}, "|")
}

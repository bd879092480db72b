package booking

import (
	"fmt"

	"medicare/utils"
)

// ErrDuplicateBooking is the rejection for a requester who already holds a
// booking for the service on date.
func ErrDuplicateBooking(date string) error {
	return utils.NewError(utils.KindDuplicateBooking, fmt.Sprintf("You cannot book this service on %s", date))
}

// ErrSlotTaken is the strict-mode rejection for a time someone else holds.
func ErrSlotTaken(date, slot string) error {
	return utils.NewError(utils.KindSlotTaken, fmt.Sprintf("The %s slot on %s is already booked", slot, date))
}

// ErrBookingNotFound is returned by strict reconciliation for an unknown id.
func ErrBookingNotFound(id string) error {
	return utils.NewError(utils.KindNotFound, fmt.Sprintf("booking %s not found", id))
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation represents one claim on a slot for one date by one requester.
type Reservation struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	ServiceName     string             `bson:"serviceName" json:"serviceName"`                 // weak reference to ServiceTemplate.Name
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`         // compared verbatim, e.g. "2024-06-01"
	AppointmentTime string             `bson:"appointmentTime" json:"appointmentTime"`         // one label of the template slots
	Email           string             `bson:"email" json:"email"`                             // requester identity
	Patient         string             `bson:"patient,omitempty" json:"patient,omitempty"`     // display name of the patient
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`         // contact number
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`         // price quoted at booking time
	Paid            bool               `bson:"paid" json:"paid"`                               // flipped once by reconciliation
	TransactionID   *string            `bson:"transactionId" json:"transactionId"`             // nil until paid
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"` // admission time
}

// AdmissionRequest is the body of POST /bookings.
type AdmissionRequest struct {
	ServiceName     string  `json:"serviceName" validate:"required"`
	AppointmentDate string  `json:"appointmentDate" validate:"required"`
	AppointmentTime string  `json:"appointmentTime" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Patient         string  `json:"patient,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	Price           float64 `json:"price,omitempty" validate:"gte=0"`
}

// SlotClaim is the store-level marker that one (service, date, time) is taken.
// Only written when strict slot uniqueness is enabled.
type SlotClaim struct {
	Key           string             `bson:"_id"`
	ReservationID primitive.ObjectID `bson:"reservationId"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

// BookingResponse answers POST /bookings.
type BookingResponse struct {
	Acknowledged bool                `json:"acknowledged"`
	Message      string              `json:"message,omitempty"`
	InsertedID   *primitive.ObjectID `json:"insertedId,omitempty"`
}

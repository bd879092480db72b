package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceTemplate is the date-independent list of offerable times for one service.
type ServiceTemplate struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name" validate:"required"`                           // unique service name, referenced by bookings
	Price float64            `bson:"price" json:"price" validate:"gt=0"`                              // price of one appointment
	Slots []string           `bson:"slots" json:"slots" validate:"required,min=1,unique,dive,required"` // ordered time labels, e.g. "09:00"
}

// ServiceAvailability is a template with its booked times removed for one date.
type ServiceAvailability struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Price float64            `json:"price"`
	Slots []string           `json:"slots"` // free time labels only, in template order
}

// ServiceName is the projection served by /slotSpeciality.
type ServiceName struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

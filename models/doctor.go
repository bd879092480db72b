package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a staff record managed by admins.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}

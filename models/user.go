// models/user.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a platform user.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email" validate:"required,email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// TokenResponse answers GET /jwt.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// AdminStatus answers GET /users/admin/:email.
type AdminStatus struct {
	IsAdmin bool `json:"isAdmin"`
}

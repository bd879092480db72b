package models

import (
	"time"

	json "github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one entry of the append-only payment log.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	BookingID     string             `bson:"bookingId" json:"bookingId" validate:"required"`
	TransactionID string             `bson:"transactionId" json:"transactionId" validate:"required"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	// Extra holds any other fields the client reported; they are logged as
	// top-level fields next to the known ones.
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

var paymentFields = []string{"_id", "bookingId", "transactionId", "price", "email", "createdAt"}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
// Client-supplied _id and createdAt are dropped.
func (p *Payment) UnmarshalJSON(data []byte) error {
	type plain Payment
	var known struct {
		plain
		// shadow the server-assigned fields so client values are ignored
		ID        json.RawMessage `json:"_id"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, f := range paymentFields {
		delete(all, f)
	}
	*p = Payment(known.plain)
	p.Extra = nil
	if len(all) > 0 {
		p.Extra = all
	}
	return nil
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the provider secret the client confirms with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

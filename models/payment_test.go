package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPaymentKeepsUnknownFields(t *testing.T) {
	body := []byte(`{"bookingId":"b1","transactionId":"pi_1","price":89,"email":"a@x.com","currency":"usd","card":{"brand":"visa"},"_id":"spoofed"}`)

	var p Payment
	require.NoError(t, p.UnmarshalJSON(body))

	assert.Equal(t, "b1", p.BookingID)
	assert.Equal(t, "pi_1", p.TransactionID)
	assert.Equal(t, 89.0, p.Price)
	assert.Equal(t, "usd", p.Extra["currency"])
	assert.Contains(t, p.Extra, "card")
	assert.NotContains(t, p.Extra, "_id")
	assert.NotContains(t, p.Extra, "bookingId")

	raw, err := bson.Marshal(&p)
	require.NoError(t, err)
	var stored bson.M
	require.NoError(t, bson.Unmarshal(raw, &stored))
	assert.Equal(t, "usd", stored["currency"])
	assert.Equal(t, "pi_1", stored["transactionId"])
}

func TestPaymentWithoutExtrasHasNilExtra(t *testing.T) {
	var p Payment
	require.NoError(t, p.UnmarshalJSON([]byte(`{"bookingId":"b1","transactionId":"pi_1"}`)))
	assert.Nil(t, p.Extra)
}

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, StatusFor(KindUnauthorized))
	assert.Equal(t, http.StatusForbidden, StatusFor(KindForbidden))
	assert.Equal(t, http.StatusOK, StatusFor(KindDuplicateBooking))
	assert.Equal(t, http.StatusConflict, StatusFor(KindSlotTaken))
	assert.Equal(t, http.StatusNotFound, StatusFor(KindNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(KindBadRequest))
	assert.Equal(t, http.StatusServiceUnavailable, StatusFor(KindTransientStorage))
	assert.Equal(t, http.StatusBadGateway, StatusFor(KindPaymentProvider))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(KindInternal))
}

func TestKindOfWrapped(t *testing.T) {
	cause := errors.New("socket closed")
	err := fmt.Errorf("admit: %w", WrapError(KindTransientStorage, "failed to store booking", cause))

	assert.Equal(t, KindTransientStorage, KindOf(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ErrorKind(""), KindOf(cause))
}

package booking

import (
	"context"
	"sync"
	"testing"

	"medicare/models"
	"medicare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func request(service, date, slot, email string) models.AdmissionRequest {
	return models.AdmissionRequest{
		ServiceName:     service,
		AppointmentDate: date,
		AppointmentTime: slot,
		Email:           email,
	}
}

func TestAdmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an unpaid reservation", func(t *testing.T) {
		ledger := newMemLedger()
		cache := newMemCache()
		ac := NewAdmissionController(ledger, cache, false, zap.NewNop())

		res, err := ac.Admit(ctx, request("General", "2024-06-01", "09:00", "a@x.com"))
		require.NoError(t, err)
		assert.False(t, res.ID.IsZero())
		assert.False(t, res.Paid)
		assert.Nil(t, res.TransactionID)
		assert.Equal(t, 1, ledger.count())
		assert.Equal(t, []string{"2024-06-01"}, cache.invalidated)

		stored, err := ledger.GetByID(ctx, res.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", stored.Email)
	})

	t.Run("rejects a second booking for the same service and date", func(t *testing.T) {
		ledger := newMemLedger()
		ac := NewAdmissionController(ledger, nil, false, zap.NewNop())

		_, err := ac.Admit(ctx, request("General", "2024-06-01", "09:00", "a@x.com"))
		require.NoError(t, err)

		_, err = ac.Admit(ctx, request("General", "2024-06-01", "10:00", "a@x.com"))
		require.Error(t, err)
		assert.True(t, utils.IsKind(err, utils.KindDuplicateBooking))
		assert.Contains(t, err.Error(), "2024-06-01")
		assert.Equal(t, 1, ledger.count(), "a rejected duplicate writes nothing")
	})

	t.Run("same requester may book another service or date", func(t *testing.T) {
		ledger := newMemLedger()
		ac := NewAdmissionController(ledger, nil, false, zap.NewNop())

		_, err := ac.Admit(ctx, request("General", "2024-06-01", "09:00", "a@x.com"))
		require.NoError(t, err)
		_, err = ac.Admit(ctx, request("Dental", "2024-06-01", "09:00", "a@x.com"))
		require.NoError(t, err)
		_, err = ac.Admit(ctx, request("General", "2024-06-02", "09:00", "a@x.com"))
		require.NoError(t, err)
		assert.Equal(t, 3, ledger.count())
	})

	t.Run("validates required fields", func(t *testing.T) {
		ledger := newMemLedger()
		ac := NewAdmissionController(ledger, nil, false, zap.NewNop())

		cases := []models.AdmissionRequest{
			request("", "2024-06-01", "09:00", "a@x.com"),
			request("General", "", "09:00", "a@x.com"),
			request("General", "2024-06-01", "", "a@x.com"),
			request("General", "2024-06-01", "09:00", ""),
			request("General", "2024-06-01", "09:00", "not-an-email"),
		}
		for _, req := range cases {
			_, err := ac.Admit(ctx, req)
			assert.True(t, utils.IsKind(err, utils.KindBadRequest), "%+v", req)
		}
		assert.Zero(t, ledger.count())
	})

	t.Run("store failure is transient and releases the claim", func(t *testing.T) {
		ledger := newMemLedger()
		ledger.createErr = errStoreDown
		ac := NewAdmissionController(ledger, nil, true, zap.NewNop())

		_, err := ac.Admit(ctx, request("General", "2024-06-01", "09:00", "a@x.com"))
		assert.True(t, utils.IsKind(err, utils.KindTransientStorage))
		assert.Empty(t, ledger.claims)
	})
}

func TestAdmitSameSlotDefaultModeAdmitsBoth(t *testing.T) {
	ledger := newMemLedger()
	ac := NewAdmissionController(ledger, nil, false, zap.NewNop())

	errs := admitConcurrently(ac, "e1@x.com", "e2@x.com")

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 2, ledger.count(), "without strict mode the slot is not re-checked")
}

func TestAdmitSameSlotStrictModeAdmitsOne(t *testing.T) {
	for i := 0; i < 20; i++ {
		ledger := newMemLedger()
		ac := NewAdmissionController(ledger, nil, true, zap.NewNop())

		errs := admitConcurrently(ac, "e1@x.com", "e2@x.com")

		var admitted, taken int
		for _, err := range errs {
			switch {
			case err == nil:
				admitted++
			case utils.IsKind(err, utils.KindSlotTaken):
				taken++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, admitted)
		require.Equal(t, 1, taken)
		require.Equal(t, 1, ledger.count())
	}
}

func TestAdmitStrictModeStillRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedger()
	ac := NewAdmissionController(ledger, nil, true, zap.NewNop())

	_, err := ac.Admit(ctx, request("General", "2024-06-01", "09:00", "a@x.com"))
	require.NoError(t, err)

	_, err = ac.Admit(ctx, request("General", "2024-06-01", "10:00", "a@x.com"))
	assert.True(t, utils.IsKind(err, utils.KindDuplicateBooking))
}

func admitConcurrently(ac *AdmissionController, emails ...string) []error {
	errs := make([]error, len(emails))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, email := range emails {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			<-start
			_, errs[i] = ac.Admit(context.Background(), request("General", "2024-06-01", "09:00", email))
		}(i, email)
	}
	close(start)
	wg.Wait()
	return errs
}

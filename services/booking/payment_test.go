package booking

import (
	"context"
	"testing"

	"medicare/models"
	"medicare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func seededLedger(t *testing.T) (*memLedger, *models.Reservation) {
	t.Helper()
	ledger := newMemLedger()
	ac := NewAdmissionController(ledger, nil, false, zap.NewNop())
	res, err := ac.Admit(context.Background(), request("General", "2024-06-01", "09:00", "a@x.com"))
	require.NoError(t, err)
	return ledger, res
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the reservation paid", func(t *testing.T) {
		ledger, res := seededLedger(t)
		cache := newMemCache()
		rc := NewPaymentReconciler(ledger, &memPayments{}, cache, false, zap.NewNop())

		require.NoError(t, rc.Reconcile(ctx, res.ID.Hex(), "tx_1"))

		stored, _ := ledger.GetByID(ctx, res.ID.Hex())
		assert.True(t, stored.Paid)
		require.NotNil(t, stored.TransactionID)
		assert.Equal(t, "tx_1", *stored.TransactionID)
		assert.Equal(t, []string{"2024-06-01"}, cache.invalidated)
	})

	t.Run("is idempotent", func(t *testing.T) {
		ledger, res := seededLedger(t)
		rc := NewPaymentReconciler(ledger, &memPayments{}, nil, false, zap.NewNop())

		require.NoError(t, rc.Reconcile(ctx, res.ID.Hex(), "tx_1"))
		once, _ := ledger.GetByID(ctx, res.ID.Hex())
		require.NoError(t, rc.Reconcile(ctx, res.ID.Hex(), "tx_1"))
		twice, _ := ledger.GetByID(ctx, res.ID.Hex())

		assert.Equal(t, once, twice)
		assert.Equal(t, 1, ledger.count())
	})

	t.Run("unknown id succeeds by default", func(t *testing.T) {
		ledger, _ := seededLedger(t)
		rc := NewPaymentReconciler(ledger, &memPayments{}, nil, false, zap.NewNop())

		assert.NoError(t, rc.Reconcile(ctx, primitive.NewObjectID().Hex(), "tx_1"))
		assert.NoError(t, rc.Reconcile(ctx, "not-an-object-id", "tx_1"))
	})

	t.Run("unknown id is NotFound in strict mode", func(t *testing.T) {
		ledger, _ := seededLedger(t)
		rc := NewPaymentReconciler(ledger, &memPayments{}, nil, true, zap.NewNop())

		err := rc.Reconcile(ctx, primitive.NewObjectID().Hex(), "tx_1")
		assert.True(t, utils.IsKind(err, utils.KindNotFound))
	})

	t.Run("requires a transaction id", func(t *testing.T) {
		ledger, res := seededLedger(t)
		rc := NewPaymentReconciler(ledger, &memPayments{}, nil, false, zap.NewNop())

		err := rc.Reconcile(ctx, res.ID.Hex(), "")
		assert.True(t, utils.IsKind(err, utils.KindBadRequest))
	})
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("logs the payment then reconciles", func(t *testing.T) {
		ledger, res := seededLedger(t)
		payments := &memPayments{}
		rc := NewPaymentReconciler(ledger, payments, nil, false, zap.NewNop())

		out, err := rc.RecordPayment(ctx, &models.Payment{BookingID: res.ID.Hex(), TransactionID: "tx_9", Price: 89, Email: "a@x.com"})
		require.NoError(t, err)
		assert.True(t, out.Acknowledged)
		require.Len(t, payments.payments, 1)
		assert.Equal(t, out.InsertedID, payments.payments[0].ID)

		stored, _ := ledger.GetByID(ctx, res.ID.Hex())
		assert.True(t, stored.Paid)
	})

	t.Run("payment log failure leaves the booking unpaid", func(t *testing.T) {
		ledger, res := seededLedger(t)
		rc := NewPaymentReconciler(ledger, &memPayments{err: errStoreDown}, nil, false, zap.NewNop())

		_, err := rc.RecordPayment(ctx, &models.Payment{BookingID: res.ID.Hex(), TransactionID: "tx_9"})
		assert.True(t, utils.IsKind(err, utils.KindTransientStorage))

		stored, _ := ledger.GetByID(ctx, res.ID.Hex())
		assert.False(t, stored.Paid)
	})

	t.Run("rejects incomplete payments", func(t *testing.T) {
		ledger, _ := seededLedger(t)
		payments := &memPayments{}
		rc := NewPaymentReconciler(ledger, payments, nil, false, zap.NewNop())

		_, err := rc.RecordPayment(ctx, &models.Payment{TransactionID: "tx_9"})
		assert.True(t, utils.IsKind(err, utils.KindBadRequest))
		assert.Empty(t, payments.payments)
	})
}

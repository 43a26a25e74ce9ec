package point_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anke-go-api/model"
)

func TestHistorySumsAllRows(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 1000)
	store.grant(1, 500)
	store.records = append(store.records, model.PointRecord{
		UserID: 1,
		Amount: -300,
		Type:   model.PointTypeExchange,
	})
	// another user's rows must not leak in
	store.users[2] = true
	store.grant(2, 9999)

	svc := NewLedgerService(store)
	records, total, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 1200, total)
}

func TestHistoryEmptyLedgerIsZero(t *testing.T) {
	store := newFakeStore(1)
	svc := NewLedgerService(store)

	records, total, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, total)
}

func TestHistoryRequiresUserID(t *testing.T) {
	svc := NewLedgerService(newFakeStore())

	_, _, err := svc.History(context.Background(), 0)
	assert.ErrorIs(t, err, ErrUserIDRequired)
}

func TestHistoryUnknownUser(t *testing.T) {
	svc := NewLedgerService(newFakeStore(1))

	_, _, err := svc.History(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

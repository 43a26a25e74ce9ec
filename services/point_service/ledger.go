package point_service

import (
	"context"
	"errors"
	"time"

	"anke-go-api/model"
)

var (
	ErrUserIDRequired = errors.New("user id required")
	ErrUserNotFound   = errors.New("user not found")
)

// Store is the ledger persistence boundary. WithUserLock serializes all
// balance-affecting work for one user: the callback runs inside a
// transaction holding a row lock on the user, so two concurrent exchange
// requests against the same balance cannot both pass validation.
type Store interface {
	ListByUser(ctx context.Context, userID int) ([]model.PointRecord, error)
	GetExchangeRequest(ctx context.Context, id int) (*model.PointExchangeRequest, error)
	ListExchangeRequests(ctx context.Context, status string, offset, limit int) ([]model.PointExchangeRequest, int64, error)
	WithUserLock(ctx context.Context, userID int, fn func(ls LockedStore) error) error
}

// LockedStore is the view available inside WithUserLock.
type LockedStore interface {
	Balance(userID int) (int, error)
	PendingExchangeTotal(userID int) (int, error)
	CreateExchangeRequest(req *model.PointExchangeRequest) error
	GetExchangeRequest(id int) (*model.PointExchangeRequest, error)
	UpdateExchangeRequestStatus(id int, status string, processedAt time.Time) error
	CreatePointRecord(rec *model.PointRecord) error
}

// LedgerService computes derived balances from the append-only ledger.
type LedgerService struct {
	store Store
}

func NewLedgerService(store Store) *LedgerService {
	return &LedgerService{store: store}
}

// History returns every ledger row for the user (newest first) and the
// derived balance. A user with no rows has balance 0.
func (s *LedgerService) History(ctx context.Context, userID int) ([]model.PointRecord, int, error) {
	if userID <= 0 {
		return nil, 0, ErrUserIDRequired
	}

	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	total := 0
	for _, rec := range records {
		total += rec.Amount
	}

	return records, total, nil
}

// Balance returns only the derived balance.
func (s *LedgerService) Balance(ctx context.Context, userID int) (int, error) {
	_, total, err := s.History(ctx, userID)
	return total, err
}

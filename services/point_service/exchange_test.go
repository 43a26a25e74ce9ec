package point_service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anke-go-api/model"
)

type fakeStore struct {
	users    map[int]bool
	records  []model.PointRecord
	requests map[int]*model.PointExchangeRequest
	nextID   int
}

func newFakeStore(users ...int) *fakeStore {
	s := &fakeStore{
		users:    make(map[int]bool),
		requests: make(map[int]*model.PointExchangeRequest),
	}
	for _, u := range users {
		s.users[u] = true
	}
	return s
}

func (s *fakeStore) grant(userID, amount int) {
	s.records = append(s.records, model.PointRecord{
		UserID: userID,
		Amount: amount,
		Type:   model.PointTypeGrant,
	})
}

func (s *fakeStore) ListByUser(_ context.Context, userID int) ([]model.PointRecord, error) {
	if !s.users[userID] {
		return nil, ErrUserNotFound
	}
	var out []model.PointRecord
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) GetExchangeRequest(_ context.Context, id int) (*model.PointExchangeRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, errors.New("request not found")
	}
	copied := *req
	return &copied, nil
}

func (s *fakeStore) ListExchangeRequests(_ context.Context, status string, offset, limit int) ([]model.PointExchangeRequest, int64, error) {
	var out []model.PointExchangeRequest
	for _, req := range s.requests {
		if status == "" || req.Status == status {
			out = append(out, *req)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeStore) WithUserLock(_ context.Context, userID int, fn func(ls LockedStore) error) error {
	if !s.users[userID] {
		return ErrUserNotFound
	}
	return fn(&fakeLocked{s})
}

type fakeLocked struct {
	s *fakeStore
}

func (l *fakeLocked) Balance(userID int) (int, error) {
	total := 0
	for _, r := range l.s.records {
		if r.UserID == userID {
			total += r.Amount
		}
	}
	return total, nil
}

func (l *fakeLocked) PendingExchangeTotal(userID int) (int, error) {
	total := 0
	for _, req := range l.s.requests {
		if req.UserID == userID && req.Status == model.ExchangeStatusPending {
			total += req.ExchangePoints
		}
	}
	return total, nil
}

func (l *fakeLocked) CreateExchangeRequest(req *model.PointExchangeRequest) error {
	l.s.nextID++
	req.ID = l.s.nextID
	copied := *req
	l.s.requests[req.ID] = &copied
	return nil
}

func (l *fakeLocked) GetExchangeRequest(id int) (*model.PointExchangeRequest, error) {
	req, ok := l.s.requests[id]
	if !ok {
		return nil, errors.New("request not found")
	}
	copied := *req
	return &copied, nil
}

func (l *fakeLocked) UpdateExchangeRequestStatus(id int, status string, processedAt time.Time) error {
	req, ok := l.s.requests[id]
	if !ok {
		return errors.New("request not found")
	}
	req.Status = status
	req.ProcessedAt = &processedAt
	return nil
}

func (l *fakeLocked) CreatePointRecord(rec *model.PointRecord) error {
	l.s.records = append(l.s.records, *rec)
	return nil
}

type recordingMailer struct {
	subjects []string
	bodies   []string
	fail     bool
}

func (m *recordingMailer) SendAdminNotification(_ context.Context, subject, body string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, body)
	return nil
}

func validInput(userID, points int) ExchangeInput {
	return ExchangeInput{
		UserID:         userID,
		ExchangePoints: points,
		Sei:            "山田",
		Mei:            "太郎",
		KanaSei:        "ヤマダ",
		KanaMei:        "タロウ",
		Email:          "taro@example.com",
	}
}

func TestValidateExchangeAmount(t *testing.T) {
	cases := []struct {
		points int
		valid  bool
	}{
		{10000, true},
		{20000, true},
		{100000, true},
		{0, false},
		{3000, false},
		{9999, false},
		{15000, false},
		{-10000, false},
	}
	for _, tc := range cases {
		err := ValidateExchangeAmount(tc.points)
		if tc.valid {
			assert.NoError(t, err, "points=%d", tc.points)
		} else {
			assert.ErrorIs(t, err, ErrInvalidExchangeAmount, "points=%d", tc.points)
		}
	}
}

func TestExchangeRejectsNonUnitAmountEvenWithBalance(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 3500)
	svc := NewExchangeService(store, &recordingMailer{})

	_, err := svc.Exchange(context.Background(), validInput(1, 3000))
	assert.ErrorIs(t, err, ErrInvalidExchangeAmount)
	assert.Empty(t, store.requests)
}

func TestExchangeAcceptsAndNotifies(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 20000)
	mailer := &recordingMailer{}
	svc := NewExchangeService(store, mailer)

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)
	assert.Equal(t, 20000, result.Balance)

	req := store.requests[result.RequestID]
	require.NotNil(t, req)
	assert.Equal(t, model.ExchangeStatusPending, req.Status)
	assert.Equal(t, 10000, req.ExchangePoints)

	require.Len(t, mailer.bodies, 1)
	body := mailer.bodies[0]
	assert.Contains(t, mailer.subjects[0], "Point exchange request")
	assert.Contains(t, body, "User ID: 1")
	assert.Contains(t, body, "山田 太郎")
	assert.Contains(t, body, "ヤマダ タロウ")
	assert.Contains(t, body, "Requested points: 10000pt")
	assert.Contains(t, body, "Gift value: 1000 yen")
	assert.Contains(t, body, "Current balance: 20000pt")
}

func TestExchangeExactBalanceAccepted(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	svc := NewExchangeService(store, &recordingMailer{})

	_, err := svc.Exchange(context.Background(), validInput(1, 10000))
	assert.NoError(t, err)
}

func TestExchangeInsufficientBalance(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 9000)
	svc := NewExchangeService(store, &recordingMailer{})

	_, err := svc.Exchange(context.Background(), validInput(1, 10000))
	assert.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Empty(t, store.requests)
}

func TestExchangePendingRequestsReserveBalance(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 20000)
	svc := NewExchangeService(store, &recordingMailer{})

	_, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)

	// 10000 is still in the ledger but reserved by the pending request
	_, err = svc.Exchange(context.Background(), validInput(1, 20000))
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = svc.Exchange(context.Background(), validInput(1, 10000))
	assert.NoError(t, err)
}

func TestExchangeMissingFields(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 20000)
	svc := NewExchangeService(store, &recordingMailer{})

	in := validInput(1, 10000)
	in.KanaSei = "  "
	_, err := svc.Exchange(context.Background(), in)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestExchangeUnknownUser(t *testing.T) {
	svc := NewExchangeService(newFakeStore(), &recordingMailer{})

	_, err := svc.Exchange(context.Background(), validInput(42, 10000))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExchangeMailFailureDoesNotRejectRequest(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	svc := NewExchangeService(store, &recordingMailer{fail: true})

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)
	assert.Equal(t, model.ExchangeStatusPending, store.requests[result.RequestID].Status)
}

func TestExchangeRemarksInNotification(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	mailer := &recordingMailer{}
	svc := NewExchangeService(store, mailer)

	in := validInput(1, 10000)
	in.Remarks = "please hurry"
	_, err := svc.Exchange(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, mailer.bodies[0], "Remarks: please hurry")
}

func TestCompleteAppendsDebitAndCloses(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc := NewExchangeService(store, &recordingMailer{}, WithClock(func() time.Time { return fixed }))

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)

	require.NoError(t, svc.Complete(context.Background(), result.RequestID))

	req := store.requests[result.RequestID]
	assert.Equal(t, model.ExchangeStatusCompleted, req.Status)
	require.NotNil(t, req.ProcessedAt)
	assert.Equal(t, fixed, *req.ProcessedAt)

	last := store.records[len(store.records)-1]
	assert.Equal(t, -10000, last.Amount)
	assert.Equal(t, model.PointTypeExchange, last.Type)

	// ledger now sums to zero
	ledger := NewLedgerService(store)
	balance, err := ledger.Balance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestCompleteTwiceFails(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	svc := NewExchangeService(store, &recordingMailer{})

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)

	require.NoError(t, svc.Complete(context.Background(), result.RequestID))
	assert.ErrorIs(t, svc.Complete(context.Background(), result.RequestID), ErrRequestNotPending)
}

func TestRejectReleasesReservationWithoutDebit(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	svc := NewExchangeService(store, &recordingMailer{})

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)

	before := len(store.records)
	require.NoError(t, svc.Reject(context.Background(), result.RequestID))
	assert.Equal(t, model.ExchangeStatusRejected, store.requests[result.RequestID].Status)
	assert.Len(t, store.records, before)

	// reserved points are available again
	_, err = svc.Exchange(context.Background(), validInput(1, 10000))
	assert.NoError(t, err)
}

func TestNotificationOmitsEmptyRemarks(t *testing.T) {
	req := &model.PointExchangeRequest{
		UserID:         7,
		ExchangePoints: 20000,
		Sei:            "佐藤",
		Mei:            "花子",
		KanaSei:        "サトウ",
		KanaMei:        "ハナコ",
		Email:          "hanako@example.com",
		CreatedAt:      time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
	}
	_, body := composeAdminNotification(req, 25000)
	assert.False(t, strings.Contains(body, "Remarks:"))
	assert.Contains(t, body, "Gift value: 2000 yen")
	assert.Contains(t, body, "Filed at: 2026-08-01 09:30:00")
}

type recordingNotifier struct {
	notifications []model.Notification
	fail          bool
}

func (n *recordingNotifier) Notify(_ context.Context, notification *model.Notification) error {
	if n.fail {
		return errors.New("broker down")
	}
	n.notifications = append(n.notifications, *notification)
	return nil
}

func TestCompleteNotifiesRequester(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	notifier := &recordingNotifier{}
	svc := NewExchangeService(store, &recordingMailer{}, WithNotifier(notifier))

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)

	require.NoError(t, svc.Complete(context.Background(), result.RequestID))

	require.Len(t, notifier.notifications, 1)
	n := notifier.notifications[0]
	assert.Equal(t, 1, n.UserID)
	assert.Equal(t, model.NotificationTypeExchange, n.Type)
	assert.Contains(t, n.Title, "completed")
	assert.Contains(t, n.Body, "10000pt")
}

func TestRejectNotifiesRequester(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	notifier := &recordingNotifier{}
	svc := NewExchangeService(store, &recordingMailer{}, WithNotifier(notifier))

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)

	require.NoError(t, svc.Reject(context.Background(), result.RequestID))

	require.Len(t, notifier.notifications, 1)
	n := notifier.notifications[0]
	assert.Equal(t, 1, n.UserID)
	assert.Equal(t, model.NotificationTypeExchange, n.Type)
	assert.Contains(t, n.Title, "rejected")
}

func TestNotifierFailureDoesNotFailSettlement(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	svc := NewExchangeService(store, &recordingMailer{}, WithNotifier(&recordingNotifier{fail: true}))

	result, err := svc.Exchange(context.Background(), validInput(1, 10000))
	require.NoError(t, err)

	require.NoError(t, svc.Complete(context.Background(), result.RequestID))
	assert.Equal(t, model.ExchangeStatusCompleted, store.requests[result.RequestID].Status)
}

func TestNoPendingRequestLeavesLedgerAlone(t *testing.T) {
	store := newFakeStore(1)
	store.grant(1, 10000)
	notifier := &recordingNotifier{}
	svc := NewExchangeService(store, &recordingMailer{}, WithNotifier(notifier))

	err := svc.Complete(context.Background(), 99)
	require.Error(t, err)
	assert.Empty(t, notifier.notifications)
}

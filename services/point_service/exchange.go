package point_service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"anke-go-api/model"
	"anke-go-api/pkg/monitoring"
)

// ExchangeUnit is the redemption granularity: requests must be at least
// one unit and an exact multiple of it.
const ExchangeUnit = 10000

var (
	ErrMissingFields         = errors.New("required fields are missing")
	ErrInvalidExchangeAmount = errors.New("invalid point amount")
	ErrInsufficientPoints    = errors.New("insufficient point balance")
	ErrRequestNotPending     = errors.New("exchange request is not pending")
)

// Mailer delivers the admin notification. Delivery failure never fails
// the exchange request itself.
type Mailer interface {
	SendAdminNotification(ctx context.Context, subject, body string) error
}

// Notifier records an in-app notification for the requester. Like mail,
// a write failure is logged and never fails the state transition.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// ExchangeInput is one redemption request as received from the app surface.
type ExchangeInput struct {
	UserID         int
	ExchangePoints int
	Sei            string
	Mei            string
	KanaSei        string
	KanaMei        string
	Email          string
	Remarks        string
}

// ExchangeResult reports an accepted request.
type ExchangeResult struct {
	RequestID int `json:"requestId"`
	Balance   int `json:"balance"`
}

// ExchangeService validates redemption requests, reserves them against the
// available balance under the per-user lock, and notifies the administrator.
// It never debits the ledger: fulfilment is a separate admin action.
type ExchangeService struct {
	store    Store
	mailer   Mailer
	notifier Notifier
	now      func() time.Time
}

// Option configures an ExchangeService.
type Option func(*ExchangeService)

// WithClock injects a deterministic clock for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ExchangeService) {
		s.now = now
	}
}

// WithNotifier enables in-app notifications on request settlement.
func WithNotifier(n Notifier) Option {
	return func(s *ExchangeService) {
		s.notifier = n
	}
}

func NewExchangeService(store Store, mailer Mailer, opts ...Option) *ExchangeService {
	s := &ExchangeService{
		store:  store,
		mailer: mailer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateExchangeAmount enforces the minimum and the multiple-of-unit rule.
func ValidateExchangeAmount(points int) error {
	if points < ExchangeUnit || points%ExchangeUnit != 0 {
		return ErrInvalidExchangeAmount
	}
	return nil
}

func (in *ExchangeInput) validate() error {
	if in.UserID <= 0 {
		return ErrUserIDRequired
	}
	for _, field := range []string{in.Sei, in.Mei, in.KanaSei, in.KanaMei, in.Email} {
		if strings.TrimSpace(field) == "" {
			return ErrMissingFields
		}
	}
	return ValidateExchangeAmount(in.ExchangePoints)
}

// Exchange runs the redemption workflow. On success the request is
// persisted as pending and the admin notification is attempted; a mail
// failure is logged, not surfaced, and the request stays accepted.
func (s *ExchangeService) Exchange(ctx context.Context, in ExchangeInput) (*ExchangeResult, error) {
	if err := in.validate(); err != nil {
		monitoring.CountExchangeRequest("rejected")
		return nil, err
	}

	req := &model.PointExchangeRequest{
		UserID:         in.UserID,
		ExchangePoints: in.ExchangePoints,
		Sei:            in.Sei,
		Mei:            in.Mei,
		KanaSei:        in.KanaSei,
		KanaMei:        in.KanaMei,
		Email:          in.Email,
		Remarks:        in.Remarks,
		Status:         model.ExchangeStatusPending,
		CreatedAt:      s.now(),
	}

	var balance int
	err := s.store.WithUserLock(ctx, in.UserID, func(ls LockedStore) error {
		var err error
		balance, err = ls.Balance(in.UserID)
		if err != nil {
			return err
		}

		pending, err := ls.PendingExchangeTotal(in.UserID)
		if err != nil {
			return err
		}

		if in.ExchangePoints > balance-pending {
			return ErrInsufficientPoints
		}

		return ls.CreateExchangeRequest(req)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientPoints) || errors.Is(err, ErrUserNotFound) {
			monitoring.CountExchangeRequest("rejected")
		} else {
			monitoring.CountExchangeRequest("failed")
		}
		return nil, err
	}

	subject, body := composeAdminNotification(req, balance)
	if s.mailer != nil {
		if err := s.mailer.SendAdminNotification(ctx, subject, body); err != nil {
			// Deliberately swallowed: the request is already accepted.
			log.Printf("exchange notification delivery failed for request %d: %v", req.ID, err)
		}
	}

	monitoring.CountExchangeRequest("accepted")
	return &ExchangeResult{RequestID: req.ID, Balance: balance}, nil
}

// Complete fulfils a pending request: one transaction appends the negative
// "exchange" ledger row and marks the request completed.
func (s *ExchangeService) Complete(ctx context.Context, requestID int) error {
	req, err := s.store.GetExchangeRequest(ctx, requestID)
	if err != nil {
		return err
	}

	err = s.store.WithUserLock(ctx, req.UserID, func(ls LockedStore) error {
		current, err := ls.GetExchangeRequest(requestID)
		if err != nil {
			return err
		}
		if current.Status != model.ExchangeStatusPending {
			return ErrRequestNotPending
		}

		rec := &model.PointRecord{
			UserID:    current.UserID,
			Amount:    -current.ExchangePoints,
			Type:      model.PointTypeExchange,
			CreatedAt: s.now(),
		}
		if err := ls.CreatePointRecord(rec); err != nil {
			return err
		}

		return ls.UpdateExchangeRequestStatus(requestID, model.ExchangeStatusCompleted, s.now())
	})
	if err != nil {
		return err
	}

	s.notifyUser(ctx, req.UserID, "Point exchange completed",
		fmt.Sprintf("Your exchange request for %dpt has been completed.", req.ExchangePoints))
	return nil
}

// Reject releases a pending reservation without touching the ledger.
func (s *ExchangeService) Reject(ctx context.Context, requestID int) error {
	req, err := s.store.GetExchangeRequest(ctx, requestID)
	if err != nil {
		return err
	}

	err = s.store.WithUserLock(ctx, req.UserID, func(ls LockedStore) error {
		current, err := ls.GetExchangeRequest(requestID)
		if err != nil {
			return err
		}
		if current.Status != model.ExchangeStatusPending {
			return ErrRequestNotPending
		}

		return ls.UpdateExchangeRequestStatus(requestID, model.ExchangeStatusRejected, s.now())
	})
	if err != nil {
		return err
	}

	s.notifyUser(ctx, req.UserID, "Point exchange rejected",
		fmt.Sprintf("Your exchange request for %dpt has been rejected. The reserved points are available again.", req.ExchangePoints))
	return nil
}

func (s *ExchangeService) notifyUser(ctx context.Context, userID int, title, body string) {
	if s.notifier == nil {
		return
	}
	n := &model.Notification{
		UserID: userID,
		Type:   model.NotificationTypeExchange,
		Title:  title,
		Body:   body,
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		log.Printf("exchange notification write failed for user %d: %v", userID, err)
	}
}

// composeAdminNotification builds the human-readable request summary sent
// to the administrative address.
func composeAdminNotification(req *model.PointExchangeRequest, balance int) (string, string) {
	subject := "[Anke] Point exchange request"

	var b strings.Builder
	fmt.Fprintf(&b, "A point exchange request has been filed.\n\n")
	fmt.Fprintf(&b, "User ID: %d\n", req.UserID)
	fmt.Fprintf(&b, "Name: %s %s\n", req.Sei, req.Mei)
	fmt.Fprintf(&b, "Name (kana): %s %s\n", req.KanaSei, req.KanaMei)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Requested points: %dpt\n", req.ExchangePoints)
	fmt.Fprintf(&b, "Gift value: %d yen\n", req.ExchangePoints/10)
	fmt.Fprintf(&b, "Current balance: %dpt\n", balance)
	if req.Remarks != "" {
		fmt.Fprintf(&b, "Remarks: %s\n", req.Remarks)
	}
	fmt.Fprintf(&b, "Filed at: %s\n", req.CreatedAt.Format("2006-01-02 15:04:05"))

	return subject, b.String()
}

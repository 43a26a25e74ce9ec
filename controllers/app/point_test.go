package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anke-go-api/middleware"
	"anke-go-api/model"
	"anke-go-api/services/point_service"
)

// stubPointStore backs the point handlers with an in-memory ledger so the
// ownership checks can be exercised end to end.
type stubPointStore struct {
	records        map[int][]model.PointRecord
	createdRequest bool
}

func (s *stubPointStore) ListByUser(_ context.Context, userID int) ([]model.PointRecord, error) {
	return s.records[userID], nil
}

func (s *stubPointStore) GetExchangeRequest(context.Context, int) (*model.PointExchangeRequest, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPointStore) ListExchangeRequests(context.Context, string, int, int) ([]model.PointExchangeRequest, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubPointStore) WithUserLock(_ context.Context, userID int, fn func(ls point_service.LockedStore) error) error {
	return fn(&stubPointLocked{s: s, userID: userID})
}

type stubPointLocked struct {
	s      *stubPointStore
	userID int
}

func (l *stubPointLocked) Balance(userID int) (int, error) {
	total := 0
	for _, r := range l.s.records[userID] {
		total += r.Amount
	}
	return total, nil
}

func (l *stubPointLocked) PendingExchangeTotal(int) (int, error) { return 0, nil }

func (l *stubPointLocked) CreateExchangeRequest(req *model.PointExchangeRequest) error {
	l.s.createdRequest = true
	req.ID = 1
	return nil
}

func (l *stubPointLocked) GetExchangeRequest(int) (*model.PointExchangeRequest, error) {
	return nil, errors.New("not implemented")
}

func (l *stubPointLocked) UpdateExchangeRequestStatus(int, string, time.Time) error { return nil }

func (l *stubPointLocked) CreatePointRecord(*model.PointRecord) error { return nil }

func pointTestRouter(t *testing.T, authUID int, store *stubPointStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()

	ledgerService = point_service.NewLedgerService(store)
	exchangeService = point_service.NewExchangeService(store, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("uid", authUID) })
	r.GET("/point-history", PointHistory)
	r.POST("/point-exchange", PointExchange)
	return r
}

func TestPointHistoryRejectsForeignUserID(t *testing.T) {
	store := &stubPointStore{records: map[int][]model.PointRecord{
		9: {{UserID: 9, Amount: 1000, Type: model.PointTypeGrant}},
	}}
	r := pointTestRouter(t, 5, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/point-history?userId=9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "pointHistory")
}

func TestPointHistoryAllowsOwnUserID(t *testing.T) {
	store := &stubPointStore{records: map[int][]model.PointRecord{
		5: {{UserID: 5, Amount: 1000, Type: model.PointTypeGrant}},
	}}
	r := pointTestRouter(t, 5, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/point-history?userId=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPoints":1000`)
}

const exchangeBodyTemplate = `{
	"userId": %USER%,
	"exchangePoints": 10000,
	"sei": "山田",
	"mei": "太郎",
	"kanaSei": "ヤマダ",
	"kanaMei": "タロウ",
	"email": "taro@example.com"
}`

func exchangeBody(userID string) *strings.Reader {
	return strings.NewReader(strings.ReplaceAll(exchangeBodyTemplate, "%USER%", userID))
}

func TestPointExchangeRejectsForeignUserID(t *testing.T) {
	store := &stubPointStore{records: map[int][]model.PointRecord{
		9: {{UserID: 9, Amount: 20000, Type: model.PointTypeGrant}},
	}}
	r := pointTestRouter(t, 5, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/point-exchange", exchangeBody("9"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// no reservation was filed against the other user's balance
	assert.False(t, store.createdRequest)
}

func TestPointExchangeAllowsOwnUserID(t *testing.T) {
	store := &stubPointStore{records: map[int][]model.PointRecord{
		5: {{UserID: 5, Amount: 20000, Type: model.PointTypeGrant}},
	}}
	r := pointTestRouter(t, 5, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/point-exchange", exchangeBody("5"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.createdRequest)
}

package model

import "time"

// Point record types. The ledger is append-only; a balance is always the
// sum of a user's deltas, never a stored column.
const (
	PointTypeRegist   = "regist"
	PointTypeGrant    = "grant"
	PointTypeExchange = "exchange"
)

// PointRecord is one signed point delta for a user.
type PointRecord struct {
	ID        int       `json:"id" gorm:"primarykey"`
	UserID    int       `json:"user_id" gorm:"not null;index"`
	Amount    int       `json:"amount" gorm:"not null"` // positive grant, negative debit
	Type      string    `json:"type" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (PointRecord) TableName() string {
	return "points"
}

// Exchange request lifecycle. Pending requests reserve points against the
// available balance; completion debits the ledger, rejection releases the
// reservation.
const (
	ExchangeStatusPending   = "pending"
	ExchangeStatusCompleted = "completed"
	ExchangeStatusRejected  = "rejected"
)

// PointExchangeRequest is a user's ask to redeem points, fulfilled manually
// by an administrator.
type PointExchangeRequest struct {
	ID             int        `json:"id" gorm:"primarykey"`
	UserID         int        `json:"user_id" gorm:"not null;index:idx_exchange_user_status"`
	ExchangePoints int        `json:"exchange_points" gorm:"not null"`
	Sei            string     `json:"sei" gorm:"size:100;not null"`
	Mei            string     `json:"mei" gorm:"size:100;not null"`
	KanaSei        string     `json:"kana_sei" gorm:"size:100;not null"`
	KanaMei        string     `json:"kana_mei" gorm:"size:100;not null"`
	Email          string     `json:"email" gorm:"size:255;not null"`
	Remarks        string     `json:"remarks" gorm:"type:text"`
	Status         string     `json:"status" gorm:"size:20;default:pending;index:idx_exchange_user_status"`
	CreatedAt      time.Time  `json:"created_at"`
	ProcessedAt    *time.Time `json:"processed_at"`
}

func (PointExchangeRequest) TableName() string {
	return "point_exchange_requests"
}

// PointsAggregateLog is one run of the daily balance audit job.
type PointsAggregateLog struct {
	ID              int       `json:"id" gorm:"primarykey"`
	ExecutionType   string    `json:"execution_type" gorm:"size:20;not null"`
	Status          string    `json:"status" gorm:"size:20;not null"`
	Message         string    `json:"message" gorm:"type:text"`
	ErrorMessage    string    `json:"error_message" gorm:"type:text"`
	AggregatedUsers int       `json:"aggregated_users"`
	ExecutedAt      time.Time `json:"executed_at"`
}

func (PointsAggregateLog) TableName() string {
	return "points_aggregate_logs"
}

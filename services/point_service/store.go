package point_service

import (
	"context"
	"errors"
	"time"

	"anke-go-api/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the MySQL-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListByUser(ctx context.Context, userID int) ([]model.PointRecord, error) {
	var records []model.PointRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (s *GormStore) GetExchangeRequest(ctx context.Context, id int) (*model.PointExchangeRequest, error) {
	var req model.PointExchangeRequest
	if err := s.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *GormStore) ListExchangeRequests(ctx context.Context, status string, offset, limit int) ([]model.PointExchangeRequest, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.PointExchangeRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []model.PointExchangeRequest
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error
	return requests, total, err
}

// WithUserLock opens a transaction and locks the user row FOR UPDATE, so
// all balance reads and exchange mutations for one user serialize.
func (s *GormStore) WithUserLock(ctx context.Context, userID int, fn func(ls LockedStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&user, userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		return fn(&gormLockedStore{tx: tx})
	})
}

type gormLockedStore struct {
	tx *gorm.DB
}

func (l *gormLockedStore) Balance(userID int) (int, error) {
	var total int64
	err := l.tx.Model(&model.PointRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return int(total), err
}

func (l *gormLockedStore) PendingExchangeTotal(userID int) (int, error) {
	var total int64
	err := l.tx.Model(&model.PointExchangeRequest{}).
		Where("user_id = ? AND status = ?", userID, model.ExchangeStatusPending).
		Select("COALESCE(SUM(exchange_points), 0)").
		Scan(&total).Error
	return int(total), err
}

func (l *gormLockedStore) CreateExchangeRequest(req *model.PointExchangeRequest) error {
	return l.tx.Create(req).Error
}

func (l *gormLockedStore) GetExchangeRequest(id int) (*model.PointExchangeRequest, error) {
	var req model.PointExchangeRequest
	if err := l.tx.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (l *gormLockedStore) UpdateExchangeRequestStatus(id int, status string, processedAt time.Time) error {
	return l.tx.Model(&model.PointExchangeRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_at": processedAt,
		}).Error
}

func (l *gormLockedStore) CreatePointRecord(rec *model.PointRecord) error {
	return l.tx.Create(rec).Error
}

package admin_service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"anke-go-api/model"
)

var ErrNoPointRecords = errors.New("no point records")

const renumberBatchSize = 100

type PointAdminService struct {
	db *gorm.DB
}

func NewPointAdminService(db *gorm.DB) *PointAdminService {
	return &PointAdminService{db: db}
}

// Grant appends one ledger row. createdAt allows backdated corrections;
// zero means now.
func (s *PointAdminService) Grant(ctx context.Context, userID, amount int, pointType string, createdAt time.Time) (*model.PointRecord, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rec := &model.PointRecord{
		UserID: userID,
		Amount: amount,
		Type:   pointType,
	}
	if !createdAt.IsZero() {
		rec.CreatedAt = createdAt
	}

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// BulkDelete removes ledger rows by id.
func (s *PointAdminService) BulkDelete(ctx context.Context, ids []int) (int64, error) {
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.PointRecord{})
	return result.RowsAffected, result.Error
}

// RenumberIDs compacts the ledger's primary keys to 1..n in creation
// order. The whole rewrite runs in one transaction; reinsertion is batched
// to keep statement sizes bounded.
func (s *PointAdminService) RenumberIDs(ctx context.Context) (int, error) {
	var renumbered int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var records []model.PointRecord
		if err := tx.Order("created_at ASC, id ASC").Find(&records).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return ErrNoPointRecords
		}

		if err := tx.Exec("DELETE FROM points").Error; err != nil {
			return err
		}

		for i := range records {
			records[i].ID = i + 1
		}
		if err := tx.CreateInBatches(records, renumberBatchSize).Error; err != nil {
			return err
		}

		renumbered = len(records)
		return nil
	})
	return renumbered, err
}

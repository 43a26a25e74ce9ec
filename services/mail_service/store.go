package mail_service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anke-go-api/model"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ActiveSetting returns the newest active row, or nil without error when
// none exists.
func (s *GormStore) ActiveSetting(ctx context.Context) (*model.MailSetting, error) {
	var setting model.MailSetting
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id DESC").
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *GormStore) SaveSetting(ctx context.Context, setting *model.MailSetting) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.MailSetting{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Save(setting).Error
	})
}

func (s *GormStore) ListLogs(ctx context.Context, offset, limit int) ([]model.MailLog, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.MailLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.MailLog
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&logs).Error
	return logs, total, err
}

func (s *GormStore) CreateLog(ctx context.Context, entry *model.MailLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

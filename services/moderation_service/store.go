package moderation_service

import (
	"context"

	"anke-go-api/model"

	"gorm.io/gorm"
)

// GormWordSource loads active NG words from MySQL.
type GormWordSource struct {
	db *gorm.DB
}

func NewGormWordSource(db *gorm.DB) *GormWordSource {
	return &GormWordSource{db: db}
}

func (s *GormWordSource) ActiveWords(ctx context.Context) ([]model.NgWord, error) {
	var words []model.NgWord
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&words).Error
	return words, err
}

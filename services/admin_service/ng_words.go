package admin_service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anke-go-api/model"
)

var ErrNgWordNotFound = errors.New("ng word not found")

// NgWordAdminService maintains the moderation dictionary. Every mutation
// invalidates the checker cache so the change takes effect immediately.
type NgWordAdminService struct {
	db         *gorm.DB
	invalidate func()
}

func NewNgWordAdminService(db *gorm.DB, invalidate func()) *NgWordAdminService {
	return &NgWordAdminService{db: db, invalidate: invalidate}
}

func (s *NgWordAdminService) List(ctx context.Context) ([]model.NgWord, error) {
	var words []model.NgWord
	err := s.db.WithContext(ctx).Order("id").Find(&words).Error
	return words, err
}

func (s *NgWordAdminService) Create(ctx context.Context, word *model.NgWord) error {
	if err := s.db.WithContext(ctx).Create(word).Error; err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *NgWordAdminService) Update(ctx context.Context, word *model.NgWord) error {
	result := s.db.WithContext(ctx).Model(&model.NgWord{}).
		Where("id = ?", word.ID).
		Updates(map[string]interface{}{
			"word":      word.Word,
			"word_type": word.WordType,
			"severity":  word.Severity,
			"category":  word.Category,
			"is_active": word.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNgWordNotFound
	}
	s.invalidate()
	return nil
}

func (s *NgWordAdminService) Delete(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NgWord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNgWordNotFound
	}
	s.invalidate()
	return nil
}

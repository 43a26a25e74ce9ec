package admin_service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anke-go-api/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserAdminService struct {
	db *gorm.DB
}

func NewUserAdminService(db *gorm.DB) *UserAdminService {
	return &UserAdminService{db: db}
}

// List pages all accounts, newest first.
func (s *UserAdminService) List(ctx context.Context, page, pageSize int) ([]model.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error
	return users, total, err
}

// Search matches email or nickname fragments.
func (s *UserAdminService) Search(ctx context.Context, query string, page, pageSize int) ([]model.User, int64, error) {
	pattern := "%" + query + "%"
	q := s.db.WithContext(ctx).Model(&model.User{}).
		Where("email LIKE ? OR nickname LIKE ?", pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := q.Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error
	return users, total, err
}

// UpdateAvatar stores the new avatar URL on the account.
func (s *UserAdminService) UpdateAvatar(ctx context.Context, userID int, url string) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// BulkDelete removes accounts. Ledger rows are kept for the audit trail;
// the orphan scan picks up anything left behind.
func (s *UserAdminService) BulkDelete(ctx context.Context, ids []int) (int64, error) {
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.User{})
	return result.RowsAffected, result.Error
}

package admin_service

import (
	"context"

	"gorm.io/gorm"

	"anke-go-api/model"
)

// PostAdminService covers the moderation screens for posts.
type PostAdminService struct {
	db *gorm.DB
}

func NewPostAdminService(db *gorm.DB) *PostAdminService {
	return &PostAdminService{db: db}
}

// List pages posts, optionally filtered by status, newest first.
func (s *PostAdminService) List(ctx context.Context, status string, page, pageSize int) ([]model.Post, int64, error) {
	q := s.db.WithContext(ctx).Model(&model.Post{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := q.Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error
	return posts, total, err
}

// BulkDelete trashes posts, or purges them and their dependents when
// permanent is set.
func (s *PostAdminService) BulkDelete(ctx context.Context, ids []int, permanent bool) (int64, error) {
	if !permanent {
		result := s.db.WithContext(ctx).Model(&model.Post{}).
			Where("id IN ?", ids).
			Update("status", model.PostStatusTrash)
		return result.RowsAffected, result.Error
	}

	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range []interface{}{
			&model.VoteOption{}, &model.VoteChoice{}, &model.VoteHistory{},
			&model.Comment{}, &model.Favorite{}, &model.PostKeyword{},
		} {
			if err := tx.Where("post_id IN ?", ids).Delete(dep).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("like_type = ? AND target_id IN ?", model.LikeTypePost, ids).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}

		result := tx.Where("id IN ?", ids).Delete(&model.Post{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

// Restore moves trashed posts back to published.
func (s *PostAdminService) Restore(ctx context.Context, ids []int) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id IN ? AND status = ?", ids, model.PostStatusTrash).
		Update("status", model.PostStatusPublished)
	return result.RowsAffected, result.Error
}

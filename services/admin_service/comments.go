package admin_service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anke-go-api/model"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentAdminService struct {
	db *gorm.DB
}

func NewCommentAdminService(db *gorm.DB) *CommentAdminService {
	return &CommentAdminService{db: db}
}

// List pages comments, newest first, optionally for one post.
func (s *CommentAdminService) List(ctx context.Context, postID, page, pageSize int) ([]model.Comment, int64, error) {
	q := s.db.WithContext(ctx).Model(&model.Comment{})
	if postID > 0 {
		q = q.Where("post_id = ?", postID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := q.Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&comments).Error
	return comments, total, err
}

// Update edits a comment's content and optionally its status.
func (s *CommentAdminService) Update(ctx context.Context, id int, content, status string) error {
	updates := map[string]interface{}{"content": content}
	if status != "" {
		updates["status"] = status
	}

	result := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// BulkDelete removes comments and their likes in one transaction.
func (s *CommentAdminService) BulkDelete(ctx context.Context, ids []int) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("like_type = ? AND target_id IN ?", model.LikeTypeComment, ids).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}

		result := tx.Where("id IN ?", ids).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

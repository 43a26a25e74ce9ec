package app_service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anke-go-api/model"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Toggle bookmarks the post, or removes the bookmark if one exists.
// Returns the resulting state.
func (s *FavoriteService) Toggle(ctx context.Context, userID, postID int) (bool, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Select("id").
		Where("id = ? AND status = ?", postID, model.PostStatusPublished).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrPostNotFound
	}
	if err != nil {
		return false, err
	}

	var favorited bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Favorite
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error
		switch {
		case err == nil:
			favorited = false
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			favorited = true
			return tx.Create(&model.Favorite{UserID: userID, PostID: postID}).Error
		default:
			return err
		}
	})
	return favorited, err
}

// Check reports whether the user has bookmarked the post.
func (s *FavoriteService) Check(ctx context.Context, userID, postID int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// ListForUser returns the user's bookmarked posts, newest bookmark first.
func (s *FavoriteService) ListForUser(ctx context.Context, userID, page, pageSize int) ([]model.Post, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("favorites.user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN favorites ON favorites.post_id = posts.id").
		Where("favorites.user_id = ? AND posts.status = ?", userID, model.PostStatusPublished).
		Order("favorites.id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error
	return posts, total, err
}

package keyword_service

import (
	"context"

	"gorm.io/gorm"

	"anke-go-api/model"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Keywords(ctx context.Context) ([]model.Keyword, error) {
	var keywords []model.Keyword
	err := s.db.WithContext(ctx).Order("id").Find(&keywords).Error
	return keywords, err
}

func (s *GormStore) PublishedPosts(ctx context.Context) ([]PostText, error) {
	var posts []PostText
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("id", "title", "content").
		Where("status = ?", model.PostStatusPublished).
		Scan(&posts).Error
	return posts, err
}

func (s *GormStore) LinkExists(ctx context.Context, postID, keywordID int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostKeyword{}).
		Where("post_id = ? AND keyword_id = ?", postID, keywordID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateLink(ctx context.Context, postID, keywordID int) error {
	return s.db.WithContext(ctx).Create(&model.PostKeyword{
		PostID:    postID,
		KeywordID: keywordID,
	}).Error
}

// RefreshPostCounts recomputes keywords.post_count from the link table.
func (s *GormStore) RefreshPostCounts(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(
		"UPDATE keywords k SET post_count = " +
			"(SELECT COUNT(*) FROM post_keywords pk WHERE pk.keyword_id = k.id)",
	).Error
}

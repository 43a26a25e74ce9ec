package cleanup_service

import (
	"context"

	"gorm.io/gorm"

	"anke-go-api/model"
)

// GormStore backs the orphan scan with table-level reads.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) PostIDs(ctx context.Context) ([]int, error) {
	var ids []int
	err := s.db.WithContext(ctx).Model(&model.Post{}).Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) refs(ctx context.Context, m interface{}) ([]Ref, error) {
	var refs []Ref
	err := s.db.WithContext(ctx).Model(m).Select("id", "post_id").Scan(&refs).Error
	return refs, err
}

func (s *GormStore) VoteOptionRefs(ctx context.Context) ([]Ref, error) {
	return s.refs(ctx, &model.VoteOption{})
}

func (s *GormStore) VoteChoiceRefs(ctx context.Context) ([]Ref, error) {
	return s.refs(ctx, &model.VoteChoice{})
}

func (s *GormStore) CommentRefs(ctx context.Context) ([]Ref, error) {
	return s.refs(ctx, &model.Comment{})
}

func (s *GormStore) PostLikeRefs(ctx context.Context) ([]Ref, error) {
	var refs []Ref
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Select("id", "target_id AS post_id").
		Where("like_type = ?", model.LikeTypePost).
		Scan(&refs).Error
	return refs, err
}

func (s *GormStore) FavoriteRefs(ctx context.Context) ([]Ref, error) {
	return s.refs(ctx, &model.Favorite{})
}

func (s *GormStore) ZeroCountKeywordIDs(ctx context.Context) ([]int, error) {
	var ids []int
	err := s.db.WithContext(ctx).Model(&model.Keyword{}).
		Where("post_count = 0 AND keyword_type <> ?", model.KeywordTypeCategory).
		Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) PointAudits(ctx context.Context) ([]PointAudit, error) {
	var audits []PointAudit
	err := s.db.WithContext(ctx).Model(&model.PointRecord{}).
		Select("points.id AS point_id, points.user_id, points.amount, points.type, " +
			"points.created_at AS point_created_at, users.created_at AS user_created_at").
		Joins("LEFT JOIN users ON users.id = points.user_id").
		Scan(&audits).Error
	return audits, err
}

func (s *GormStore) DeleteOrphans(ctx context.Context, report *OrphanReport) (map[string]int64, error) {
	counts := make(map[string]int64)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		targets := []struct {
			key   string
			model interface{}
			ids   []int
		}{
			{"deleted_vote_options", &model.VoteOption{}, report.VoteOptions},
			{"deleted_vote_choices", &model.VoteChoice{}, report.VoteChoices},
			{"deleted_comments", &model.Comment{}, report.Comments},
			{"deleted_likes", &model.Like{}, report.Likes},
			{"deleted_favorites", &model.Favorite{}, report.Favorites},
			{"deleted_keywords", &model.Keyword{}, report.ZeroCountKeywords},
		}

		for _, t := range targets {
			if len(t.ids) == 0 {
				counts[t.key] = 0
				continue
			}
			result := tx.Where("id IN ?", t.ids).Delete(t.model)
			if result.Error != nil {
				return result.Error
			}
			counts[t.key] = result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

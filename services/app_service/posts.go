package app_service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"anke-go-api/inout"
	"anke-go-api/model"
	"anke-go-api/services/moderation_service"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrNotPostOwner   = errors.New("not the post owner")
	ErrChoiceNotFound = errors.New("choice not found")
	ErrAlreadyVoted   = errors.New("already voted on this post")
)

// BlockedContentError reports the word that rejected a submission.
type BlockedContentError struct {
	Word string
}

func (e *BlockedContentError) Error() string {
	return fmt.Sprintf("content contains a prohibited word: %s", e.Word)
}

// PostService is the app-surface post workflow. Every text submission and
// search query passes through the NG-word checker first.
type PostService struct {
	db      *gorm.DB
	checker *moderation_service.Checker
}

func NewPostService(db *gorm.DB, checker *moderation_service.Checker) *PostService {
	return &PostService{db: db, checker: checker}
}

// gate screens text. Block severity rejects; warn severity passes the
// result through so the handler can attach a warning.
func (s *PostService) gate(ctx context.Context, text string) (*moderation_service.CheckResult, error) {
	result, err := s.checker.Check(ctx, text)
	if err != nil {
		return nil, err
	}
	if result.Blocked() {
		return nil, &BlockedContentError{Word: result.Word}
	}
	if result.Flagged {
		return &result, nil
	}
	return nil, nil
}

// Create screens the text, then writes the post and its vote choices in
// one transaction.
func (s *PostService) Create(ctx context.Context, userID int, req *inout.CreatePostReq) (*model.Post, *moderation_service.CheckResult, error) {
	warning, err := s.gate(ctx, req.Title+" "+req.Content)
	if err != nil {
		return nil, nil, err
	}

	post := &model.Post{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Status:   model.PostStatusPublished,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, label := range req.Choices {
			if err := tx.Create(&model.VoteChoice{PostID: post.ID, Label: label}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return post, warning, nil
}

// Update edits a post the caller owns, screening the new text first.
func (s *PostService) Update(ctx context.Context, userID int, req *inout.UpdatePostReq) (*moderation_service.CheckResult, error) {
	warning, err := s.gate(ctx, req.Title+" "+req.Content)
	if err != nil {
		return nil, err
	}

	var post model.Post
	if err := s.db.WithContext(ctx).First(&post, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}

	err = s.db.WithContext(ctx).Model(&post).Updates(map[string]interface{}{
		"title":   req.Title,
		"content": req.Content,
	}).Error
	return warning, err
}

// List pages published posts, newest first.
func (s *PostService) List(ctx context.Context, req *inout.PostListReq) ([]model.Post, int64, error) {
	q := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ?", model.PostStatusPublished)
	if req.UserID > 0 {
		q = q.Where("user_id = ?", req.UserID)
	}
	if req.Category != "" {
		q = q.Where("category = ?", req.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := q.Order("id DESC").
		Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).
		Find(&posts).Error
	return posts, total, err
}

// PostDetail bundles a post with its choices and comments.
type PostDetail struct {
	Post     model.Post         `json:"post"`
	Choices  []model.VoteChoice `json:"choices"`
	Comments []model.Comment    `json:"comments"`
}

// Detail loads one published post and bumps its view counter.
func (s *PostService) Detail(ctx context.Context, postID int) (*PostDetail, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", postID, model.PostStatusPublished).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	s.db.WithContext(ctx).Model(&post).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))

	detail := &PostDetail{Post: post}
	if err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&detail.Choices).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, model.CommentStatusPublished).
		Order("id").
		Find(&detail.Comments).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

// Search screens the query, then matches title and content fragments.
func (s *PostService) Search(ctx context.Context, req *inout.PostSearchReq) ([]model.Post, int64, error) {
	if _, err := s.gate(ctx, req.Query); err != nil {
		return nil, 0, err
	}

	pattern := "%" + req.Query + "%"
	q := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ?", model.PostStatusPublished).
		Where("title LIKE ? OR content LIKE ?", pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := q.Order("id DESC").
		Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).
		Find(&posts).Error
	return posts, total, err
}

// Vote records one choice per user per post and bumps the tally. Guest
// votes (userID zero) are counted but not deduplicated.
func (s *PostService) Vote(ctx context.Context, userID int, req *inout.VoteReq) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var choice model.VoteChoice
		err := tx.Where("id = ? AND post_id = ?", req.ChoiceID, req.PostID).
			First(&choice).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChoiceNotFound
		}
		if err != nil {
			return err
		}

		history := &model.VoteHistory{PostID: req.PostID, ChoiceID: req.ChoiceID}
		if userID > 0 {
			var count int64
			if err := tx.Model(&model.VoteHistory{}).
				Where("post_id = ? AND user_id = ?", req.PostID, userID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrAlreadyVoted
			}
			history.UserID = &userID
		}

		if err := tx.Create(history).Error; err != nil {
			return err
		}
		return tx.Model(&choice).
			UpdateColumn("vote_count", gorm.Expr("vote_count + 1")).Error
	})
}

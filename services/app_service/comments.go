package app_service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"anke-go-api/model"
	"anke-go-api/services/moderation_service"
)

var ErrCommentNotFound = errors.New("comment not found")

// Notifier records an in-app notification for a user. A write failure
// never fails the comment itself.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

type CommentService struct {
	db       *gorm.DB
	checker  *moderation_service.Checker
	notifier Notifier
}

func NewCommentService(db *gorm.DB, checker *moderation_service.Checker, notifier Notifier) *CommentService {
	return &CommentService{db: db, checker: checker, notifier: notifier}
}

// Create screens the text and attaches the comment to a published post.
// userID zero records a guest comment.
func (s *CommentService) Create(ctx context.Context, userID, postID int, content string) (*model.Comment, *moderation_service.CheckResult, error) {
	result, err := s.checker.Check(ctx, content)
	if err != nil {
		return nil, nil, err
	}
	if result.Blocked() {
		return nil, nil, &BlockedContentError{Word: result.Word}
	}
	var warning *moderation_service.CheckResult
	if result.Flagged {
		warning = &result
	}

	var post model.Post
	err = s.db.WithContext(ctx).Select("id", "user_id", "title").
		Where("id = ? AND status = ?", postID, model.PostStatusPublished).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrPostNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	comment := &model.Comment{
		PostID:  postID,
		Content: content,
		Status:  model.CommentStatusPublished,
	}
	if userID > 0 {
		comment.UserID = &userID
	}

	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, nil, err
	}

	// Tell the author about the new comment, unless they wrote it.
	if s.notifier != nil && post.UserID > 0 && post.UserID != userID {
		n := &model.Notification{
			UserID: post.UserID,
			Type:   model.NotificationTypeComment,
			Title:  "New comment on your post",
			Body:   fmt.Sprintf("Your post %q received a new comment.", post.Title),
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			log.Printf("comment notification write failed for post %d: %v", postID, err)
		}
	}
	return comment, warning, nil
}

// ListForPost returns a post's published comments, oldest first.
func (s *CommentService) ListForPost(ctx context.Context, postID int) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, model.CommentStatusPublished).
		Order("id").
		Find(&comments).Error
	return comments, err
}

// LikeState is the toggle outcome returned to the client.
type LikeState struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// ToggleLike flips a like on a comment and returns the new state. Guests
// (userID zero) always add an anonymous like; there is no row to take
// back.
func (s *CommentService) ToggleLike(ctx context.Context, userID, commentID int) (*LikeState, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Select("id").First(&comment, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}

	state := &LikeState{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if userID > 0 {
			var existing model.Like
			err := tx.Where("like_type = ? AND target_id = ? AND user_id = ?",
				model.LikeTypeComment, commentID, userID).
				First(&existing).Error
			switch {
			case err == nil:
				if err := tx.Delete(&existing).Error; err != nil {
					return err
				}
				state.Liked = false
			case errors.Is(err, gorm.ErrRecordNotFound):
				like := &model.Like{
					LikeType: model.LikeTypeComment,
					TargetID: commentID,
					UserID:   &userID,
				}
				if err := tx.Create(like).Error; err != nil {
					return err
				}
				state.Liked = true
			default:
				return err
			}
		} else {
			like := &model.Like{
				LikeType: model.LikeTypeComment,
				TargetID: commentID,
			}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			state.Liked = true
		}

		return tx.Model(&model.Like{}).
			Where("like_type = ? AND target_id = ?", model.LikeTypeComment, commentID).
			Count(&state.LikeCount).Error
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

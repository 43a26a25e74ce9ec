package cleanup_service

import (
	"context"
	"time"
)

// Ref is a dependent row pointing at a post.
type Ref struct {
	ID     int
	PostID int
}

// PointAudit is one ledger row joined with its owning user's creation
// time. UserCreatedAt is nil when the user no longer exists.
type PointAudit struct {
	PointID        int
	UserID         int
	Amount         int
	Type           string
	PointCreatedAt time.Time
	UserCreatedAt  *time.Time
}

// Store exposes the full-table reads the scan-and-diff needs, plus the
// transactional orphan delete.
type Store interface {
	PostIDs(ctx context.Context) ([]int, error)
	VoteOptionRefs(ctx context.Context) ([]Ref, error)
	VoteChoiceRefs(ctx context.Context) ([]Ref, error)
	CommentRefs(ctx context.Context) ([]Ref, error)
	PostLikeRefs(ctx context.Context) ([]Ref, error)
	FavoriteRefs(ctx context.Context) ([]Ref, error)
	ZeroCountKeywordIDs(ctx context.Context) ([]int, error)
	PointAudits(ctx context.Context) ([]PointAudit, error)
	DeleteOrphans(ctx context.Context, report *OrphanReport) (map[string]int64, error)
}

// OrphanReport lists dependent rows whose parent post no longer exists,
// plus keywords with no remaining posts.
type OrphanReport struct {
	VoteOptions       []int `json:"orphaned_vote_options"`
	VoteChoices       []int `json:"orphaned_vote_choices"`
	Comments          []int `json:"orphaned_comments"`
	Likes             []int `json:"orphaned_likes"`
	Favorites         []int `json:"orphaned_favorites"`
	ZeroCountKeywords []int `json:"orphaned_keywords"`
}

// Counts summarizes the report per relation.
func (r *OrphanReport) Counts() map[string]int {
	return map[string]int{
		"orphaned_vote_options": len(r.VoteOptions),
		"orphaned_vote_choices": len(r.VoteChoices),
		"orphaned_comments":     len(r.Comments),
		"orphaned_likes":        len(r.Likes),
		"orphaned_favorites":    len(r.Favorites),
		"orphaned_keywords":     len(r.ZeroCountKeywords),
	}
}

// Total is the number of rows the report covers.
func (r *OrphanReport) Total() int {
	return len(r.VoteOptions) + len(r.VoteChoices) + len(r.Comments) +
		len(r.Likes) + len(r.Favorites) + len(r.ZeroCountKeywords)
}

// SuspectPoint is a ledger row flagged by the audit.
type SuspectPoint struct {
	PointID int    `json:"id"`
	UserID  int    `json:"user_id"`
	Amount  int    `json:"amount"`
	Type    string `json:"type"`
	Reason  string `json:"reason"`
}

const (
	ReasonUserMissing  = "user no longer exists"
	ReasonPredatesUser = "point predates user creation"
)

// Scanner runs the batch orphan scans. Every scan is a full-table
// read-and-diff per relation; nothing incremental is maintained, so this
// is an O(n) batch job, not a real-time check.
type Scanner struct {
	store Store
}

func NewScanner(store Store) *Scanner {
	return &Scanner{store: store}
}

// Scan computes the orphan set for every dependent relation.
func (s *Scanner) Scan(ctx context.Context) (*OrphanReport, error) {
	postIDs, err := s.store.PostIDs(ctx)
	if err != nil {
		return nil, err
	}

	existing := make(map[int]struct{}, len(postIDs))
	for _, id := range postIDs {
		existing[id] = struct{}{}
	}

	report := &OrphanReport{}

	relations := []struct {
		fetch func(context.Context) ([]Ref, error)
		dest  *[]int
	}{
		{s.store.VoteOptionRefs, &report.VoteOptions},
		{s.store.VoteChoiceRefs, &report.VoteChoices},
		{s.store.CommentRefs, &report.Comments},
		{s.store.PostLikeRefs, &report.Likes},
		{s.store.FavoriteRefs, &report.Favorites},
	}

	for _, rel := range relations {
		refs, err := rel.fetch(ctx)
		if err != nil {
			return nil, err
		}
		for _, ref := range refs {
			if _, ok := existing[ref.PostID]; !ok {
				*rel.dest = append(*rel.dest, ref.ID)
			}
		}
	}

	keywords, err := s.store.ZeroCountKeywordIDs(ctx)
	if err != nil {
		return nil, err
	}
	report.ZeroCountKeywords = keywords

	return report, nil
}

// AuditPoints flags ledger rows whose user is gone, or whose creation
// time precedes the user's own creation time (data-entry errors from the
// historical migration).
func (s *Scanner) AuditPoints(ctx context.Context) ([]SuspectPoint, error) {
	audits, err := s.store.PointAudits(ctx)
	if err != nil {
		return nil, err
	}

	var suspects []SuspectPoint
	for _, a := range audits {
		var reason string
		switch {
		case a.UserCreatedAt == nil:
			reason = ReasonUserMissing
		case a.PointCreatedAt.Before(*a.UserCreatedAt):
			reason = ReasonPredatesUser
		default:
			continue
		}

		suspects = append(suspects, SuspectPoint{
			PointID: a.PointID,
			UserID:  a.UserID,
			Amount:  a.Amount,
			Type:    a.Type,
			Reason:  reason,
		})
	}

	return suspects, nil
}

// Cleanup scans and then deletes the reported rows in one transaction,
// returning per-relation deleted counts.
func (s *Scanner) Cleanup(ctx context.Context) (map[string]int64, error) {
	report, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.DeleteOrphans(ctx, report)
}

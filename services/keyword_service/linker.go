package keyword_service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"anke-go-api/model"
)

// PostText is the searchable text of one published post.
type PostText struct {
	ID      int
	Title   string
	Content string
}

type Store interface {
	Keywords(ctx context.Context) ([]model.Keyword, error)
	PublishedPosts(ctx context.Context) ([]PostText, error)
	LinkExists(ctx context.Context, postID, keywordID int) (bool, error)
	CreateLink(ctx context.Context, postID, keywordID int) error
	RefreshPostCounts(ctx context.Context) error
}

// LinkResult summarizes one linker run.
type LinkResult struct {
	Linked  int `json:"linked"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type searchablePost struct {
	id   int
	text string
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML removes markup so keyword matching only sees visible text.
func stripHTML(s string) string {
	return tagPattern.ReplaceAllString(s, " ")
}

// Linker attaches keywords to published posts by case-insensitive
// substring match over title and stripped content.
type Linker struct {
	store Store
}

func NewLinker(store Store) *Linker {
	return &Linker{store: store}
}

// Run links every matching keyword/post pair that is not already linked.
// A failure on one keyword is logged and does not stop the rest.
func (l *Linker) Run(ctx context.Context) (*LinkResult, error) {
	keywords, err := l.store.Keywords(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := l.store.PublishedPosts(ctx)
	if err != nil {
		return nil, err
	}

	searchable := make([]searchablePost, 0, len(posts))
	for _, p := range posts {
		text := strings.ToLower(p.Title + " " + stripHTML(p.Content))
		searchable = append(searchable, searchablePost{id: p.ID, text: text})
	}

	result := &LinkResult{}
	for _, kw := range keywords {
		name := strings.ToLower(strings.TrimSpace(kw.Keyword))
		if name == "" {
			continue
		}
		if err := l.linkKeyword(ctx, kw.ID, name, searchable, result); err != nil {
			log.Printf("keyword linker: keyword %d (%s): %v", kw.ID, kw.Keyword, err)
			result.Failed++
		}
	}

	if err := l.store.RefreshPostCounts(ctx); err != nil {
		log.Printf("keyword linker: refresh post counts: %v", err)
	}

	return result, nil
}

func (l *Linker) linkKeyword(ctx context.Context, keywordID int, name string, posts []searchablePost, result *LinkResult) error {
	for _, p := range posts {
		if !strings.Contains(p.text, name) {
			continue
		}
		exists, err := l.store.LinkExists(ctx, p.id, keywordID)
		if err != nil {
			return err
		}
		if exists {
			result.Skipped++
			continue
		}
		if err := l.store.CreateLink(ctx, p.id, keywordID); err != nil {
			return err
		}
		result.Linked++
	}
	return nil
}

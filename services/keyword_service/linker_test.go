package keyword_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anke-go-api/model"
)

type link struct {
	postID, keywordID int
}

type fakeLinkStore struct {
	keywords  []model.Keyword
	posts     []PostText
	links     map[link]bool
	failWord  string
	refreshed bool
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{links: make(map[link]bool)}
}

func (s *fakeLinkStore) Keywords(context.Context) ([]model.Keyword, error) {
	return s.keywords, nil
}

func (s *fakeLinkStore) PublishedPosts(context.Context) ([]PostText, error) {
	return s.posts, nil
}

func (s *fakeLinkStore) LinkExists(_ context.Context, postID, keywordID int) (bool, error) {
	return s.links[link{postID, keywordID}], nil
}

func (s *fakeLinkStore) CreateLink(_ context.Context, postID, keywordID int) error {
	for _, kw := range s.keywords {
		if kw.ID == keywordID && kw.Keyword == s.failWord {
			return errors.New("insert failed")
		}
	}
	s.links[link{postID, keywordID}] = true
	return nil
}

func (s *fakeLinkStore) RefreshPostCounts(context.Context) error {
	s.refreshed = true
	return nil
}

func TestLinkerMatchesTitleAndContent(t *testing.T) {
	store := newFakeLinkStore()
	store.keywords = []model.Keyword{
		{ID: 1, Keyword: "insurance"},
		{ID: 2, Keyword: "pension"},
	}
	store.posts = []PostText{
		{ID: 10, Title: "Insurance questions", Content: "nothing else"},
		{ID: 11, Title: "other", Content: "thinking about my pension lately"},
		{ID: 12, Title: "unrelated", Content: "unrelated"},
	}

	result, err := NewLinker(store).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Linked)
	assert.Equal(t, 0, result.Skipped)
	assert.True(t, store.links[link{10, 1}])
	assert.True(t, store.links[link{11, 2}])
	assert.True(t, store.refreshed)
}

func TestLinkerIgnoresHTMLMarkup(t *testing.T) {
	store := newFakeLinkStore()
	store.keywords = []model.Keyword{
		{ID: 1, Keyword: "strong"},
		{ID: 2, Keyword: "money"},
	}
	store.posts = []PostText{
		// "strong" appears only as a tag name, not visible text
		{ID: 10, Title: "title", Content: "<strong>save</strong> your <em>money</em>"},
	}

	result, err := NewLinker(store).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Linked)
	assert.False(t, store.links[link{10, 1}])
	assert.True(t, store.links[link{10, 2}])
}

func TestLinkerSkipsExistingLinks(t *testing.T) {
	store := newFakeLinkStore()
	store.keywords = []model.Keyword{{ID: 1, Keyword: "tax"}}
	store.posts = []PostText{{ID: 10, Title: "tax question", Content: ""}}
	store.links[link{10, 1}] = true

	result, err := NewLinker(store).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Linked)
	assert.Equal(t, 1, result.Skipped)
}

func TestLinkerRunTwiceIsIdempotent(t *testing.T) {
	store := newFakeLinkStore()
	store.keywords = []model.Keyword{{ID: 1, Keyword: "tax"}}
	store.posts = []PostText{{ID: 10, Title: "tax question", Content: ""}}

	linker := NewLinker(store)
	first, err := linker.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Linked)

	second, err := linker.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Linked)
	assert.Equal(t, 1, second.Skipped)
}

func TestLinkerCaseInsensitive(t *testing.T) {
	store := newFakeLinkStore()
	store.keywords = []model.Keyword{{ID: 1, Keyword: "NISA"}}
	store.posts = []PostText{{ID: 10, Title: "about nisa accounts", Content: ""}}

	result, err := NewLinker(store).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Linked)
}

func TestLinkerContinuesAfterKeywordFailure(t *testing.T) {
	store := newFakeLinkStore()
	store.keywords = []model.Keyword{
		{ID: 1, Keyword: "broken"},
		{ID: 2, Keyword: "healthy"},
	}
	store.posts = []PostText{{ID: 10, Title: "broken and healthy", Content: ""}}
	store.failWord = "broken"

	result, err := NewLinker(store).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Linked)
	assert.True(t, store.links[link{10, 2}])
}

func TestLinkerSkipsBlankKeywords(t *testing.T) {
	store := newFakeLinkStore()
	store.keywords = []model.Keyword{{ID: 1, Keyword: "  "}}
	store.posts = []PostText{{ID: 10, Title: "anything", Content: "anything"}}

	result, err := NewLinker(store).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Linked)
	assert.Empty(t, store.links)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, " save  your money", stripHTML("<p>save</p> your money"))
	assert.Equal(t, "plain", stripHTML("plain"))
}

package moderation_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anke-go-api/model"
)

type countingSource struct {
	words []model.NgWord
	calls int
	err   error
}

func (s *countingSource) ActiveWords(context.Context) ([]model.NgWord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.words, nil
}

func words() []model.NgWord {
	return []model.NgWord{
		{ID: 1, Word: "spam", WordType: model.NgWordTypeExact, Severity: model.NgWordSeverityBlock},
		{ID: 2, Word: "casino", WordType: model.NgWordTypePartial, Severity: model.NgWordSeverityBlock, Category: "gambling"},
		{ID: 3, Word: "sketchy", WordType: model.NgWordTypePartial, Severity: model.NgWordSeverityWarn},
	}
}

func TestCheckExactRequiresWholeString(t *testing.T) {
	checker := NewChecker(&countingSource{words: words()})

	result, err := checker.Check(context.Background(), "spam")
	require.NoError(t, err)
	assert.True(t, result.Blocked())
	assert.Equal(t, "spam", result.Word)

	// exact words do not match inside longer text
	result, err = checker.Check(context.Background(), "this is spam mail")
	require.NoError(t, err)
	assert.False(t, result.Flagged)
}

func TestCheckPartialMatchesSubstring(t *testing.T) {
	checker := NewChecker(&countingSource{words: words()})

	result, err := checker.Check(context.Background(), "visit my casino site")
	require.NoError(t, err)
	assert.True(t, result.Blocked())
	assert.Equal(t, "casino", result.Word)
	assert.Equal(t, "gambling", result.Category)
}

func TestCheckCaseInsensitive(t *testing.T) {
	checker := NewChecker(&countingSource{words: words()})

	result, err := checker.Check(context.Background(), "CaSiNo NIGHT")
	require.NoError(t, err)
	assert.True(t, result.Flagged)

	result, err = checker.Check(context.Background(), "SPAM")
	require.NoError(t, err)
	assert.True(t, result.Flagged)
}

func TestCheckWarnSeverityFlagsWithoutBlocking(t *testing.T) {
	checker := NewChecker(&countingSource{words: words()})

	result, err := checker.Check(context.Background(), "kind of sketchy deal")
	require.NoError(t, err)
	assert.True(t, result.Flagged)
	assert.False(t, result.Blocked())
	assert.Equal(t, model.NgWordSeverityWarn, result.Severity)
}

func TestCheckCleanText(t *testing.T) {
	checker := NewChecker(&countingSource{words: words()})

	result, err := checker.Check(context.Background(), "a perfectly fine question")
	require.NoError(t, err)
	assert.False(t, result.Flagged)
}

func TestCheckBlankTextSkipsLoad(t *testing.T) {
	source := &countingSource{words: words()}
	checker := NewChecker(source)

	for _, text := range []string{"", "   ", "\n\t"} {
		result, err := checker.Check(context.Background(), text)
		require.NoError(t, err)
		assert.False(t, result.Flagged)
	}
	assert.Equal(t, 0, source.calls)
}

func TestCheckCachesWithinTTL(t *testing.T) {
	source := &countingSource{words: words()}
	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	checker := NewChecker(source, WithClock(func() time.Time { return current }))

	_, err := checker.Check(context.Background(), "hello")
	require.NoError(t, err)
	_, err = checker.Check(context.Background(), "world")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	// just inside the window
	current = current.Add(DefaultTTL - time.Second)
	_, err = checker.Check(context.Background(), "again")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestCheckRefetchesAfterTTL(t *testing.T) {
	source := &countingSource{words: words()}
	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	checker := NewChecker(source, WithClock(func() time.Time { return current }))

	_, err := checker.Check(context.Background(), "hello")
	require.NoError(t, err)

	current = current.Add(DefaultTTL)
	_, err = checker.Check(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	source := &countingSource{words: words()}
	checker := NewChecker(source)

	_, err := checker.Check(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	checker.Invalidate()

	_, err = checker.Check(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestDictionaryChangeVisibleAfterInvalidate(t *testing.T) {
	source := &countingSource{words: words()}
	checker := NewChecker(source)

	result, err := checker.Check(context.Background(), "brand new scam")
	require.NoError(t, err)
	assert.False(t, result.Flagged)

	source.words = append(source.words, model.NgWord{
		ID: 4, Word: "scam", WordType: model.NgWordTypePartial, Severity: model.NgWordSeverityBlock,
	})
	checker.Invalidate()

	result, err = checker.Check(context.Background(), "brand new scam")
	require.NoError(t, err)
	assert.True(t, result.Blocked())
}

// activeOnlySource mimics the store contract: inactive rows are filtered
// at load time and never reach the matcher.
type activeOnlySource struct {
	all []model.NgWord
}

func (s *activeOnlySource) ActiveWords(context.Context) ([]model.NgWord, error) {
	var active []model.NgWord
	for _, w := range s.all {
		if w.IsActive {
			active = append(active, w)
		}
	}
	return active, nil
}

func TestInactiveWordsNeverMatch(t *testing.T) {
	source := &activeOnlySource{all: []model.NgWord{
		{ID: 1, Word: "retired", WordType: model.NgWordTypePartial, Severity: model.NgWordSeverityBlock, IsActive: false},
		{ID: 2, Word: "live", WordType: model.NgWordTypePartial, Severity: model.NgWordSeverityBlock, IsActive: true},
	}}
	checker := NewChecker(source)

	result, err := checker.Check(context.Background(), "a retired word")
	require.NoError(t, err)
	assert.False(t, result.Flagged)

	result, err = checker.Check(context.Background(), "a live word")
	require.NoError(t, err)
	assert.True(t, result.Flagged)
}

func TestCheckSourceError(t *testing.T) {
	source := &countingSource{err: errors.New("db down")}
	checker := NewChecker(source)

	_, err := checker.Check(context.Background(), "hello")
	assert.Error(t, err)
}

func TestFirstMatchWins(t *testing.T) {
	source := &countingSource{words: []model.NgWord{
		{ID: 1, Word: "bad", WordType: model.NgWordTypePartial, Severity: model.NgWordSeverityWarn},
		{ID: 2, Word: "bad word", WordType: model.NgWordTypePartial, Severity: model.NgWordSeverityBlock},
	}}
	checker := NewChecker(source)

	result, err := checker.Check(context.Background(), "a bad word indeed")
	require.NoError(t, err)
	assert.Equal(t, "bad", result.Word)
	assert.False(t, result.Blocked())
}

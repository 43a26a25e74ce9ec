package moderation_service

import (
	"context"
	"strings"
	"sync"
	"time"

	"anke-go-api/model"
	"anke-go-api/pkg/monitoring"
)

// DefaultTTL is how long a loaded word list stays valid.
const DefaultTTL = 5 * time.Minute

// WordSource loads the active moderation terms.
type WordSource interface {
	ActiveWords(ctx context.Context) ([]model.NgWord, error)
}

// CheckResult reports whether text matched a moderation term.
type CheckResult struct {
	Flagged  bool   `json:"flagged"`
	Word     string `json:"word,omitempty"`
	Severity string `json:"severity,omitempty"`
	Category string `json:"category,omitempty"`
}

// Blocked reports whether the match severity rejects the action outright.
// Warn-severity matches let the action proceed with a warning.
func (r CheckResult) Blocked() bool {
	return r.Flagged && r.Severity == model.NgWordSeverityBlock
}

// Checker caches the active NG-word list for a fixed window. The clock is
// injectable so the TTL behavior is testable without wall-clock sleeps.
// Concurrent refills after expiry each take a full snapshot; duplicate
// loads are benign.
type Checker struct {
	source WordSource
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	words    []model.NgWord
	loadedAt time.Time
	loaded   bool
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithClock injects a deterministic clock.
func WithClock(now func() time.Time) CheckerOption {
	return func(c *Checker) {
		c.now = now
	}
}

// WithTTL overrides the cache window.
func WithTTL(ttl time.Duration) CheckerOption {
	return func(c *Checker) {
		c.ttl = ttl
	}
}

func NewChecker(source WordSource, opts ...CheckerOption) *Checker {
	c := &Checker{
		source: source,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check compares text against every cached word, case-insensitively.
// Exact words require whole-string equality; partial words match on
// substring containment. First match in cache order wins. Blank text is
// never flagged and never triggers a load.
func (c *Checker) Check(ctx context.Context, text string) (CheckResult, error) {
	if strings.TrimSpace(text) == "" {
		return CheckResult{}, nil
	}

	words, err := c.getWords(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	lowerText := strings.ToLower(text)

	for _, w := range words {
		lowerWord := strings.ToLower(w.Word)

		var hit bool
		switch w.WordType {
		case model.NgWordTypeExact:
			hit = lowerText == lowerWord
		case model.NgWordTypePartial:
			hit = strings.Contains(lowerText, lowerWord)
		}

		if hit {
			monitoring.CountNgWordHit(w.Severity)
			return CheckResult{
				Flagged:  true,
				Word:     w.Word,
				Severity: w.Severity,
				Category: w.Category,
			}, nil
		}
	}

	return CheckResult{}, nil
}

// Invalidate drops the cached list; the next Check refetches. Called by
// the admin word-list CRUD.
func (c *Checker) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.words = nil
	c.loaded = false
	c.loadedAt = time.Time{}
}

func (c *Checker) getWords(ctx context.Context) ([]model.NgWord, error) {
	c.mu.RLock()
	if c.loaded && c.now().Sub(c.loadedAt) < c.ttl {
		words := c.words
		c.mu.RUnlock()
		return words, nil
	}
	c.mu.RUnlock()

	words, err := c.source.ActiveWords(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.words = words
	c.loadedAt = c.now()
	c.loaded = true
	c.mu.Unlock()

	return words, nil
}

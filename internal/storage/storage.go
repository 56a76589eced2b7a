package storage

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/eugenenazirov/landing/internal/content"
	"github.com/eugenenazirov/landing/internal/editable"
	"github.com/eugenenazirov/landing/internal/navigate"
)

var (
	// ErrInvalidPath indicates the path does not address a writable string leaf of the section.
	ErrInvalidPath = errors.New("path does not address an editable field")
	// ErrInvalidHref indicates an href edit that the navigation resolver cannot act on.
	ErrInvalidHref = errors.New("href is not a usable navigation target")
	// ErrInvalidText indicates text that still carries markup after repeated sanitising.
	ErrInvalidText = errors.New("text contains markup")
)

// maxCleanPasses bounds how many entity-encoding layers cleanText peels off.
const maxCleanPasses = 8

// Storage provides access to the overrides the page is rendered from.
type Storage interface {
	Overrides() content.Overrides
	Replace(ov content.Overrides)
	Page() content.Page
	SetField(section content.Section, path editable.Path, value string) error
	Reset(section content.Section) error
	// UpdatedAt is when the overrides last changed, by edit, reset or reload.
	UpdatedAt() time.Time
}

// Option configures a MemoryStorage.
type Option func(*MemoryStorage)

// WithClock overrides the time source used for UpdatedAt, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *MemoryStorage) {
		s.clock = clock
	}
}

// MemoryStorage keeps overrides in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu        sync.RWMutex
	overrides content.Overrides
	updatedAt time.Time
	sanitize  *bluemonday.Policy
	resolver  *navigate.Resolver
	clock     func() time.Time
}

// NewMemoryStorage initialises storage with no overrides, so the page renders
// its defaults. Href edits are validated with resolver (nil for no origin).
func NewMemoryStorage(resolver *navigate.Resolver, opts ...Option) *MemoryStorage {
	if resolver == nil {
		resolver = navigate.NewResolver(nil)
	}
	s := &MemoryStorage{
		sanitize: bluemonday.StrictPolicy(),
		resolver: resolver,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.updatedAt = s.clock()
	return s
}

// UpdatedAt reports when the overrides last changed.
func (s *MemoryStorage) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}

// Overrides returns a defensive copy of the current overrides.
func (s *MemoryStorage) Overrides() content.Overrides {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.overrides.Clone()
}

// Replace swaps in a whole overrides document.
func (s *MemoryStorage) Replace(ov content.Overrides) {
	ov = ov.Clone()

	s.mu.Lock()
	s.overrides = ov
	s.updatedAt = s.clock()
	s.mu.Unlock()
}

// Page merges the current overrides over the defaults.
func (s *MemoryStorage) Page() content.Page {
	return s.Overrides().Effective()
}

// SetField writes value to the leaf at path in section. With shallow merging
// the whole top-level field containing the leaf becomes an override. Text is
// stripped of markup; hrefs must be navigable.
func (s *MemoryStorage) SetField(section content.Section, path editable.Path, value string) error {
	if path.IsZero() {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	switch editable.KindOf(path) {
	case editable.KindHref:
		value = strings.TrimSpace(value)
		if t := s.resolver.Classify(value); t.Kind == navigate.None {
			return fmt.Errorf("%w: %q", ErrInvalidHref, value)
		}
	default:
		clean, err := s.cleanText(value)
		if err != nil {
			return err
		}
		value = clean
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.overrides.Clone()
	page := next.Effective()
	cfg, err := page.Config(section)
	if err != nil {
		return err
	}
	if err := editable.Set(cfg, path, value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPath, path, err)
	}
	if err := next.Pin(section, cfg, path.Head()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPath, path, err)
	}

	s.overrides = next
	s.updatedAt = s.clock()
	return nil
}

// Reset drops every override of section.
func (s *MemoryStorage) Reset(section content.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.overrides.Reset(section); err != nil {
		return err
	}
	s.updatedAt = s.clock()
	return nil
}

// cleanText strips markup. bluemonday escapes what it keeps, so its output is
// unescaped back to plain text and sanitised again until nothing changes;
// entity-encoded tags are removed the same way as literal ones.
func (s *MemoryStorage) cleanText(value string) (string, error) {
	for range maxCleanPasses {
		next := html.UnescapeString(s.sanitize.Sanitize(value))
		if next == value {
			return value, nil
		}
		value = next
	}
	return "", fmt.Errorf("%w: too many encoding layers", ErrInvalidText)
}

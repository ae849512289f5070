package content

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Persistence is the storage port for the content override. Load returns
// nil data (and nil error) when no override has been saved.
type Persistence interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// Store holds the current portfolio document and keeps it in sync with the
// persistence backend. There is a single shared instance per process; every
// successful Set is immediately visible to all readers.
type Store struct {
	mu      sync.RWMutex
	current Content
	persist Persistence
}

// NewStore creates a Store backed by the given persistence port. A saved
// override replaces the built-in defaults wholesale when present and valid.
// A present-but-broken override is logged and ignored; the store falls back
// to defaults for the session.
func NewStore(p Persistence) *Store {
	s := &Store{current: DefaultContent(), persist: p}

	data, err := p.Load()
	if err != nil {
		log.Printf("content: loading saved override: %v", err)
		return s
	}
	if data == nil {
		return s
	}

	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		log.Printf("content: saved override is not valid JSON, using defaults: %v", err)
		return s
	}
	if err := Validate(c); err != nil {
		log.Printf("content: saved override rejected, using defaults: %v", err)
		return s
	}
	s.current = c
	return s
}

// Get returns the current document.
func (s *Store) Get() Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the entire document and persists it. There are no partial
// or merge semantics; the new document stands alone. The in-memory document
// is updated even when persisting fails, so current readers always see the
// latest accepted write.
func (s *Store) Set(c Content) error {
	if err := Validate(c); err != nil {
		return fmt.Errorf("validating content: %w", err)
	}

	s.mu.Lock()
	s.current = c
	s.mu.Unlock()

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding content: %w", err)
	}
	if err := s.persist.Save(data); err != nil {
		return fmt.Errorf("persisting content: %w", err)
	}
	return nil
}

// Reset discards any persisted override and reverts to the built-in
// defaults.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.current = DefaultContent()
	s.mu.Unlock()

	if err := s.persist.Clear(); err != nil {
		return fmt.Errorf("clearing stored override: %w", err)
	}
	return nil
}

// Validate checks that the fixed document shape is intact: required leaf
// text present, all four skill categories populated, and all three featured
// projects titled. Leaf values otherwise vary freely.
func Validate(c Content) error {
	if c.Hero.Title == "" {
		return fmt.Errorf("hero title is empty")
	}
	if c.Links.Resume == "" || c.Links.GitHub == "" || c.Links.LinkedIn == "" {
		return fmt.Errorf("required links missing (resume, github, linkedin)")
	}

	categories := []SkillCategory{
		c.Skills.Categories.ProductManagement,
		c.Skills.Categories.DataAnalytics,
		c.Skills.Categories.TechnicalTools,
		c.Skills.Categories.LeadershipStrategy,
	}
	for _, cat := range categories {
		if cat.Title == "" {
			return fmt.Errorf("skill category missing a title")
		}
		if len(cat.Skills) == 0 {
			return fmt.Errorf("skill category %q has no skills", cat.Title)
		}
	}

	projects := []Project{
		c.FeaturedWork.Projects.AICoverLetter,
		c.FeaturedWork.Projects.AICVPlatform,
		c.FeaturedWork.Projects.DataPipeline,
	}
	for i, p := range projects {
		if p.Title == "" {
			return fmt.Errorf("featured project %d missing a title", i+1)
		}
	}

	return nil
}

package wiki

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/repository"
)

// Service defines the read-only seed reference interface
type Service interface {
	// List returns reference entries sorted by name. An empty category
	// returns the merged fruit and vegetable catalog.
	List(ctx context.Context, category domain.SeedCategory) ([]domain.WikiEntry, error)

	// Get retrieves one entry by id
	Get(ctx context.Context, id string) (*domain.WikiEntry, error)

	// Search returns entries whose name contains the query, case-insensitive
	Search(ctx context.Context, query string) ([]domain.WikiEntry, error)
}

type service struct {
	repo repository.Wiki
}

// NewService creates a new wiki service
func NewService(repo repository.Wiki) Service {
	return &service{repo: repo}
}

// List returns reference entries sorted by name, optionally filtered by
// category
func (s *service) List(ctx context.Context, category domain.SeedCategory) ([]domain.WikiEntry, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	if category != "" {
		filtered := entries[:0]
		for _, entry := range entries {
			if entry.Category == category {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	sortByName(entries)
	return entries, nil
}

// Get retrieves one entry by id
func (s *service) Get(ctx context.Context, id string) (*domain.WikiEntry, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns entries whose name contains the query, sorted by name
func (s *service) Search(ctx context.Context, query string) ([]domain.WikiEntry, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.List(ctx, "")
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	matched := entries[:0]
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), query) {
			matched = append(matched, entry)
		}
	}

	sortByName(matched)
	return matched, nil
}

func sortByName(entries []domain.WikiEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID < entries[j].ID
	})
}

package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/phrasecoach/phrasecoach/plugin/catalog"
)

// FindDrillItem is the find condition for drill items.
type FindDrillItem struct {
	ID   *string
	Unit *int
	Type *catalog.ItemType

	// Pagination
	Limit  *int
	Offset *int
}

const catalogCacheKey = "drill_item:all"

// SeedDrillItems loads the catalog into an empty item table. Seeding a
// non-empty table is a no-op: catalog rows are immutable once written.
func (s *Store) SeedDrillItems(ctx context.Context, items []*catalog.Item) (int, error) {
	existing, err := s.driver.ListDrillItems(ctx, &FindDrillItem{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list drill items")
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, item := range items {
		if _, err := s.driver.CreateDrillItem(ctx, item); err != nil {
			return created, errors.Wrapf(err, "failed to seed drill item %s", item.ID)
		}
		created++
	}
	s.itemCache.Delete(catalogCacheKey)
	return created, nil
}

// ListDrillItems returns catalog items matching the find condition. The
// unfiltered catalog is served from cache since items never change after
// seeding.
func (s *Store) ListDrillItems(ctx context.Context, find *FindDrillItem) ([]*catalog.Item, error) {
	cacheable := find == nil || (find.ID == nil && find.Unit == nil && find.Type == nil && find.Limit == nil)
	if cacheable {
		if cached, ok := s.itemCache.Get(catalogCacheKey); ok {
			return cached.([]*catalog.Item), nil
		}
	}

	items, err := s.driver.ListDrillItems(ctx, find)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drill items")
	}
	if cacheable {
		s.itemCache.Set(catalogCacheKey, items)
	}
	return items, nil
}

// GetDrillItem returns one catalog item or nil when absent.
func (s *Store) GetDrillItem(ctx context.Context, id string) (*catalog.Item, error) {
	items, err := s.driver.ListDrillItems(ctx, &FindDrillItem{ID: &id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get drill item %s", id)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

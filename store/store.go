package store

import (
	"time"

	"github.com/phrasecoach/phrasecoach/internal/profile"
	"github.com/phrasecoach/phrasecoach/store/cache"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// itemCache holds the immutable drill catalog. Review state is never
	// cached here.
	itemCache *cache.Cache
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
		itemCache: cache.New(cache.Config{
			DefaultTTL:      30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
			MaxItems:        8,
		}),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	s.itemCache.Close()
	return s.driver.Close()
}

package v1

import (
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/phrasecoach/phrasecoach/plugin/session"
	"github.com/phrasecoach/phrasecoach/store/cache"
)

// drillSession is one live practice run. Sessions are server-side state: the
// queue order, the reinsertion bookkeeping and the counters never leave the
// process, clients only see the current item and the progress counters.
type drillSession struct {
	mu sync.Mutex

	UID       string
	Queue     *session.Queue
	CreatedAt time.Time
}

// sessionRegistry holds live sessions. Abandoned sessions age out with the
// cache TTL; review state is already persisted per attempt so nothing is
// lost when one expires.
type sessionRegistry struct {
	cache *cache.Cache
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		cache: cache.New(cache.Config{
			DefaultTTL:      2 * time.Hour,
			CleanupInterval: 10 * time.Minute,
			MaxItems:        256,
		}),
	}
}

func (r *sessionRegistry) Create(queue *session.Queue) *drillSession {
	s := &drillSession{
		UID:       shortuuid.New(),
		Queue:     queue,
		CreatedAt: time.Now(),
	}
	r.cache.Set(s.UID, s)
	return s
}

func (r *sessionRegistry) Get(uid string) (*drillSession, bool) {
	v, ok := r.cache.Get(uid)
	if !ok {
		return nil, false
	}
	return v.(*drillSession), true
}

package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/plugin/srs"
)

var now = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func item(id string, commonality float64) *catalog.Item {
	return &catalog.Item{ID: id, TargetText: "x", Unit: 9, Commonality: commonality}
}

func stateAt(s srs.State, due time.Time) srs.ReviewState {
	rs := srs.ReviewState{ItemID: "x", State: s, Interval: 3, Ease: 2.5, Reps: 1}
	rs.Due = &due
	return rs
}

func TestBuildSessionOrdering(t *testing.T) {
	items := []*catalog.Item{
		item("rev-later", 0.5),
		item("new-low", 0.2),
		item("new-high", 0.9),
		item("rev-soon", 0.5),
		item("mastered", 0.99),
		item("not-due", 0.5),
	}
	states := map[string]srs.ReviewState{
		"rev-later": stateAt(srs.Review, now.Add(-1*time.Hour)),
		"rev-soon":  stateAt(srs.Review, now.Add(-48*time.Hour)),
		"mastered":  stateAt(srs.Mastered, now.Add(-48*time.Hour)),
		"not-due":   stateAt(srs.Review, now.Add(24*time.Hour)),
	}

	q := BuildSession(items, states, now, DefaultCap)

	var ids []string
	for _, it := range q.Items() {
		ids = append(ids, it.ID)
	}
	// New first by descending commonality, then due ascending.
	assert.Equal(t, []string{"new-high", "new-low", "rev-soon", "rev-later"}, ids)
}

func TestBuildSessionNewTieBreaksByID(t *testing.T) {
	items := []*catalog.Item{item("b", 0.5), item("a", 0.5), item("c", 0.5)}

	q := BuildSession(items, nil, now, DefaultCap)

	require.Equal(t, 3, q.Len())
	assert.Equal(t, "a", q.Items()[0].ID)
	assert.Equal(t, "b", q.Items()[1].ID)
	assert.Equal(t, "c", q.Items()[2].ID)
}

func TestBuildSessionCap(t *testing.T) {
	var items []*catalog.Item
	for i := 0; i < 50; i++ {
		items = append(items, item(string(rune('a'+i%26))+string(rune('a'+i/26)), float64(i)))
	}

	for _, cap := range []int{0, 1, 20, 100} {
		q := BuildSession(items, nil, now, cap)
		if q.Len() > cap {
			t.Errorf("cap %d: queue has %d items", cap, q.Len())
		}
	}

	// Negative cap clamps to an empty session rather than panicking.
	assert.Equal(t, 0, BuildSession(items, nil, now, -1).Len())
}

func TestQueueAdvanceAndCounts(t *testing.T) {
	q := BuildSession([]*catalog.Item{item("a", 1), item("b", 0.5)}, nil, now, DefaultCap)

	require.NotNil(t, q.Current())
	assert.Equal(t, "a", q.Current().ID)

	q.Advance(true)
	assert.Equal(t, "b", q.Current().ID)
	q.Advance(false)
	assert.Nil(t, q.Current())

	correct, total := q.Counts()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 2, total)
}

func TestReinsertOnMiss(t *testing.T) {
	var items []*catalog.Item
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		items = append(items, item(id, 1))
	}
	q := BuildSession(items, nil, now, DefaultCap)
	q.rng = rand.New(rand.NewSource(7)) // deterministic offset

	missed := q.Items()[0]
	originalLen := q.Len()
	q.ReinsertOnMiss(0, missed)

	require.Equal(t, originalLen+1, q.Len())

	// Original forward occurrence is untouched.
	assert.Equal(t, missed.ID, q.Items()[0].ID)

	// The reinserted copy sits in [currentIndex+3, currentIndex+5].
	pos := -1
	for i := 1; i < q.Len(); i++ {
		if q.Items()[i] == missed {
			pos = i
			break
		}
	}
	require.NotEqual(t, -1, pos, "missed item not reinserted")
	assert.GreaterOrEqual(t, pos, 3)
	assert.LessOrEqual(t, pos, 5)
}

func TestReinsertOnMissNearQueueEnd(t *testing.T) {
	q := BuildSession([]*catalog.Item{item("a", 1), item("b", 0.5)}, nil, now, DefaultCap)
	q.rng = rand.New(rand.NewSource(1))

	missed := q.Items()[1]
	q.ReinsertOnMiss(1, missed)

	require.Equal(t, 3, q.Len())
	// Offset would overshoot; the item lands at the queue end.
	assert.Equal(t, missed, q.Items()[2])
}

func TestReinsertOffsetBounds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		var items []*catalog.Item
		for i := 0; i < 12; i++ {
			items = append(items, item(string(rune('a'+i)), 1))
		}
		q := BuildSession(items, nil, now, DefaultCap)
		q.rng = rand.New(rand.NewSource(seed))

		q.ReinsertOnMiss(2, q.Items()[2])

		pos := -1
		for i := 0; i < q.Len(); i++ {
			if i != 2 && q.Items()[i] == items[2] {
				pos = i
			}
		}
		require.NotEqual(t, -1, pos, "seed %d: not reinserted", seed)
		assert.Greater(t, pos, 2, "seed %d: reinserted at or before current index", seed)
		assert.GreaterOrEqual(t, pos, 5, "seed %d", seed)
		assert.LessOrEqual(t, pos, 7, "seed %d", seed)
	}
}

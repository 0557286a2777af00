// Package session builds and maintains the ordered queue of drill items for
// one study sitting. The queue is an explicit value object owned by the
// caller; reinsertion of missed items is a well-defined splice independent of
// any iteration cursor.
package session

import (
	"math/rand"
	"sort"
	"time"

	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/plugin/srs"
)

const (
	// DefaultCap is the stock session size.
	DefaultCap = 20

	// Reinsertion window after a miss: far enough that the learner recalls
	// instead of pattern-matching, near enough that the item is not lost to
	// the session boundary.
	reinsertMinOffset = 3
	reinsertMaxOffset = 5
)

// Queue is the ordered work list for one session, with its transient
// counters. It is discarded at session end.
type Queue struct {
	items        []*catalog.Item
	position     int
	correctCount int
	totalCount   int
	rng          *rand.Rand
}

// BuildSession selects and orders the drill items for a session.
//
// An item is a candidate when it has never been graded (New), or when it is
// Learning/Review and due at or before now. Mastered items are excluded
// unconditionally. New items come first, by descending commonality with ties
// broken by item ID; due items follow by ascending due time. The result is
// truncated to cap items.
func BuildSession(items []*catalog.Item, states map[string]srs.ReviewState, now time.Time, cap int) *Queue {
	if cap < 0 {
		cap = 0
	}

	type candidate struct {
		item  *catalog.Item
		state srs.ReviewState
	}
	var fresh, due []candidate
	for _, item := range items {
		state, ok := states[item.ID]
		if !ok {
			state = srs.NewReviewState(item.ID)
		}
		state.Clamp()

		switch state.State {
		case srs.Mastered:
			continue
		case srs.New:
			fresh = append(fresh, candidate{item, state})
		default:
			if state.IsDue(now) {
				due = append(due, candidate{item, state})
			}
		}
	}

	sort.Slice(fresh, func(i, j int) bool {
		if fresh[i].item.Commonality != fresh[j].item.Commonality {
			return fresh[i].item.Commonality > fresh[j].item.Commonality
		}
		return fresh[i].item.ID < fresh[j].item.ID
	})
	sort.Slice(due, func(i, j int) bool {
		di, dj := due[i].state.Due, due[j].state.Due
		switch {
		case di == nil && dj != nil:
			return true
		case di != nil && dj == nil:
			return false
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.Before(*dj)
		}
		return due[i].item.ID < due[j].item.ID
	})

	ordered := make([]*catalog.Item, 0, len(fresh)+len(due))
	for _, c := range fresh {
		ordered = append(ordered, c.item)
	}
	for _, c := range due {
		ordered = append(ordered, c.item)
	}
	if len(ordered) > cap {
		ordered = ordered[:cap]
	}

	return &Queue{
		items: ordered,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Items returns the queue contents in order.
func (q *Queue) Items() []*catalog.Item {
	return q.items
}

// Len returns the number of items remaining in the queue, the current
// position included.
func (q *Queue) Len() int {
	return len(q.items)
}

// Position returns the index of the current item.
func (q *Queue) Position() int {
	return q.position
}

// Current returns the item at the queue position, or nil when the session is
// exhausted.
func (q *Queue) Current() *catalog.Item {
	if q.position >= len(q.items) {
		return nil
	}
	return q.items[q.position]
}

// Advance records the outcome of the current attempt and moves to the next
// item.
func (q *Queue) Advance(correct bool) {
	q.totalCount++
	if correct {
		q.correctCount++
	}
	if q.position < len(q.items) {
		q.position++
	}
}

// Counts returns the per-session counters (correct, total).
func (q *Queue) Counts() (int, int) {
	return q.correctCount, q.totalCount
}

// ReinsertOnMiss splices the item back in at currentIndex plus a random
// offset in [3, 5], clamped to the end of the queue. The item's original
// forward occurrence, if not yet reached, stays where it is: the item is
// spliced, not moved.
func (q *Queue) ReinsertOnMiss(currentIndex int, item *catalog.Item) {
	offset := reinsertMinOffset + q.rng.Intn(reinsertMaxOffset-reinsertMinOffset+1)
	at := currentIndex + offset
	if at > len(q.items) {
		at = len(q.items)
	}
	q.items = append(q.items, nil)
	copy(q.items[at+1:], q.items[at:])
	q.items[at] = item
}

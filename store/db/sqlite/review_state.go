package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/phrasecoach/phrasecoach/plugin/srs"
	"github.com/phrasecoach/phrasecoach/store"
)

func (d *DB) UpsertReviewState(ctx context.Context, upsert *srs.ReviewState) (*srs.ReviewState, error) {
	stmt := `INSERT INTO review_state (item_id, state, interval_days, ease, reps, lapses, due_ts, last_reviewed_ts)
		VALUES (` + placeholders(8) + `)
		ON CONFLICT (item_id) DO UPDATE SET
			state = EXCLUDED.state,
			interval_days = EXCLUDED.interval_days,
			ease = EXCLUDED.ease,
			reps = EXCLUDED.reps,
			lapses = EXCLUDED.lapses,
			due_ts = EXCLUDED.due_ts,
			last_reviewed_ts = EXCLUDED.last_reviewed_ts`

	args := []any{
		upsert.ItemID,
		upsert.State.String(),
		upsert.Interval,
		upsert.Ease,
		upsert.Reps,
		upsert.Lapses,
		timeToNullInt64(upsert.Due),
		timeToNullInt64(upsert.LastReviewed),
	}
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert review state %s", upsert.ItemID)
	}
	return upsert, nil
}

func (d *DB) GetReviewState(ctx context.Context, itemID string) (*srs.ReviewState, error) {
	states, err := d.ListReviewStates(ctx, &store.FindReviewState{ItemIDs: []string{itemID}})
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, nil
	}
	return states[0], nil
}

func (d *DB) ListReviewStates(ctx context.Context, find *store.FindReviewState) ([]*srs.ReviewState, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find != nil {
		if len(find.ItemIDs) > 0 {
			list := []any{}
			for _, id := range find.ItemIDs {
				list = append(list, id)
			}
			where = append(where, "item_id IN ("+placeholders(len(list))+")")
			args = append(args, list...)
		}
		if v := find.State; v != nil {
			where, args = append(where, "state = "+placeholder(len(args)+1)), append(args, v.String())
		}
	}

	query := `SELECT item_id, state, interval_days, ease, reps, lapses, due_ts, last_reviewed_ts
		FROM review_state
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY item_id ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list review states")
	}
	defer rows.Close()

	list := []*srs.ReviewState{}
	for rows.Next() {
		state, err := scanReviewState(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, state)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate review states")
	}
	return list, nil
}

func scanReviewState(rows *sql.Rows) (*srs.ReviewState, error) {
	var state srs.ReviewState
	var stateName string
	var dueTs, lastReviewedTs sql.NullInt64
	if err := rows.Scan(
		&state.ItemID,
		&stateName,
		&state.Interval,
		&state.Ease,
		&state.Reps,
		&state.Lapses,
		&dueTs,
		&lastReviewedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to scan review state")
	}
	// An unknown state name leaves the zero State, which the caller repairs
	// with Clamp.
	_ = state.State.UnmarshalText([]byte(stateName))
	state.Due = nullInt64ToTime(dueTs)
	state.LastReviewed = nullInt64ToTime(lastReviewedTs)
	return &state, nil
}

func timeToNullInt64(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func nullInt64ToTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}

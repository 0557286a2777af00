package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/phrasecoach/phrasecoach/store"
)

func (d *DB) CreateReviewLog(ctx context.Context, create *store.ReviewLog) (*store.ReviewLog, error) {
	stmt := `INSERT INTO review_log (id, item_id, session_uid, rating, error_kinds, created_ts)
		VALUES (` + placeholders(6) + `)`
	args := []any{create.ID, create.ItemID, create.SessionUID, create.Rating, create.ErrorKinds, create.CreatedTs}

	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrapf(err, "failed to create review log for item %s", create.ItemID)
	}
	return create, nil
}

func (d *DB) ListReviewLogs(ctx context.Context, find *store.FindReviewLog) ([]*store.ReviewLog, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find != nil {
		if v := find.ItemID; v != nil {
			where, args = append(where, "item_id = "+placeholder(len(args)+1)), append(args, *v)
		}
		if v := find.SessionUID; v != nil {
			where, args = append(where, "session_uid = "+placeholder(len(args)+1)), append(args, *v)
		}
	}

	query := `SELECT id, item_id, session_uid, rating, error_kinds, created_ts
		FROM review_log
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC, id ASC`
	if find != nil && find.Limit != nil {
		query += " LIMIT " + placeholder(len(args)+1)
		args = append(args, *find.Limit)
		if find.Offset != nil {
			query += " OFFSET " + placeholder(len(args)+1)
			args = append(args, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list review logs")
	}
	defer rows.Close()

	list := []*store.ReviewLog{}
	for rows.Next() {
		var log store.ReviewLog
		if err := rows.Scan(
			&log.ID,
			&log.ItemID,
			&log.SessionUID,
			&log.Rating,
			&log.ErrorKinds,
			&log.CreatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan review log")
		}
		list = append(list, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate review logs")
	}
	return list, nil
}

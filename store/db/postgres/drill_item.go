package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/store"
)

func (d *DB) CreateDrillItem(ctx context.Context, create *catalog.Item) (*catalog.Item, error) {
	fields := []string{"id", "target_text", "target_text_informal", "gloss_text", "unit", "commonality", "type"}
	args := []any{create.ID, create.TargetText, create.TargetTextInformal, create.GlossText, create.Unit, create.Commonality, string(create.Type)}

	stmt := "INSERT INTO drill_item (" + strings.Join(fields, ", ") + ") VALUES (" + placeholders(len(args)) + ")"
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrapf(err, "failed to create drill item %s", create.ID)
	}
	return create, nil
}

func (d *DB) ListDrillItems(ctx context.Context, find *store.FindDrillItem) ([]*catalog.Item, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find != nil {
		if v := find.ID; v != nil {
			where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
		}
		if v := find.Unit; v != nil {
			where, args = append(where, "unit = "+placeholder(len(args)+1)), append(args, *v)
		}
		if v := find.Type; v != nil {
			where, args = append(where, "type = "+placeholder(len(args)+1)), append(args, string(*v))
		}
	}

	query := `SELECT id, target_text, target_text_informal, gloss_text, unit, commonality, type
		FROM drill_item
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY unit ASC, commonality DESC, id ASC`
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
		return nil, errors.Wrap(err, "failed to list drill items")
	}
	defer rows.Close()

	list := []*catalog.Item{}
	for rows.Next() {
		var item catalog.Item
		var itemType string
		if err := rows.Scan(
			&item.ID,
			&item.TargetText,
			&item.TargetTextInformal,
			&item.GlossText,
			&item.Unit,
			&item.Commonality,
			&itemType,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan drill item")
		}
		item.Type = catalog.ItemType(itemType)
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate drill items")
	}
	return list, nil
}

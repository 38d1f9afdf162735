package sqlite

import (
	"context"

	repo "nutricoach/internal/settings/repository"
)

func (r *implRepository) ListSettings(ctx context.Context, clientID string) (map[string]string, error) {
	const query = `SELECT key, value FROM settings WHERE client_id = ?`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSettings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSettings"), err)
			return nil, repo.ErrFailedToList
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSettings"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) UpsertSettings(ctx context.Context, clientID string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	const query = `
		INSERT INTO settings (client_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (client_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertSettings"), err)
		return repo.ErrFailedToUpsert
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("UpsertSettings"), err)
		return repo.ErrFailedToUpsert
	}
	defer stmt.Close()

	for k, v := range values {
		if _, err := stmt.ExecContext(ctx, clientID, k, v); err != nil {
			r.l.Errorf(ctx, "%s exec %s: %v", r.dsn("UpsertSettings"), k, err)
			return repo.ErrFailedToUpsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertSettings"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

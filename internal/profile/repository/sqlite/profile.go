package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"nutricoach/internal/model"
	repo "nutricoach/internal/profile/repository"
)

func (r *implRepository) GetProfile(ctx context.Context, clientID string) (model.UserProfile, error) {
	const query = `SELECT body FROM profiles WHERE client_id = ?`

	var body string
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProfile{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.UserProfile{}, repo.ErrFailedToGet
	}

	var p model.UserProfile
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetProfile"), err)
		return model.UserProfile{}, repo.ErrCorruptRecord
	}
	return p, nil
}

func (r *implRepository) SaveProfile(ctx context.Context, clientID string, p model.UserProfile) error {
	const query = `
		INSERT INTO profiles (client_id, body, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (client_id) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`

	body, err := json.Marshal(p)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("SaveProfile"), err)
		return repo.ErrFailedToSave
	}
	if _, err := r.db.ExecContext(ctx, query, clientID, string(body)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveProfile"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

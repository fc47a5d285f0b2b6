package repository

import (
	"context"
	"database/sql"
	"time"
)

// TokenRepo stores refresh tokens.  Only the SHA-256 hash of a token
// is persisted; the raw value travels back to the client once and is
// never kept server-side.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh saves a hashed refresh token for a user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, hash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, hash, exp.UTC())
	return err
}

// Consume looks up an unexpired refresh token by hash, deletes it and
// returns the owning user id.  Deleting on use rotates the token:
// a stolen refresh token can be replayed at most once.  Returns
// sql.ErrNoRows when the hash is unknown or expired.
func (r *TokenRepo) Consume(ctx context.Context, hash string) (uint64, error) {
	var userID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM refresh_tokens WHERE token_hash=? AND expires_at > UTC_TIMESTAMP() LIMIT 1",
		hash).Scan(&userID)
	if err != nil {
		return 0, err
	}
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM refresh_tokens WHERE token_hash=?", hash); err != nil {
		return 0, err
	}
	return userID, nil
}

// DeleteExpired clears out tokens past their expiry.  Called
// opportunistically; failures are harmless.
func (r *TokenRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM refresh_tokens WHERE expires_at <= UTC_TIMESTAMP()")
	return err
}

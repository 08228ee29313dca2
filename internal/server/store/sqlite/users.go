package sqlite

import (
	"context"
	"database/sql"

	"github.com/acadeval/encuestas/internal/server/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, password_hash, role, two_factor_secret,
	two_factor_enabled, created_at, updated_at, deleted_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ? AND deleted_at IS NULL`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = ? AND deleted_at IS NULL`, username)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, two_factor_secret,
			two_factor_enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, string(u.Role),
		mapOptionalString(u.TwoFactorSecret), u.TwoFactorEnabled, ts, ts)
	return mapConflict(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, id, username, passwordHash string, role domain.Role) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE users
		SET username = ?, password_hash = ?, role = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		username, passwordHash, string(role), now(), id))
}

func (r *usersRepo) SoftDeleteUser(ctx context.Context, id string) error {
	ts := now()
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE users
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, ts, ts, id))
}

func (r *usersRepo) UpdateTwoFactorSecret(ctx context.Context, id, secret string) error {
	// Overwriting the secret drops the user back to unconfirmed; the new
	// secret must be verified before it counts.
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE users
		SET two_factor_secret = ?, two_factor_enabled = 0, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, secret, now(), id))
}

func (r *usersRepo) EnableTwoFactor(ctx context.Context, id string) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE users
		SET two_factor_enabled = 1, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, now(), id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		role      string
		secret    sql.NullString
		deletedAt sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &secret,
		&u.TwoFactorEnabled, &u.CreatedAt, &u.UpdatedAt, &deletedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.TwoFactorSecret = mapNullStringPtr(secret)
	u.DeletedAt = mapNullTimePtr(deletedAt)
	return u, nil
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/acadeval/encuestas/internal/server/domain"
)

type facultiesRepo struct {
	db dbtx
}

const facultyColumns = `id, name, head, created_at, updated_at, deleted_at`

func (r *facultiesRepo) GetFacultyByID(ctx context.Context, id string) (domain.Faculty, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+facultyColumns+`
		FROM faculties
		WHERE id = ? AND deleted_at IS NULL`, id)
	return scanFaculty(row)
}

func (r *facultiesRepo) ListFaculties(ctx context.Context) ([]domain.Faculty, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+facultyColumns+`
		FROM faculties
		WHERE deleted_at IS NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *facultiesRepo) CreateFaculty(ctx context.Context, f domain.Faculty) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO faculties (id, name, head, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.Head, ts, ts)
	return err
}

func (r *facultiesRepo) UpdateFaculty(ctx context.Context, id, name, head string) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE faculties
		SET name = ?, head = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		name, head, now(), id))
}

func (r *facultiesRepo) SoftDeleteFaculty(ctx context.Context, id string) error {
	ts := now()
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE faculties
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, ts, ts, id))
}

func scanFaculty(row rowScanner) (domain.Faculty, error) {
	var (
		f         domain.Faculty
		deletedAt sql.NullTime
	)
	err := row.Scan(&f.ID, &f.Name, &f.Head, &f.CreatedAt, &f.UpdatedAt, &deletedAt)
	if err != nil {
		return domain.Faculty{}, mapNotFound(err)
	}
	f.DeletedAt = mapNullTimePtr(deletedAt)
	return f, nil
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/acadeval/encuestas/internal/server/domain"
)

type professorsRepo struct {
	db dbtx
}

const professorColumns = `id, name, sex, age, subject, image, faculty_id,
	created_at, updated_at, deleted_at`

func (r *professorsRepo) GetProfessorByID(ctx context.Context, id string) (domain.Professor, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+professorColumns+`
		FROM professors
		WHERE id = ? AND deleted_at IS NULL`, id)
	return scanProfessor(row)
}

func (r *professorsRepo) ListProfessors(ctx context.Context) ([]domain.Professor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+professorColumns+`
		FROM professors
		WHERE deleted_at IS NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Professor
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *professorsRepo) CreateProfessor(ctx context.Context, p domain.Professor) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO professors (id, name, sex, age, subject, image, faculty_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Sex, p.Age, p.Subject,
		mapOptionalString(p.Image), mapOptionalString(p.FacultyID), ts, ts)
	return err
}

func (r *professorsRepo) UpdateProfessor(ctx context.Context, id, name, sex, age, subject string, facultyID *string) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE professors
		SET name = ?, sex = ?, age = ?, subject = ?, faculty_id = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		name, sex, age, subject, mapOptionalString(facultyID), now(), id))
}

func (r *professorsRepo) UpdateProfessorImage(ctx context.Context, id, image string) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE professors
		SET image = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, image, now(), id))
}

func (r *professorsRepo) SoftDeleteProfessor(ctx context.Context, id string) error {
	ts := now()
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE professors
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, ts, ts, id))
}

func scanProfessor(row rowScanner) (domain.Professor, error) {
	var (
		p         domain.Professor
		image     sql.NullString
		facultyID sql.NullString
		deletedAt sql.NullTime
	)
	err := row.Scan(&p.ID, &p.Name, &p.Sex, &p.Age, &p.Subject, &image,
		&facultyID, &p.CreatedAt, &p.UpdatedAt, &deletedAt)
	if err != nil {
		return domain.Professor{}, mapNotFound(err)
	}
	p.Image = mapNullStringPtr(image)
	p.FacultyID = mapNullStringPtr(facultyID)
	p.DeletedAt = mapNullTimePtr(deletedAt)
	return p, nil
}

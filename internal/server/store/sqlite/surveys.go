package sqlite

import (
	"context"
	"database/sql"

	"github.com/acadeval/encuestas/internal/server/domain"
)

type surveysRepo struct {
	db dbtx
}

const surveyColumns = `id, name, user_id, created_at, updated_at, deleted_at`

func (r *surveysRepo) GetSurveyByID(ctx context.Context, id string) (domain.Survey, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+surveyColumns+`
		FROM surveys
		WHERE id = ? AND deleted_at IS NULL`, id)
	return scanSurvey(row)
}

func (r *surveysRepo) ListSurveys(ctx context.Context) ([]domain.Survey, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+surveyColumns+`
		FROM surveys
		WHERE deleted_at IS NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Survey
	for rows.Next() {
		s, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *surveysRepo) CreateSurvey(ctx context.Context, s domain.Survey) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO surveys (id, name, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, mapOptionalString(s.UserID), ts, ts)
	return err
}

func (r *surveysRepo) UpdateSurvey(ctx context.Context, id, name string, userID *string) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE surveys
		SET name = ?, user_id = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		name, mapOptionalString(userID), now(), id))
}

func (r *surveysRepo) SoftDeleteSurvey(ctx context.Context, id string) error {
	ts := now()
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE surveys
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, ts, ts, id))
}

func scanSurvey(row rowScanner) (domain.Survey, error) {
	var (
		s         domain.Survey
		userID    sql.NullString
		deletedAt sql.NullTime
	)
	err := row.Scan(&s.ID, &s.Name, &userID, &s.CreatedAt, &s.UpdatedAt, &deletedAt)
	if err != nil {
		return domain.Survey{}, mapNotFound(err)
	}
	s.UserID = mapNullStringPtr(userID)
	s.DeletedAt = mapNullTimePtr(deletedAt)
	return s, nil
}

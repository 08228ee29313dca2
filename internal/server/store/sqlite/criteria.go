package sqlite

import (
	"context"
	"database/sql"

	"github.com/acadeval/encuestas/internal/server/domain"
)

type criteriaRepo struct {
	db dbtx
}

const criterionColumns = `id, name, survey_id, created_at, updated_at, deleted_at`

func (r *criteriaRepo) GetCriterionByID(ctx context.Context, id string) (domain.Criterion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+criterionColumns+`
		FROM criteria
		WHERE id = ? AND deleted_at IS NULL`, id)
	return scanCriterion(row)
}

func (r *criteriaRepo) ListCriteria(ctx context.Context) ([]domain.Criterion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+criterionColumns+`
		FROM criteria
		WHERE deleted_at IS NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Criterion
	for rows.Next() {
		c, err := scanCriterion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *criteriaRepo) CreateCriterion(ctx context.Context, c domain.Criterion) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO criteria (id, name, survey_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, mapOptionalString(c.SurveyID), ts, ts)
	return err
}

func (r *criteriaRepo) UpdateCriterion(ctx context.Context, id, name string, surveyID *string) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE criteria
		SET name = ?, survey_id = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		name, mapOptionalString(surveyID), now(), id))
}

func (r *criteriaRepo) SoftDeleteCriterion(ctx context.Context, id string) error {
	ts := now()
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE criteria
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, ts, ts, id))
}

func scanCriterion(row rowScanner) (domain.Criterion, error) {
	var (
		c         domain.Criterion
		surveyID  sql.NullString
		deletedAt sql.NullTime
	)
	err := row.Scan(&c.ID, &c.Name, &surveyID, &c.CreatedAt, &c.UpdatedAt, &deletedAt)
	if err != nil {
		return domain.Criterion{}, mapNotFound(err)
	}
	c.SurveyID = mapNullStringPtr(surveyID)
	c.DeletedAt = mapNullTimePtr(deletedAt)
	return c, nil
}

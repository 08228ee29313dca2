package sqlite

import (
	"context"
	"database/sql"

	"github.com/acadeval/encuestas/internal/server/domain"
)

type evaluationsRepo struct {
	db dbtx
}

const evaluationColumns = `id, kind, criterion_id, created_at, updated_at, deleted_at`

func (r *evaluationsRepo) GetEvaluationByID(ctx context.Context, id string) (domain.Evaluation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+evaluationColumns+`
		FROM evaluations
		WHERE id = ? AND deleted_at IS NULL`, id)
	return scanEvaluation(row)
}

func (r *evaluationsRepo) ListEvaluations(ctx context.Context) ([]domain.Evaluation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+evaluationColumns+`
		FROM evaluations
		WHERE deleted_at IS NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *evaluationsRepo) CreateEvaluation(ctx context.Context, e domain.Evaluation) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, kind, criterion_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Kind, mapOptionalString(e.CriterionID), ts, ts)
	return err
}

func (r *evaluationsRepo) UpdateEvaluation(ctx context.Context, id, kind string, criterionID *string) error {
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE evaluations
		SET kind = ?, criterion_id = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		kind, mapOptionalString(criterionID), now(), id))
}

func (r *evaluationsRepo) SoftDeleteEvaluation(ctx context.Context, id string) error {
	ts := now()
	return requireRow(r.db.ExecContext(ctx, `
		UPDATE evaluations
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`, ts, ts, id))
}

func scanEvaluation(row rowScanner) (domain.Evaluation, error) {
	var (
		e           domain.Evaluation
		criterionID sql.NullString
		deletedAt   sql.NullTime
	)
	err := row.Scan(&e.ID, &e.Kind, &criterionID, &e.CreatedAt, &e.UpdatedAt, &deletedAt)
	if err != nil {
		return domain.Evaluation{}, mapNotFound(err)
	}
	e.CriterionID = mapNullStringPtr(criterionID)
	e.DeletedAt = mapNullTimePtr(deletedAt)
	return e, nil
}

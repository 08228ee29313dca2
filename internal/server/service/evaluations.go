package service

import (
	"context"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/idx"
)

type EvaluationService struct {
	Store store.Store
}

func (s *EvaluationService) Get(ctx context.Context, id string) (domain.Evaluation, error) {
	return s.Store.Evaluations().GetEvaluationByID(ctx, id)
}

func (s *EvaluationService) List(ctx context.Context) ([]domain.Evaluation, error) {
	return s.Store.Evaluations().ListEvaluations(ctx)
}

func (s *EvaluationService) Create(ctx context.Context, kind string, criterionID *string) (domain.Evaluation, error) {
	e := domain.Evaluation{ID: idx.New().String(), Kind: kind, CriterionID: criterionID}
	if err := s.Store.Evaluations().CreateEvaluation(ctx, e); err != nil {
		return domain.Evaluation{}, err
	}
	return s.Store.Evaluations().GetEvaluationByID(ctx, e.ID)
}

func (s *EvaluationService) Update(ctx context.Context, id, kind string, criterionID *string) (domain.Evaluation, error) {
	if err := s.Store.Evaluations().UpdateEvaluation(ctx, id, kind, criterionID); err != nil {
		return domain.Evaluation{}, err
	}
	return s.Store.Evaluations().GetEvaluationByID(ctx, id)
}

func (s *EvaluationService) Delete(ctx context.Context, id string) error {
	return s.Store.Evaluations().SoftDeleteEvaluation(ctx, id)
}

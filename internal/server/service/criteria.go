package service

import (
	"context"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/idx"
)

type CriterionService struct {
	Store store.Store
}

func (s *CriterionService) Get(ctx context.Context, id string) (domain.Criterion, error) {
	return s.Store.Criteria().GetCriterionByID(ctx, id)
}

func (s *CriterionService) List(ctx context.Context) ([]domain.Criterion, error) {
	return s.Store.Criteria().ListCriteria(ctx)
}

func (s *CriterionService) Create(ctx context.Context, name string, surveyID *string) (domain.Criterion, error) {
	c := domain.Criterion{ID: idx.New().String(), Name: name, SurveyID: surveyID}
	if err := s.Store.Criteria().CreateCriterion(ctx, c); err != nil {
		return domain.Criterion{}, err
	}
	return s.Store.Criteria().GetCriterionByID(ctx, c.ID)
}

func (s *CriterionService) Update(ctx context.Context, id, name string, surveyID *string) (domain.Criterion, error) {
	if err := s.Store.Criteria().UpdateCriterion(ctx, id, name, surveyID); err != nil {
		return domain.Criterion{}, err
	}
	return s.Store.Criteria().GetCriterionByID(ctx, id)
}

func (s *CriterionService) Delete(ctx context.Context, id string) error {
	return s.Store.Criteria().SoftDeleteCriterion(ctx, id)
}

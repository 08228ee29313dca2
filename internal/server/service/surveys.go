package service

import (
	"context"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/idx"
)

type SurveyService struct {
	Store store.Store
}

func (s *SurveyService) Get(ctx context.Context, id string) (domain.Survey, error) {
	return s.Store.Surveys().GetSurveyByID(ctx, id)
}

func (s *SurveyService) List(ctx context.Context) ([]domain.Survey, error) {
	return s.Store.Surveys().ListSurveys(ctx)
}

func (s *SurveyService) Create(ctx context.Context, name string, userID *string) (domain.Survey, error) {
	sv := domain.Survey{ID: idx.New().String(), Name: name, UserID: userID}
	if err := s.Store.Surveys().CreateSurvey(ctx, sv); err != nil {
		return domain.Survey{}, err
	}
	return s.Store.Surveys().GetSurveyByID(ctx, sv.ID)
}

func (s *SurveyService) Update(ctx context.Context, id, name string, userID *string) (domain.Survey, error) {
	if err := s.Store.Surveys().UpdateSurvey(ctx, id, name, userID); err != nil {
		return domain.Survey{}, err
	}
	return s.Store.Surveys().GetSurveyByID(ctx, id)
}

func (s *SurveyService) Delete(ctx context.Context, id string) error {
	return s.Store.Surveys().SoftDeleteSurvey(ctx, id)
}

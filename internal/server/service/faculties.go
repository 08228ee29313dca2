package service

import (
	"context"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/idx"
)

type FacultyService struct {
	Store store.Store
}

func (s *FacultyService) Get(ctx context.Context, id string) (domain.Faculty, error) {
	return s.Store.Faculties().GetFacultyByID(ctx, id)
}

func (s *FacultyService) List(ctx context.Context) ([]domain.Faculty, error) {
	return s.Store.Faculties().ListFaculties(ctx)
}

func (s *FacultyService) Create(ctx context.Context, name, head string) (domain.Faculty, error) {
	f := domain.Faculty{ID: idx.New().String(), Name: name, Head: head}
	if err := s.Store.Faculties().CreateFaculty(ctx, f); err != nil {
		return domain.Faculty{}, err
	}
	return s.Store.Faculties().GetFacultyByID(ctx, f.ID)
}

func (s *FacultyService) Update(ctx context.Context, id, name, head string) (domain.Faculty, error) {
	if err := s.Store.Faculties().UpdateFaculty(ctx, id, name, head); err != nil {
		return domain.Faculty{}, err
	}
	return s.Store.Faculties().GetFacultyByID(ctx, id)
}

func (s *FacultyService) Delete(ctx context.Context, id string) error {
	return s.Store.Faculties().SoftDeleteFaculty(ctx, id)
}

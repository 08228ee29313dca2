package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/storage"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/idx"
)

type ProfessorService struct {
	Store   store.Store
	Objects storage.ObjectStore
}

func (s *ProfessorService) Get(ctx context.Context, id string) (domain.Professor, error) {
	return s.Store.Professors().GetProfessorByID(ctx, id)
}

func (s *ProfessorService) List(ctx context.Context) ([]domain.Professor, error) {
	return s.Store.Professors().ListProfessors(ctx)
}

func (s *ProfessorService) Create(ctx context.Context, name, sex, age, subject string, facultyID *string) (domain.Professor, error) {
	p := domain.Professor{
		ID:        idx.New().String(),
		Name:      name,
		Sex:       sex,
		Age:       age,
		Subject:   subject,
		FacultyID: facultyID,
	}
	if err := s.Store.Professors().CreateProfessor(ctx, p); err != nil {
		return domain.Professor{}, err
	}
	return s.Store.Professors().GetProfessorByID(ctx, p.ID)
}

func (s *ProfessorService) Update(ctx context.Context, id, name, sex, age, subject string, facultyID *string) (domain.Professor, error) {
	if err := s.Store.Professors().UpdateProfessor(ctx, id, name, sex, age, subject, facultyID); err != nil {
		return domain.Professor{}, err
	}
	return s.Store.Professors().GetProfessorByID(ctx, id)
}

func (s *ProfessorService) Delete(ctx context.Context, id string) error {
	return s.Store.Professors().SoftDeleteProfessor(ctx, id)
}

// AttachImage stores the uploaded file in the object store under a key
// derived from the professor id, then records that key on the row. The old
// image, if any, is removed best-effort.
func (s *ProfessorService) AttachImage(ctx context.Context, id, filename, contentType string, r io.Reader, size int64) (domain.Professor, error) {
	p, err := s.Store.Professors().GetProfessorByID(ctx, id)
	if err != nil {
		return domain.Professor{}, err
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("profesores/%s/%s%s", id, idx.New().String(), ext)

	if err := s.Objects.Put(ctx, key, r, size, contentType); err != nil {
		return domain.Professor{}, err
	}

	if err := s.Store.Professors().UpdateProfessorImage(ctx, id, key); err != nil {
		return domain.Professor{}, err
	}

	if p.Image != nil && *p.Image != "" {
		_ = s.Objects.Delete(ctx, *p.Image)
	}

	return s.Store.Professors().GetProfessorByID(ctx, id)
}

// OpenImage streams the professor's stored image.
func (s *ProfessorService) OpenImage(ctx context.Context, id string) (io.ReadCloser, error) {
	p, err := s.Store.Professors().GetProfessorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Image == nil || *p.Image == "" {
		return nil, storage.ErrObjectNotFound
	}
	return s.Objects.Get(ctx, *p.Image)
}

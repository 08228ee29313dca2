package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/idx"
)

var dbCounter int

// newTestStore opens a fresh in-memory database with migrations applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbCounter++
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", dbCounter)

	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	users := s.Users()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     "juan123",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         domain.RoleAdministrador,
	}
	require.NoError(t, users.CreateUser(ctx, u))

	t.Run("get by id", func(t *testing.T) {
		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "juan123", got.Username)
		require.Equal(t, domain.RoleAdministrador, got.Role)
		require.False(t, got.TwoFactorEnabled)
		require.Nil(t, got.TwoFactorSecret)
	})

	t.Run("get by username", func(t *testing.T) {
		got, err := users.GetUserByUsername(ctx, "juan123")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		dup := domain.User{
			ID:           idx.New().String(),
			Username:     "juan123",
			PasswordHash: "x",
			Role:         domain.RoleGestor,
		}
		err := users.CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("unknown id not found", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("two factor lifecycle", func(t *testing.T) {
		require.NoError(t, users.UpdateTwoFactorSecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"))

		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got.TwoFactorSecret)
		require.Equal(t, "JBSWY3DPEHPK3PXP", *got.TwoFactorSecret)
		require.False(t, got.TwoFactorEnabled)
		require.Equal(t, domain.TwoFactorEnrolledUnconfirmed, got.TwoFactorState())

		require.NoError(t, users.EnableTwoFactor(ctx, u.ID))

		got, err = users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, got.TwoFactorEnabled)
		require.Equal(t, domain.TwoFactorEnrolled, got.TwoFactorState())

		// A fresh secret drops the user back to unconfirmed.
		require.NoError(t, users.UpdateTwoFactorSecret(ctx, u.ID, "NEWSECRETNEWSECRET"))
		got, err = users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.False(t, got.TwoFactorEnabled)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, users.UpdateUser(ctx, u.ID, "juan456", "newhash", domain.RoleGestor))

		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "juan456", got.Username)
		require.Equal(t, domain.RoleGestor, got.Role)
	})

	t.Run("soft delete hides and frees the username", func(t *testing.T) {
		require.NoError(t, users.SoftDeleteUser(ctx, u.ID))

		_, err := users.GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = users.GetUserByUsername(ctx, "juan456")
		require.ErrorIs(t, err, store.ErrNotFound)

		// The username is reusable once the old row is gone.
		again := domain.User{
			ID:           idx.New().String(),
			Username:     "juan456",
			PasswordHash: "y",
			Role:         domain.RoleGestor,
		}
		require.NoError(t, users.CreateUser(ctx, again))

		// Deleting twice reports not found.
		require.ErrorIs(t, users.SoftDeleteUser(ctx, u.ID), store.ErrNotFound)
	})
}

func TestFacultiesRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	faculties := s.Faculties()

	f := domain.Faculty{ID: idx.New().String(), Name: "Ingeniería", Head: "Dra. Pérez"}
	require.NoError(t, faculties.CreateFaculty(ctx, f))

	got, err := faculties.GetFacultyByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, "Ingeniería", got.Name)
	require.Equal(t, "Dra. Pérez", got.Head)

	require.NoError(t, faculties.UpdateFaculty(ctx, f.ID, "Ciencias", "Dr. Gómez"))
	got, err = faculties.GetFacultyByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, "Ciencias", got.Name)

	list, err := faculties.ListFaculties(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, faculties.SoftDeleteFaculty(ctx, f.ID))
	_, err = faculties.GetFacultyByID(ctx, f.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	list, err = faculties.ListFaculties(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestProfessorsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	f := domain.Faculty{ID: idx.New().String(), Name: "Ingeniería", Head: "Dra. Pérez"}
	require.NoError(t, s.Faculties().CreateFaculty(ctx, f))

	professors := s.Professors()
	p := domain.Professor{
		ID:        idx.New().String(),
		Name:      "Carlos Ruiz",
		Sex:       "masculino",
		Age:       "45",
		Subject:   "Cálculo",
		FacultyID: &f.ID,
	}
	require.NoError(t, professors.CreateProfessor(ctx, p))

	t.Run("get", func(t *testing.T) {
		got, err := professors.GetProfessorByID(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "Carlos Ruiz", got.Name)
		require.NotNil(t, got.FacultyID)
		require.Equal(t, f.ID, *got.FacultyID)
		require.Nil(t, got.Image)
	})

	t.Run("image update", func(t *testing.T) {
		require.NoError(t, professors.UpdateProfessorImage(ctx, p.ID, "profesores/carlos.png"))

		got, err := professors.GetProfessorByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Image)
		require.Equal(t, "profesores/carlos.png", *got.Image)
	})

	t.Run("detach faculty", func(t *testing.T) {
		require.NoError(t, professors.UpdateProfessor(ctx, p.ID, "Carlos Ruiz", "masculino", "46", "Álgebra", nil))

		got, err := professors.GetProfessorByID(ctx, p.ID)
		require.NoError(t, err)
		require.Nil(t, got.FacultyID)
		require.Equal(t, "Álgebra", got.Subject)
	})

	t.Run("soft delete", func(t *testing.T) {
		require.NoError(t, professors.SoftDeleteProfessor(ctx, p.ID))
		_, err := professors.GetProfessorByID(ctx, p.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSurveysCriteriaEvaluations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := domain.User{ID: idx.New().String(), Username: "ana", PasswordHash: "h", Role: domain.RoleGestor}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	sv := domain.Survey{ID: idx.New().String(), Name: "Evaluación docente 2026", UserID: &u.ID}
	require.NoError(t, s.Surveys().CreateSurvey(ctx, sv))

	c := domain.Criterion{ID: idx.New().String(), Name: "Claridad expositiva", SurveyID: &sv.ID}
	require.NoError(t, s.Criteria().CreateCriterion(ctx, c))

	e := domain.Evaluation{ID: idx.New().String(), Kind: "puntual", CriterionID: &c.ID}
	require.NoError(t, s.Evaluations().CreateEvaluation(ctx, e))

	t.Run("chain reads back", func(t *testing.T) {
		gotSurvey, err := s.Surveys().GetSurveyByID(ctx, sv.ID)
		require.NoError(t, err)
		require.Equal(t, u.ID, *gotSurvey.UserID)

		gotCriterion, err := s.Criteria().GetCriterionByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, sv.ID, *gotCriterion.SurveyID)

		gotEval, err := s.Evaluations().GetEvaluationByID(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, c.ID, *gotEval.CriterionID)
		require.Equal(t, "puntual", gotEval.Kind)
	})

	t.Run("updates", func(t *testing.T) {
		require.NoError(t, s.Surveys().UpdateSurvey(ctx, sv.ID, "Evaluación docente 2027", nil))
		gotSurvey, err := s.Surveys().GetSurveyByID(ctx, sv.ID)
		require.NoError(t, err)
		require.Nil(t, gotSurvey.UserID)

		require.NoError(t, s.Criteria().UpdateCriterion(ctx, c.ID, "Dominio del tema", &sv.ID))
		require.NoError(t, s.Evaluations().UpdateEvaluation(ctx, e.ID, "final", &c.ID))
	})

	t.Run("soft deletes", func(t *testing.T) {
		require.NoError(t, s.Evaluations().SoftDeleteEvaluation(ctx, e.ID))
		require.NoError(t, s.Criteria().SoftDeleteCriterion(ctx, c.ID))
		require.NoError(t, s.Surveys().SoftDeleteSurvey(ctx, sv.ID))

		evals, err := s.Evaluations().ListEvaluations(ctx)
		require.NoError(t, err)
		require.Empty(t, evals)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("commit on nil", func(t *testing.T) {
		u := domain.User{ID: idx.New().String(), Username: "tx_ok", PasswordHash: "h", Role: domain.RoleGestor}
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, u)
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		u := domain.User{ID: idx.New().String(), Username: "tx_bad", PasswordHash: "h", Role: domain.RoleGestor}
		sentinel := fmt.Errorf("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				return err
			}
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		_, err = s.Users().GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

package store

import (
	"context"
	"errors"

	"github.com/acadeval/encuestas/internal/server/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrConflict reports a uniqueness violation, e.g. a duplicate username.
	// Callers must be able to tell this apart from a generic failure.
	ErrConflict = errors.New("store: already exists")
)

// Store is the root data access interface. Every read excludes soft-deleted
// rows and every delete is a soft delete; nothing here removes data
// physically. Concrete drivers (sqlite today) implement this.
type Store interface {
	Users() Users
	Faculties() Faculties
	Professors() Professors
	Surveys() Surveys
	Criteria() Criteria
	Evaluations() Evaluations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and
	// rolling back on error. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns an active (not soft-deleted) user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is the login lookup. Soft-deleted users do not
	// exist as far as authentication is concerned.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id provided by the app via ULID).
	// Returns ErrConflict on a duplicate username.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser replaces username, password hash and role. The hash is
	// always freshly computed by the caller; plaintext never reaches here.
	UpdateUser(ctx context.Context, id, username, passwordHash string, role domain.Role) error

	// SoftDeleteUser stamps deleted_at; the row stays in place.
	SoftDeleteUser(ctx context.Context, id string) error

	// UpdateTwoFactorSecret stores a fresh secret and clears the enabled
	// flag in the same statement, so re-enrollment always lands back in
	// the unconfirmed state.
	UpdateTwoFactorSecret(ctx context.Context, id, secret string) error

	// EnableTwoFactor flips the enabled flag after a verified code. This
	// is the only write path that can set it.
	EnableTwoFactor(ctx context.Context, id string) error
}

type Faculties interface {
	GetFacultyByID(ctx context.Context, id string) (domain.Faculty, error)
	ListFaculties(ctx context.Context) ([]domain.Faculty, error)
	CreateFaculty(ctx context.Context, f domain.Faculty) error
	UpdateFaculty(ctx context.Context, id, name, head string) error
	SoftDeleteFaculty(ctx context.Context, id string) error
}

type Professors interface {
	GetProfessorByID(ctx context.Context, id string) (domain.Professor, error)
	ListProfessors(ctx context.Context) ([]domain.Professor, error)
	CreateProfessor(ctx context.Context, p domain.Professor) error
	UpdateProfessor(ctx context.Context, id, name, sex, age, subject string, facultyID *string) error

	// UpdateProfessorImage stores the object key of the uploaded image.
	UpdateProfessorImage(ctx context.Context, id, image string) error

	SoftDeleteProfessor(ctx context.Context, id string) error
}

type Surveys interface {
	GetSurveyByID(ctx context.Context, id string) (domain.Survey, error)
	ListSurveys(ctx context.Context) ([]domain.Survey, error)
	CreateSurvey(ctx context.Context, s domain.Survey) error
	UpdateSurvey(ctx context.Context, id, name string, userID *string) error
	SoftDeleteSurvey(ctx context.Context, id string) error
}

type Criteria interface {
	GetCriterionByID(ctx context.Context, id string) (domain.Criterion, error)
	ListCriteria(ctx context.Context) ([]domain.Criterion, error)
	CreateCriterion(ctx context.Context, c domain.Criterion) error
	UpdateCriterion(ctx context.Context, id, name string, surveyID *string) error
	SoftDeleteCriterion(ctx context.Context, id string) error
}

type Evaluations interface {
	GetEvaluationByID(ctx context.Context, id string) (domain.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]domain.Evaluation, error)
	CreateEvaluation(ctx context.Context, e domain.Evaluation) error
	UpdateEvaluation(ctx context.Context, id, kind string, criterionID *string) error
	SoftDeleteEvaluation(ctx context.Context, id string) error
}

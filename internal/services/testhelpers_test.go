package services

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard_backend/database"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newAuthService() AuthService {
	return NewAuthService(repositories.NewUserRepository())
}

func newJobPostService() JobPostService {
	return NewJobPostService(repositories.NewJobPostRepository(), repositories.NewUserRepository())
}

func newJobApplicationService(provider email.Provider) JobApplicationService {
	return NewJobApplicationService(
		repositories.NewJobApplicationRepository(),
		repositories.NewJobPostRepository(),
		repositories.NewUserRepository(),
		provider,
	)
}

// seedEmployer inserts an employer directly, bypassing the service layer.
func seedEmployer(t *testing.T, db *gorm.DB, emailAddr string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: "$2a$10$irrelevantfortests",
		CompanyName:  "Acme",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// recordingProvider captures sent mail for assertions.
type recordingProvider struct {
	mu   sync.Mutex
	sent []email.Email
}

func (p *recordingProvider) Send(e *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, *e)
	return nil
}

func (p *recordingProvider) Sent() []email.Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]email.Email, len(p.sent))
	copy(out, p.sent)
	return out
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func createPost(t *testing.T, db *gorm.DB, svc JobPostService, employerID, title string) *dto.JobPostResponse {
	t.Helper()

	post, err := svc.Create(db, &dto.CreateJobPostRequest{
		Title:       title,
		CompanyName: "Acme",
		Description: "Build things",
		Location:    "Berlin",
		JobType:     "full-time",
		Tags:        []string{"go", "backend"},
		EmployerID:  employerID,
	})
	require.NoError(t, err)
	require.NotNil(t, post)
	return post
}

func TestCreateJobPost(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	employer := seedEmployer(t, db, "hr@acme.test")

	post := createPost(t, db, svc, employer.ID, "Go Engineer")
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Go Engineer", post.Title)
	assert.Equal(t, "full-time", post.JobType)
	assert.Equal(t, []string{"go", "backend"}, post.Tags)
	assert.Equal(t, employer.ID, post.EmployerID)
}

func TestCreateJobPostUnknownEmployer(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()

	post, err := svc.Create(db, &dto.CreateJobPostRequest{
		Title:       "Go Engineer",
		CompanyName: "Acme",
		Description: "Build things",
		Location:    "Berlin",
		JobType:     "full-time",
		EmployerID:  "11111111-1111-1111-1111-111111111111",
	})
	require.Error(t, err)
	assert.Nil(t, post)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCreateJobPostInvalidJobType(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	employer := seedEmployer(t, db, "hr@acme.test")

	post, err := svc.Create(db, &dto.CreateJobPostRequest{
		Title:       "Go Engineer",
		CompanyName: "Acme",
		Description: "Build things",
		Location:    "Berlin",
		JobType:     "freelance",
		EmployerID:  employer.ID,
	})
	require.Error(t, err)
	assert.Nil(t, post)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidJobType, appErr.Code)
}

func TestCreateJobPostNilTags(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	employer := seedEmployer(t, db, "hr@acme.test")

	post, err := svc.Create(db, &dto.CreateJobPostRequest{
		Title:       "Go Engineer",
		CompanyName: "Acme",
		Description: "Build things",
		Location:    "Berlin",
		JobType:     "remote",
		EmployerID:  employer.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, post.Tags)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	employer := seedEmployer(t, db, "hr@acme.test")

	oldest := createPost(t, db, svc, employer.ID, "Oldest")
	middle := createPost(t, db, svc, employer.ID, "Middle")
	newest := createPost(t, db, svc, employer.ID, "Newest")

	// Backdate created_at so the ordering is unambiguous.
	base := time.Now().Add(-time.Hour)
	for i, id := range []string{oldest.ID, middle.ID, newest.ID} {
		err := db.Model(&models.JobPost{}).Where("id = ?", id).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error
		require.NoError(t, err)
	}

	posts, err := svc.List(db)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Newest", posts[0].Title)
	assert.Equal(t, "Middle", posts[1].Title)
	assert.Equal(t, "Oldest", posts[2].Title)
}

func TestGetMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()

	post, err := svc.Get(db, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	employer := seedEmployer(t, db, "hr@acme.test")
	post := createPost(t, db, svc, employer.ID, "Go Engineer")

	// Backdate so the refreshed updated_at is observable.
	backdated := time.Now().Add(-time.Hour)
	err := db.Model(&models.JobPost{}).Where("id = ?", post.ID).
		UpdateColumn("updated_at", backdated).Error
	require.NoError(t, err)

	newTitle := "Senior Go Engineer"
	updated, err := svc.Update(db, post.ID, &dto.UpdateJobPostRequest{Title: &newTitle})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Senior Go Engineer", updated.Title)
	assert.Equal(t, post.Description, updated.Description)
	assert.Equal(t, post.Location, updated.Location)
	assert.Equal(t, post.JobType, updated.JobType)
	assert.Equal(t, post.Tags, updated.Tags)
	assert.True(t, updated.UpdatedAt.After(backdated))
}

func TestUpdateTagSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	employer := seedEmployer(t, db, "hr@acme.test")
	post := createPost(t, db, svc, employer.ID, "Go Engineer")

	t.Run("nil keeps tags", func(t *testing.T) {
		loc := "Remote"
		updated, err := svc.Update(db, post.ID, &dto.UpdateJobPostRequest{Location: &loc})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "backend"}, updated.Tags)
	})

	t.Run("empty slice clears tags", func(t *testing.T) {
		updated, err := svc.Update(db, post.ID, &dto.UpdateJobPostRequest{Tags: []string{}})
		require.NoError(t, err)
		assert.Equal(t, []string{}, updated.Tags)
	})
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()

	title := "Anything"
	updated, err := svc.Update(db, "11111111-1111-1111-1111-111111111111", &dto.UpdateJobPostRequest{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	owner := seedEmployer(t, db, "owner@acme.test")
	other := seedEmployer(t, db, "other@rival.test")
	post := createPost(t, db, svc, owner.ID, "Go Engineer")

	deleted, err := svc.Delete(db, post.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Still there after the foreign attempt.
	found, err := svc.Get(db, post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	deleted, err = svc.Delete(db, post.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err = svc.Get(db, post.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting again reports false, same as a post that never existed.
	deleted, err = svc.Delete(db, post.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteCascadesApplications(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	owner := seedEmployer(t, db, "owner@acme.test")
	post := createPost(t, db, svc, owner.ID, "Go Engineer")

	for _, name := range []string{"Alice", "Bob"} {
		app := &models.JobApplication{
			JobPostID:      post.ID,
			ApplicantName:  name,
			ApplicantEmail: name + "@applicants.test",
			ShortAnswer:    "I can do the job",
		}
		require.NoError(t, db.Create(app).Error)
	}

	deleted, err := svc.Delete(db, post.ID, owner.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	var count int64
	require.NoError(t, db.Model(&models.JobApplication{}).Where("job_post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListByEmployerScoping(t *testing.T) {
	db := newTestDB(t)
	svc := newJobPostService()
	first := seedEmployer(t, db, "first@acme.test")
	second := seedEmployer(t, db, "second@rival.test")

	createPost(t, db, svc, first.ID, "First A")
	createPost(t, db, svc, first.ID, "First B")
	createPost(t, db, svc, second.ID, "Second A")

	posts, err := svc.ListByEmployer(db, first.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = svc.ListByEmployer(db, second.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, err = svc.ListByEmployer(db, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

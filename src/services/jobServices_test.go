package services

import (
	"testing"
	"time"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobWithFileName(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	folder := createTestFolder(t, db, owner.ID, "Q1")
	service := NewJobService(db)

	job, err := service.CreateJob(owner.ID, folder.ID, &models.CreateJobRequest{FileName: "x.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "x.pdf", job.FileName)
	assert.Equal(t, "queued", job.Status)
	assert.Equal(t, 0, job.Progress)
	assert.Nil(t, job.CompletedAt)
}

func TestCreateJobCopiesUploadedFileName(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	folder := createTestFolder(t, db, owner.ID, "Q1")
	service := NewJobService(db)

	file := models.UploadedFileModel{
		Name:    "statement-march.pdf",
		Type:    "application/pdf",
		Size:    4,
		Status:  "uploaded",
		UserID:  owner.ID,
		Content: []byte("%PDF"),
	}
	require.NoError(t, db.Create(&file).Error)

	job, err := service.CreateJob(owner.ID, folder.ID, &models.CreateJobRequest{UploadedFileID: file.ID})
	require.NoError(t, err)
	assert.Equal(t, "statement-march.pdf", job.FileName)
}

func TestCreateJobRequiresFileReference(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	folder := createTestFolder(t, db, owner.ID, "Q1")
	service := NewJobService(db)

	_, err := service.CreateJob(owner.ID, folder.ID, &models.CreateJobRequest{})
	assert.ErrorIs(t, err, ErrMissingFileName)
}

func TestCreateJobChecksFolderAndFileOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	folder := createTestFolder(t, db, owner.ID, "Q1")
	service := NewJobService(db)

	_, err := service.CreateJob(other.ID, folder.ID, &models.CreateJobRequest{FileName: "x.pdf"})
	assert.ErrorIs(t, err, ErrNotFound)

	file := models.UploadedFileModel{
		Name:    "x.pdf",
		Type:    "application/pdf",
		Size:    1,
		Status:  "uploaded",
		UserID:  other.ID,
		Content: []byte("x"),
	}
	require.NoError(t, db.Create(&file).Error)

	_, err = service.CreateJob(owner.ID, folder.ID, &models.CreateJobRequest{UploadedFileID: file.ID})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestUpdateJobStampsCompletedAtOnce(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	folder := createTestFolder(t, db, owner.ID, "Q1")
	service := NewJobService(db)

	job, err := service.CreateJob(owner.ID, folder.ID, &models.CreateJobRequest{FileName: "x.pdf"})
	require.NoError(t, err)
	require.Nil(t, job.CompletedAt)

	updated, err := service.UpdateJob(owner.ID, job.ID, &models.UpdateJobRequest{Status: "completed"})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	first := *updated.CompletedAt

	// A second no-op completion never re-stamps.
	time.Sleep(10 * time.Millisecond)
	updated, err = service.UpdateJob(owner.ID, job.ID, &models.UpdateJobRequest{Status: "completed"})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(first))
	assert.Equal(t, "completed", updated.Status)
}

func TestUpdateJobAllowsBackwardsTransitions(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	folder := createTestFolder(t, db, owner.ID, "Q1")
	service := NewJobService(db)

	job, err := service.CreateJob(owner.ID, folder.ID, &models.CreateJobRequest{FileName: "x.pdf"})
	require.NoError(t, err)

	updated, err := service.UpdateJob(owner.ID, job.ID, &models.UpdateJobRequest{Status: "completed"})
	require.NoError(t, err)
	stamped := *updated.CompletedAt

	// Statuses are open strings; going back to queued is allowed and the
	// original completion time stays.
	updated, err = service.UpdateJob(owner.ID, job.ID, &models.UpdateJobRequest{Status: "queued"})
	require.NoError(t, err)
	assert.Equal(t, "queued", updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(stamped))

	progress := 42
	updated, err = service.UpdateJob(owner.ID, job.ID, &models.UpdateJobRequest{Status: "reprocessing", Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, "reprocessing", updated.Status)
	assert.Equal(t, 42, updated.Progress)
}

func TestGetJobByIDAuthorization(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	folder := createTestFolder(t, db, owner.ID, "Q1")
	service := NewJobService(db)

	job, err := service.CreateJob(owner.ID, folder.ID, &models.CreateJobRequest{FileName: "x.pdf"})
	require.NoError(t, err)

	_, err = service.GetJobByID(other.ID, job.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = service.GetJobByID(owner.ID, "11111111-2222-4333-8444-555555555555")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestGetAllJobsJoinsThroughOwnershipWithSortAndLimit(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	folderA := createTestFolder(t, db, owner.ID, "A")
	folderB := createTestFolder(t, db, owner.ID, "B")
	foreign := createTestFolder(t, db, other.ID, "C")
	service := NewJobService(db)

	for _, name := range []string{"a.pdf", "b.pdf"} {
		_, err := service.CreateJob(owner.ID, folderA.ID, &models.CreateJobRequest{FileName: name})
		require.NoError(t, err)
	}
	_, err := service.CreateJob(owner.ID, folderB.ID, &models.CreateJobRequest{FileName: "c.pdf"})
	require.NoError(t, err)
	_, err = service.CreateJob(other.ID, foreign.ID, &models.CreateJobRequest{FileName: "d.pdf"})
	require.NoError(t, err)

	jobs, err := service.GetAllJobs(owner.ID, "", 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	jobs, err = service.GetAllJobs(owner.ID, "fileName:desc", 2)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "c.pdf", jobs[0].FileName)
	assert.Equal(t, "b.pdf", jobs[1].FileName)

	// Unknown sort fields are ignored rather than interpolated.
	jobs, err = service.GetAllJobs(owner.ID, "evil; DROP TABLE folder_models:desc", 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

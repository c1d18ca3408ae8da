//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/fadilmartias/resume-matcher/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRepository_Pagination(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.CreateJob(ctx, &model.Job{
			Title:       fmt.Sprintf("Job %02d", i),
			Company:     "Acme",
			Location:    "Remote",
			Description: "Build things",
		}))
	}

	page, err := repo.GetJobsPage(ctx, 10, 10)
	require.NoError(t, err)
	assert.Len(t, page, 10)

	last, err := repo.GetJobsPage(ctx, 20, 10)
	require.NoError(t, err)
	assert.Len(t, last, 5)

	beyond, err := repo.GetJobsPage(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestJobRepository_FindJobByID(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	job := &model.Job{Title: "Engineer", Company: "Acme", Location: "Remote", Description: "Go"}
	require.NoError(t, repo.CreateJob(ctx, job))
	require.NotEqual(t, uuid.Nil, job.ID)

	found, err := repo.FindJobByID(ctx, job.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Engineer", found.Title)

	_, err = repo.FindJobByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindJobByID(ctx, "42")
	assert.Error(t, err)
}

func TestResumeRepository_CreateAndFind(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewResumeRepository(db)
	ctx := context.Background()

	resume := &model.Resume{
		File:             "resumes/abc.pdf",
		OriginalFilename: "cv.pdf",
		ContentType:      "application/pdf",
		SizeBytes:        1024,
		StorageProvider:  "local",
	}
	require.NoError(t, repo.CreateResume(ctx, resume))

	found, err := repo.FindResumeByID(ctx, resume.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "resumes/abc.pdf", found.File)
	assert.False(t, found.UploadedAt.IsZero())

	_, err = repo.FindResumeByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

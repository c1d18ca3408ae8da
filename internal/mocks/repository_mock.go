package mocks

import (
	"context"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) FindJobByID(ctx context.Context, id string) (*model.Job, error) {
	args := m.Called(ctx, id)
	var j *model.Job
	if v := args.Get(0); v != nil {
		j = v.(*model.Job)
	}
	return j, args.Error(1)
}

func (m *JobRepository) GetJobsPage(ctx context.Context, offset, limit int) ([]model.Job, error) {
	args := m.Called(ctx, offset, limit)
	var jobs []model.Job
	if v := args.Get(0); v != nil {
		jobs = v.([]model.Job)
	}
	return jobs, args.Error(1)
}

func (m *JobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	return m.Called(ctx, job).Error(0)
}

type ResumeRepository struct {
	mock.Mock
}

func (m *ResumeRepository) CreateResume(ctx context.Context, resume *model.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *ResumeRepository) FindResumeByID(ctx context.Context, id string) (*model.Resume, error) {
	args := m.Called(ctx, id)
	var r *model.Resume
	if v := args.Get(0); v != nil {
		r = v.(*model.Resume)
	}
	return r, args.Error(1)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepositoryInterface interface {
	FindJobByID(ctx context.Context, id string) (*model.Job, error)
	GetJobsPage(ctx context.Context, offset, limit int) ([]model.Job, error)
	CreateJob(ctx context.Context, job *model.Job) error
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) FindJobByID(ctx context.Context, id string) (*model.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q", id)
	}

	var j model.Job
	if err := r.db.WithContext(ctx).First(&j, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &j, nil
}

// GetJobsPage returns one window of the jobs table in the table's natural
// order. No ORDER BY is applied.
func (r *JobRepository) GetJobsPage(ctx context.Context, offset, limit int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

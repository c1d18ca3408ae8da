package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResumeRepositoryInterface interface {
	CreateResume(ctx context.Context, resume *model.Resume) error
	FindResumeByID(ctx context.Context, id string) (*model.Resume, error)
}

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

func (r *ResumeRepository) CreateResume(ctx context.Context, resume *model.Resume) error {
	if err := r.db.WithContext(ctx).Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

func (r *ResumeRepository) FindResumeByID(ctx context.Context, id string) (*model.Resume, error) {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid resume id %q", id)
	}

	var resume model.Resume
	if err := r.db.WithContext(ctx).First(&resume, "id = ?", resumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/fadilmartias/resume-matcher/internal/repository"
	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"go.uber.org/zap"
)

type ResumeUsecase struct {
	resumeRepo    repository.ResumeRepositoryInterface
	storage       service.StorageServiceInterface
	maxUploadSize int64
	log           *zap.Logger
}

func NewResumeUsecase(resumeRepo repository.ResumeRepositoryInterface, storage service.StorageServiceInterface, maxUploadSize int64, log *zap.Logger) *ResumeUsecase {
	return &ResumeUsecase{
		resumeRepo:    resumeRepo,
		storage:       storage,
		maxUploadSize: maxUploadSize,
		log:           log,
	}
}

// Create stores the uploaded file and records it. A nil header means no
// file was submitted.
func (uc *ResumeUsecase) Create(ctx context.Context, fh *multipart.FileHeader) (*model.Resume, error) {
	if err := uc.validate(fh); err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := fh.Header.Get("Content-Type")

	key, err := uc.storage.Save(ctx, f, ext, contentType)
	if err != nil {
		return nil, err
	}

	resume := &model.Resume{
		File:             key,
		OriginalFilename: fh.Filename,
		ContentType:      contentType,
		SizeBytes:        fh.Size,
		StorageProvider:  uc.storage.Provider(),
	}
	if err := uc.resumeRepo.CreateResume(ctx, resume); err != nil {
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.log.Error("failed to remove orphaned resume file", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	uc.log.Info("resume stored", zap.String("id", resume.ID.String()), zap.String("key", key))
	return resume, nil
}

func (uc *ResumeUsecase) validate(fh *multipart.FileHeader) error {
	var msg string
	switch {
	case fh == nil:
		msg = "No file was submitted."
	case fh.Size == 0:
		msg = "The submitted file is empty."
	case !service.IsSupportedResumeExtension(filepath.Ext(fh.Filename)):
		msg = fmt.Sprintf("Unsupported file extension %q. Allowed extensions are: %s.",
			strings.ToLower(filepath.Ext(fh.Filename)), allowedExtensions())
	case uc.maxUploadSize > 0 && fh.Size > uc.maxUploadSize:
		msg = fmt.Sprintf("Ensure this file is no larger than %d bytes.", uc.maxUploadSize)
	default:
		return nil
	}
	return util.NewFormError(msg, map[string][]string{"file": {msg}})
}

func allowedExtensions() string {
	names := make([]string, 0, len(service.SupportedResumeExtensions))
	for _, ext := range service.SupportedResumeExtensions {
		names = append(names, strings.TrimPrefix(ext, "."))
	}
	return strings.Join(names, ", ")
}

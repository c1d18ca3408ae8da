package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/fadilmartias/resume-matcher/internal/logger"
	"github.com/fadilmartias/resume-matcher/internal/repository"
	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"go.uber.org/zap"
)

const degradedMatchFormat = "Could not get a response from %s. Raw response: %s"

type MatchUsecase struct {
	completer  service.CompleterInterface
	extractor  service.TextExtractorInterface
	storage    service.StorageServiceInterface
	resumeRepo repository.ResumeRepositoryInterface
	jobRepo    repository.JobRepositoryInterface
	cfg        *config.LLMConfig
	log        *zap.Logger
}

func NewMatchUsecase(
	completer service.CompleterInterface,
	extractor service.TextExtractorInterface,
	storage service.StorageServiceInterface,
	resumeRepo repository.ResumeRepositoryInterface,
	jobRepo repository.JobRepositoryInterface,
	cfg *config.LLMConfig,
	log *zap.Logger,
) *MatchUsecase {
	return &MatchUsecase{
		completer:  completer,
		extractor:  extractor,
		storage:    storage,
		resumeRepo: resumeRepo,
		jobRepo:    jobRepo,
		cfg:        cfg,
		log:        log,
	}
}

// MatchUpload matches an uploaded résumé against a free-text job
// description. The upload only lives in a temp file for the extraction.
func (uc *MatchUsecase) MatchUpload(ctx context.Context, src io.Reader, filename, jobDescription string) (string, error) {
	var (
		resumeText string
		extractErr error
	)
	err := util.WithTempFile(src, "resume-*"+tempSuffix(filename), func(path string) error {
		resumeText, extractErr = uc.extractor.ExtractText(path)
		return nil
	})
	if err != nil {
		return "", err
	}
	if extractErr != nil {
		return "", &InputError{
			Message: "Failed to extract text from resume: " + extractErr.Error(),
			Err:     extractErr,
		}
	}

	return uc.complete(ctx, resumeText, jobDescription)
}

// MatchStored matches a stored résumé against a stored job. Every failure
// before the model call is reported as an InputError.
func (uc *MatchUsecase) MatchStored(ctx context.Context, resumeID, jobID string) (string, error) {
	resume, err := uc.resumeRepo.FindResumeByID(ctx, resumeID)
	if err != nil {
		return "", newInputError(err)
	}
	job, err := uc.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return "", newInputError(err)
	}
	if resume.StorageProvider != "" && resume.StorageProvider != uc.storage.Provider() {
		return "", newInputError(fmt.Errorf("resume is stored on %q but the active storage is %q",
			resume.StorageProvider, uc.storage.Provider()))
	}

	rc, err := uc.storage.Open(ctx, resume.File)
	if err != nil {
		return "", newInputError(err)
	}
	defer rc.Close()

	var resumeText string
	err = util.WithTempFile(rc, "resume-*"+tempSuffix(resume.File), func(path string) error {
		text, err := uc.extractor.ExtractText(path)
		if err != nil {
			return err
		}
		resumeText = text
		return nil
	})
	if err != nil {
		return "", newInputError(err)
	}

	return uc.complete(ctx, resumeText, job.MatchText())
}

func (uc *MatchUsecase) complete(ctx context.Context, resumeText, jobText string) (string, error) {
	resp, err := uc.completer.Complete(ctx, service.CompletionRequest{
		Model:       uc.cfg.MatchModel,
		System:      service.MatchSystemPrompt,
		Prompt:      service.BuildMatchPrompt(resumeText, jobText),
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		var upErr *service.UpstreamError
		if uc.cfg.DegradeMatchErrors && errors.As(err, &upErr) {
			uc.log.Warn("match completion failed, returning placeholder",
				zap.Int("status", upErr.StatusCode),
				zap.Error(err),
			)
			raw := upErr.Body
			if raw == "" {
				raw = upErr.Error()
			}
			return fmt.Sprintf(degradedMatchFormat, uc.completer.Name(), raw), nil
		}
		return "", err
	}

	uc.log.Debug("match completed", zap.String("answer", logger.Truncate(resp.Content, 300)))
	return resp.Content, nil
}

func tempSuffix(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ".pdf"
	}
	return ext
}

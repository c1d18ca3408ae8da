package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/resume-matcher/internal/dto"
	"github.com/fadilmartias/resume-matcher/internal/middleware"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MatchHandler struct {
	uc            *usecase.MatchUsecase
	maxUploadSize int64
	log           *zap.Logger
}

func NewMatchHandler(uc *usecase.MatchUsecase, maxUploadSize int64, log *zap.Logger) *MatchHandler {
	return &MatchHandler{uc: uc, maxUploadSize: maxUploadSize, log: log}
}

func (h *MatchHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/match-resume", middleware.PermissiveCORS(), middleware.RateLimiter(20, 1*time.Minute), h.MatchResume)
	app.Options("/match-resume", middleware.PermissiveCORS())
	app.All("/match-resume", middleware.PermissiveCORS(), middleware.MethodNotAllowed(fiber.MethodPost, fiber.MethodOptions))

	app.Post("/groq-match", middleware.RateLimiter(20, 1*time.Minute), h.GroqMatch)
	app.All("/groq-match", middleware.MethodNotAllowed())
}

// MatchResume handles a multipart upload with a "resume" file and a
// "job_description" text field.
func (h *MatchHandler) MatchResume(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	file, err := c.FormFile("resume")

	var missing []string
	if err != nil || file == nil {
		missing = append(missing, "resume file")
	}
	if jobDescription == "" {
		missing = append(missing, "job description")
	}
	if len(missing) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Missing " + strings.Join(missing, " and "),
		})
	}

	if h.maxUploadSize > 0 && file.Size > h.maxUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("Resume file is too large (max %d bytes)", h.maxUploadSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to read uploaded resume",
		}, err)
	}
	defer src.Close()

	match, err := h.uc.MatchUpload(c.UserContext(), src, file.Filename, jobDescription)
	if err != nil {
		h.log.Warn("match-resume failed", zap.Error(err))
		return usecaseErrorResponse(c, err)
	}

	return util.SuccessResponse(c, fiber.StatusOK, dto.MatchResponse{Match: match})
}

// GroqMatch matches a stored résumé against a stored job by id.
func (h *MatchHandler) GroqMatch(c *fiber.Ctx) error {
	var req dto.GroqMatchRequest
	if err := decodeJSON(c, &req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid JSON in request body",
		}, err)
	}

	match, err := h.uc.MatchStored(c.UserContext(), req.ResumeID, req.JobID)
	if err != nil {
		h.log.Warn("groq-match failed",
			zap.String("resume_id", req.ResumeID),
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		return usecaseErrorResponse(c, err)
	}

	return util.SuccessResponse(c, fiber.StatusOK, dto.MatchResponse{Match: match})
}

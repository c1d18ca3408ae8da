package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/fadilmartias/resume-matcher/internal/dto"
	"github.com/fadilmartias/resume-matcher/internal/middleware"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExtractHandler struct {
	uc  *usecase.ExtractionUsecase
	log *zap.Logger
}

func NewExtractHandler(uc *usecase.ExtractionUsecase, log *zap.Logger) *ExtractHandler {
	return &ExtractHandler{uc: uc, log: log}
}

func (h *ExtractHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/extract-job-data", middleware.RateLimiter(20, 1*time.Minute), h.ExtractJobData)
	app.All("/extract-job-data", middleware.MethodNotAllowed())
}

func (h *ExtractHandler) ExtractJobData(c *fiber.Ctx) error {
	if !h.uc.CredentialConfigured() {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: h.uc.MissingCredentialMessage(),
		})
	}

	var req dto.ExtractJobRequest
	if err := decodeJSON(c, &req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid JSON in request body",
		}, err)
	}
	if strings.TrimSpace(req.Description) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No job description provided",
		})
	}

	data, err := h.uc.Extract(c.UserContext(), req.Description)
	if err != nil {
		var parseErr *usecase.ExtractionParseError
		if errors.As(err, &parseErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusInternalServerError,
				Message: "Failed to parse extracted data as JSON",
				Extra: fiber.Map{
					"details":  parseErr.Details,
					"raw_data": parseErr.Raw,
				},
			})
		}
		h.log.Warn("extract-job-data failed", zap.Error(err))
		return usecaseErrorResponse(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(data)
}

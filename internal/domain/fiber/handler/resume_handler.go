package handler

import (
	"errors"

	"github.com/fadilmartias/resume-matcher/internal/dto"
	"github.com/fadilmartias/resume-matcher/internal/middleware"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/resumes", h.CreateResume)
	app.All("/resumes", middleware.MethodNotAllowed())
}

func (h *ResumeHandler) CreateResume(c *fiber.Ctx) error {
	// A missing part and a body that is not multipart at all both leave file
	// nil, which the usecase reports as "No file was submitted."
	file, _ := c.FormFile("file")

	resume, err := h.uc.Create(c.UserContext(), file)
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.FormErrorResponse(c, formErr)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to store resume",
		}, err)
	}

	return util.SuccessResponse(c, fiber.StatusCreated, dto.ResumeCreatedResponse{ID: resume.ID})
}

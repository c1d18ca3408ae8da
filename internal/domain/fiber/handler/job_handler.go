package handler

import (
	"errors"

	"github.com/fadilmartias/resume-matcher/internal/dto"
	"github.com/fadilmartias/resume-matcher/internal/middleware"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/paginated-jobs", h.PaginatedJobs)
	app.All("/paginated-jobs", middleware.MethodNotAllowed())
}

func (h *JobHandler) PaginatedJobs(c *fiber.Ctx) error {
	var req dto.PaginatedJobsRequest
	if err := decodeJSON(c, &req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid JSON in request body",
		}, err)
	}

	page, err := h.uc.Paginate(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPagination) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch jobs",
		}, err)
	}

	return util.SuccessResponse(c, fiber.StatusOK, page)
}

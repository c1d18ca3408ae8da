package handler

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

// usecaseErrorResponse maps the shared usecase failures onto responses.
// Provider error statuses are relayed unchanged together with the raw body.
func usecaseErrorResponse(c *fiber.Ctx, err error) error {
	var upErr *service.UpstreamError
	if errors.As(err, &upErr) && upErr.HasUpstreamStatus() {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    upErr.StatusCode,
			Message: fmt.Sprintf("Error from %s API", upErr.Provider),
			Extra: fiber.Map{
				"status_code": upErr.StatusCode,
				"response":    upErr.Body,
			},
		}, err)
	}

	var inErr *usecase.InputError
	if errors.As(err, &inErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: inErr.Message,
		}, err)
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusInternalServerError,
		Message: err.Error(),
	}, err)
}

// decodeJSON reads the raw body with the app's JSON decoder, whatever the
// request's Content-Type says.
func decodeJSON(c *fiber.Ctx, v any) error {
	return c.App().Config().JSONDecoder(c.Body(), v)
}

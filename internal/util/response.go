package util

import (
	"fmt"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponseFormat struct {
	Code    int
	Message string
	// Extra is merged into the body next to "error".
	Extra fiber.Map
}

// FormError menampung error validasi per field, key-nya nama field
type FormError struct {
	Errors  map[string][]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string][]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// SuccessResponse mengirim response JSON standar untuk sukses, data langsung jadi body
func SuccessResponse(c *fiber.Ctx, code int, data any) error {
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(data)
}

// ErrorResponse mengirim response JSON standar untuk error: {"error": message}
// ditambah key dari Extra. Di luar production, err pertama ikut dikirim
// sebagai dev_message.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := fiber.Map{"error": params.Message}
	for k, v := range params.Extra {
		body[k] = v
	}

	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil && errs[0].Error() != params.Message {
			body["dev_message"] = errs[0].Error()
		}
	}

	errorCode := params.Code
	if errorCode == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(body)
}

// FormErrorResponse mengirim map error per field sebagai body (400)
func FormErrorResponse(c *fiber.Ctx, err *FormError) error {
	return c.Status(fiber.StatusBadRequest).JSON(err.Errors)
}

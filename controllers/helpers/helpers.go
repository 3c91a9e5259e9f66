package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/services"
)

var (
	RecordNotFound      = "record.not_found"
	ServerInternalError = "server.internal_error"
	InvalidMessageBody  = "server.method.invalid_message_body"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Vaildate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

// ErrorResponse writes the status and error key matching err. Unexpected
// errors are logged and reported as 500.
func ErrorResponse(c *fiber.Ctx, logger logrus.FieldLogger, err error, scope string) error {
	var duplicate *services.DuplicateTradeError

	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return c.Status(422).JSON(Errors{
			Errors: []string{scope + ".invalid_argument"},
		})
	case errors.As(err, &duplicate):
		return c.Status(409).JSON(Errors{
			Errors: []string{scope + ".already_processed"},
		})
	case errors.Is(err, services.ErrStockExists):
		return c.Status(409).JSON(Errors{
			Errors: []string{scope + ".already_exists"},
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(Errors{
			Errors: []string{RecordNotFound},
		})
	}

	logger.WithField("path", c.Path()).Errorf("Failed to process request: %v", err)

	return c.Status(500).JSON(Errors{
		Errors: []string{ServerInternalError},
	})
}

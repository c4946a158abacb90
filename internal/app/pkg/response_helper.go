package pkg

import (
	stderrors "errors"
	"reflect"

	appError "github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func SuccessResponse[T any](c *fiber.Ctx, data T) error {
	return c.JSON(models.WebResponse[T]{
		Success: true,
		Data:    data,
	})
}

// SuccessMessageResponse also carries an operator-facing message, e.g. the
// batch grant summary line.
func SuccessMessageResponse[T any](c *fiber.Ctx, message string, data T) error {
	return c.JSON(models.WebResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *appError.AppError
	if stderrors.As(err, &appErr) {
		status := appErr.StatusCode
		// Status 0 marks a transport failure that never reached the upstream.
		if status < 100 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(models.WebResponse[any]{
			Success:   false,
			Message:   appErr.Error(),
			ErrorName: appErr.ErrorName,
		})
	}

	logrus.Errorf("[%s] %s", reflect.TypeOf(err).String(), err)

	return c.Status(fiber.StatusInternalServerError).JSON(models.WebResponse[any]{
		Success: false,
		Message: "요청 처리에 실패했습니다.",
	})
}

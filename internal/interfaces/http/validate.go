package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate faz o parse do corpo da requisição em dst e valida as
// tags de validação. Erro de parse devolve fiber.ErrBadRequest; problemas
// de validação devolvem validator.ValidationErrors.
func BindAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo inválido")
	}
	return validate.Struct(dst)
}

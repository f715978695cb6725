// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request DTOs.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New is the constructor for the echo request validator.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct tag validation and maps failures to a 400 response.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

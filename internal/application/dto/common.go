package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate valida un request con las etiquetas `validate` del struct.
func Validate(in interface{}) error {
	return validate.Struct(in)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación para borrados.
type MessageResponse struct {
	Message string `json:"message"`
}

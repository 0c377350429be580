package serverutils

import (
	"github.com/go-playground/validator/v10"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

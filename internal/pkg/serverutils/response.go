package serverutils

// Response is the JSON envelope every endpoint returns.
type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string, errs any) Response[any] {
	return Response[any]{
		Status:  "error",
		Message: message,
		Errors:  errs,
	}
}

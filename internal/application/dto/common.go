package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ListResponse envoltura de listados simples.
type ListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// NewList arma un ListResponse; una lista nil se serializa como [].
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Total: len(items), Items: items}
}

package model

import "time"

// APIResponse is a generic wrapper for API responses.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccessResponse creates a successful API response.
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error API response.
func NewErrorResponse[T any](errMsg string) APIResponse[T] {
	return APIResponse[T]{
		Success: false,
		Error:   errMsg,
	}
}

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Change event types pushed to WebSocket subscribers.
const (
	EventCatalogChanged = "catalog_changed"
	EventCartChanged    = "cart_changed"
	EventSessionReset   = "session_reset"
	EventPing           = "ping"
	EventPong           = "pong"
)

// ChangeEvent tells collaborators that state changed and should be re-read.
type ChangeEvent struct {
	Type      string    `json:"type"`
	Version   uint64    `json:"version"`
	Products  int       `json:"products"`
	CartCount int       `json:"cart_count"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeEvent creates a change event stamped with the current time.
func NewChangeEvent(eventType string, version uint64, products, cartCount int) ChangeEvent {
	return ChangeEvent{
		Type:      eventType,
		Version:   version,
		Products:  products,
		CartCount: cartCount,
		Timestamp: time.Now().UTC(),
	}
}

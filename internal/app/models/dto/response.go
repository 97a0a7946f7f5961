package dto

import "encoding/json"

// PageMeta is the optional pagination block of list responses.
type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// APIResponse is the envelope every endpoint of the school API answers with.
type APIResponse struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message"`
	Meta    *PageMeta    `json:"meta,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// RawEnvelope is APIResponse with the data left undecoded, for clients that decode
// into a caller-chosen type.
type RawEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Meta    *PageMeta       `json:"meta,omitempty"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// NewListResponse wraps a page of items together with its pagination block.
func NewListResponse(items interface{}, meta PageMeta, message string) APIResponse {
	return APIResponse{
		Success: true,
		Data:    items,
		Message: message,
		Meta:    &meta,
	}
}

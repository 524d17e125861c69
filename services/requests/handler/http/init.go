package http

import (
	"github.com/piresc/bloodlink/services/requests"
)

// RequestHandler handles HTTP requests for blood requests and donations
type RequestHandler struct {
	requestUC requests.RequestUC
}

// NewRequestHandler creates a new request HTTP handler
func NewRequestHandler(requestUC requests.RequestUC) *RequestHandler {
	return &RequestHandler{
		requestUC: requestUC,
	}
}

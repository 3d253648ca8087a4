package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/logger"
)

// Envelope is the uniform response body: success is always present, the
// other fields only when they carry something.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WithJSON sends a successful response containing a JSON payload.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Envelope{Success: true, Data: payload})
}

// WithCount sends a successful list response; count always mirrors the
// length of data, including zero.
func WithCount(writer http.ResponseWriter, code int, payload any, count int) {
	response(writer, code, Envelope{Success: true, Count: &count, Data: payload})
}

// WithMessage sends a successful response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: message})
}

// WithJSONMessage sends a successful response carrying both a message and a
// payload, the shape mutations respond with.
func WithJSONMessage(writer http.ResponseWriter, code int, message string, payload any) {
	response(writer, code, Envelope{Success: true, Message: message, Data: payload})
}

// WithError sends a failed response with the error message and the failure's
// HTTP code.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), Envelope{Success: false, Error: err.Error()})
}

// WithNotFoundRoute sends the catch-all body for unmatched routes.
func WithNotFoundRoute(writer http.ResponseWriter, request *http.Request) {
	response(writer, http.StatusNotFound, Envelope{
		Success: false,
		Error:   fmt.Sprintf("Endpoint %s %s not found", request.Method, request.URL.Path),
	})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Success: false, Error: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Success: false, Error: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}

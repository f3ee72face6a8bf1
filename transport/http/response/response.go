package response

import (
	"encoding/json"
	"net/http"
	"parkease/shared/constant"
	"parkease/shared/failure"
	"parkease/shared/logger"
)

// Envelope is the success-flag wrapper the frontend consumes.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WithJSON sends the payload as-is, for endpoints whose clients consume a
// bare object or array.
func WithJSON(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithSuccess sends a 200 envelope with success set.
func WithSuccess(writer http.ResponseWriter, message string) {
	response(writer, http.StatusOK, Envelope{Success: true, Message: message})
}

// WithFailure sends an envelope with success cleared.
func WithFailure(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: false, Message: message})
}

// WithError sends a failure envelope with the status code carried by the error.
func WithError(writer http.ResponseWriter, err error) {
	WithFailure(writer, failure.GetCode(err), err.Error())
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
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

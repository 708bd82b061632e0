package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/models"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Notice  *models.Notice `json:"notice,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Level   string   `json:"level"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func write(w http.ResponseWriter, statusCode int, resp APIResponse) {
	if err := WriteJson(w, statusCode, resp); err != nil {
		slog.Warn("Failed to write response", slog.String("error", err.Error()))
	}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	write(w, statusCode, APIResponse{Success: true, Data: data})
}

// SuccessWithNotice carries the banner the front end shows next to data.
// A nil notice is omitted.
func SuccessWithNotice(w http.ResponseWriter, statusCode int, data any, notice *models.Notice) {
	write(w, statusCode, APIResponse{Success: true, Data: data, Notice: notice})
}

func Error(w http.ResponseWriter, err error) {
	ErrorWithData(w, err, nil)
}

// ErrorWithData reports err while still sending the view the front end
// renders, for example the storefront's connection error panel.
func ErrorWithData(w http.ResponseWriter, err error, data any) {

	var statusCode int
	var errorResponse *ErrorResponse

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		errorResponse = &ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Level:   appErr.Level(),
		}

		if appErr.Detail != "" {
			errorResponse.Details = []string{appErr.Detail}
		}

	} else {

		statusCode = http.StatusInternalServerError
		errorResponse = &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
			Level:   errors.LevelDanger,
		}

	}

	write(w, statusCode, APIResponse{Success: false, Data: data, Error: errorResponse})
}

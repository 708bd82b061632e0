package utils

import (
	"net/http"
	"strconv"

	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the body into dest and runs validate on it when
// validate is not nil. It writes the error response itself and reports
// whether the handler may continue.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	if validate == nil {
		return true
	}

	if err := validate.Struct(dest); err != nil {
		response.Error(w, appErrors.ValidationError("Invalid input data").WithDetail(err.Error()).WithError(err))
		return false
	}

	return true
}

// PathID reads a positive integer path value.
func PathID(r *http.Request, name string) (int64, error) {

	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.BadRequestError("Invalid " + name)
	}

	return id, nil
}

// Confirmed reads the confirm query parameter the front ends send once the
// user accepted a prompt.
func Confirmed(r *http.Request) bool {

	confirmed, err := strconv.ParseBool(r.URL.Query().Get("confirm"))

	return err == nil && confirmed
}

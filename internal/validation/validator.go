package validation

import (
	"errors"
	"log/slog"
	"math"
	"reflect"
	"regexp"
	"strings"

	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/go-playground/validator/v10"
)

const (
	MsgCamposIncompletos = "Por favor, complete todos los campos correctamente. El precio debe ser mayor a 0."
	MsgNombreCaracteres  = "El nombre solo puede contener letras, números, espacios, guiones y puntos. No se permiten caracteres especiales."
	MsgNombreLongitud    = "El nombre debe tener entre 2 y 100 caracteres."
	MsgFormularioCompra  = "Por favor completa todos los campos requeridos"
)

var nombrePattern = regexp.MustCompile(`^[A-Za-z0-9 À-ÿ\-.]+$`)

// New returns a validator with the catalog specific tags registered.
func New() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("articulo_nombre", validNombre); err != nil {
		slog.Error("Failed to register articulo_nombre validation", slog.String("error", err.Error()))
	}

	if err := v.RegisterValidation("finite", finite); err != nil {
		slog.Error("Failed to register finite validation", slog.String("error", err.Error()))
	}

	return v
}

func validNombre(fl validator.FieldLevel) bool {
	return nombrePattern.MatchString(fl.Field().String())
}

func finite(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// NormalizeArticulo trims the name the same way it is sent upstream.
func NormalizeArticulo(in models.ArticuloInput) models.ArticuloInput {
	in.Nombre = strings.TrimSpace(in.Nombre)
	return in
}

// ValidateArticulo checks a normalized input and reports the first problem in
// the order the admin form shows them.
func ValidateArticulo(v *validator.Validate, in models.ArticuloInput) *appErrors.AppError {

	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return appErrors.ValidationError(MsgCamposIncompletos).WithError(err)
	}

	var incompletos, caracteres, longitud bool

	for _, fe := range validationErrs {
		switch {
		case fe.Field() == "Precio", fe.Tag() == "required":
			incompletos = true
		case fe.Tag() == "articulo_nombre":
			caracteres = true
		case fe.Tag() == "min", fe.Tag() == "max":
			longitud = true
		}
	}

	var appErr *appErrors.AppError

	switch {
	case incompletos:
		appErr = appErrors.ValidationError(MsgCamposIncompletos)
	case caracteres:
		appErr = appErrors.ValidationError(MsgNombreCaracteres)
	case longitud:
		appErr = appErrors.ValidationError(MsgNombreLongitud)
	default:
		appErr = appErrors.ValidationError(MsgCamposIncompletos)
	}

	return appErr.WithDetail(validationErrs.Error()).WithError(err)
}

func ValidateCheckout(v *validator.Validate, req models.CheckoutRequest) *appErrors.AppError {

	if err := v.Struct(req); err != nil {
		return appErrors.ValidationError(MsgFormularioCompra).WithDetail(err.Error()).WithError(err)
	}

	return nil
}

package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/internal/validation"
	"github.com/aaravmahajanofficial/tienda/pkg/articulos"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/semaphore"
)

const (
	MsgErrorCargar       = "Error al cargar los artículos. Verifique que el servidor esté ejecutándose."
	MsgDuplicado         = "Ya existe un artículo con ese nombre. Por favor, use un nombre diferente."
	MsgCreado            = "Artículo creado exitosamente."
	MsgActualizado       = "Artículo actualizado exitosamente."
	MsgErrorGuardar      = "Error al guardar el artículo: "
	MsgErrorConexion     = "Error de conexión. Verifique que el servidor esté ejecutándose."
	MsgErrorEditar       = "Error al cargar el artículo para editar."
	MsgConfirmarEliminar = "¿Está seguro de que desea eliminar este artículo?"
	MsgEliminado         = "Artículo eliminado exitosamente."
	MsgErrorEliminar     = "Error al eliminar el artículo: "
	MsgOperacionEnCurso  = "Hay otra operación en curso. Espere a que termine."
)

// Confirmer asks the user before a destructive operation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Confirmed is a Confirmer with a fixed answer, used when the caller already
// asked (for example the confirm query parameter).
type Confirmed bool

func (c Confirmed) Confirm(context.Context, string) bool {
	return bool(c)
}

type CatalogService interface {
	List(ctx context.Context) ([]models.Articulo, error)
	Save(ctx context.Context, in models.ArticuloInput) (*models.CatalogResult, error)
	Edit(ctx context.Context, id int64) (*models.Articulo, error)
	Delete(ctx context.Context, id int64, confirmer Confirmer) (*models.CatalogResult, error)
}

type catalogService struct {
	client                  articulos.Client
	validate                *validator.Validate
	writes                  *semaphore.Weighted
	checkDuplicatesOnUpdate bool
}

func NewCatalogService(client articulos.Client, validate *validator.Validate, checkDuplicatesOnUpdate bool) CatalogService {
	return &catalogService{
		client:                  client,
		validate:                validate,
		writes:                  semaphore.NewWeighted(1),
		checkDuplicatesOnUpdate: checkDuplicatesOnUpdate,
	}
}

func (s *catalogService) List(ctx context.Context) ([]models.Articulo, error) {

	items, err := s.client.List(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to load articulos", slog.String("error", err.Error()))
		return nil, upstreamFailure(err, fixed(MsgErrorCargar), MsgErrorCargar)
	}

	return items, nil
}

func (s *catalogService) Save(ctx context.Context, in models.ArticuloInput) (*models.CatalogResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	in = validation.NormalizeArticulo(in)

	if appErr := validation.ValidateArticulo(s.validate, in); appErr != nil {
		logger.Warn("Articulo rejected by validation", slog.String("detail", appErr.Detail))
		return nil, appErr
	}

	if !s.writes.TryAcquire(1) {
		return nil, appErrors.OperationInProgressError(MsgOperacionEnCurso)
	}
	defer s.writes.Release(1)

	if in.IsCreate() || s.checkDuplicatesOnUpdate {
		if s.isDuplicate(ctx, in) {
			logger.Warn("Duplicate articulo name", slog.String("nombre", in.Nombre))
			return nil, appErrors.DuplicateEntryError(MsgDuplicado)
		}
	}

	payload := articulos.Payload{Nombre: in.Nombre, Precio: in.Precio}

	var err error
	notice := &models.Notice{Level: appErrors.LevelSuccess, Message: MsgCreado}

	if in.IsCreate() {
		err = s.client.Create(ctx, payload)
	} else {
		err = s.client.Update(ctx, *in.ID, payload)
		notice.Message = MsgActualizado
	}

	if err != nil {
		logger.Error("Failed to save articulo", slog.String("nombre", in.Nombre), slog.String("error", err.Error()))
		return nil, upstreamFailure(err, withStatus(MsgErrorGuardar), MsgErrorConexion)
	}

	logger.Info("Articulo saved", slog.String("nombre", in.Nombre), slog.Bool("created", in.IsCreate()))

	return s.refreshed(ctx, notice), nil
}

// isDuplicate compares against the current list. A failed pre-check is logged
// and treated as no duplicate.
func (s *catalogService) isDuplicate(ctx context.Context, in models.ArticuloInput) bool {

	items, err := s.client.List(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Duplicate check skipped", slog.String("error", err.Error()))
		return false
	}

	nombre := strings.ToLower(in.Nombre)

	for _, item := range items {
		if in.ID != nil && item.ID == *in.ID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(item.Nombre)) == nombre {
			return true
		}
	}

	return false
}

func (s *catalogService) Edit(ctx context.Context, id int64) (*models.Articulo, error) {

	item, err := s.client.Get(ctx, id)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to load articulo", slog.Int64("id", id), slog.String("error", err.Error()))

		if statusErr, ok := articulos.AsStatus(err); ok && statusErr.StatusCode == http.StatusNotFound {
			return nil, appErrors.NotFoundError(MsgErrorEditar).WithError(err)
		}

		return nil, upstreamFailure(err, fixed(MsgErrorEditar), MsgErrorEditar)
	}

	return item, nil
}

func (s *catalogService) Delete(ctx context.Context, id int64, confirmer Confirmer) (*models.CatalogResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	if !confirmer.Confirm(ctx, MsgConfirmarEliminar) {
		return nil, appErrors.ConfirmationRequiredError(MsgConfirmarEliminar)
	}

	if !s.writes.TryAcquire(1) {
		return nil, appErrors.OperationInProgressError(MsgOperacionEnCurso)
	}
	defer s.writes.Release(1)

	if err := s.client.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete articulo", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, upstreamFailure(err, withStatus(MsgErrorEliminar), MsgErrorConexion)
	}

	logger.Info("Articulo deleted", slog.Int64("id", id))

	return s.refreshed(ctx, &models.Notice{Level: appErrors.LevelSuccess, Message: MsgEliminado}), nil
}

func (s *catalogService) refreshed(ctx context.Context, notice *models.Notice) *models.CatalogResult {

	items, err := s.client.List(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to refresh articulos after write", slog.String("error", err.Error()))
	}

	return &models.CatalogResult{Articulos: items, Notice: notice}
}

// upstreamFailure maps a client error to the message the user sees. Anything
// that is not an HTTP status, including an unreadable body, counts as a
// connection problem.
func upstreamFailure(err error, onStatus func(status string) string, connectionMsg string) *appErrors.AppError {

	if statusErr, ok := articulos.AsStatus(err); ok {
		return appErrors.UpstreamError(onStatus(statusErr.Status)).WithDetail(statusErr.Body).WithError(err)
	}

	return appErrors.ConnectionError(connectionMsg).WithError(err)
}

func fixed(message string) func(string) string {
	return func(string) string { return message }
}

func withStatus(prefix string) func(string) string {
	return func(status string) string { return prefix + status }
}

package cart

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	"github.com/aaravmahajanofficial/tienda/internal/cache"
	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/metrics"
	"github.com/aaravmahajanofficial/tienda/internal/models"
)

const (
	MsgCarritoVacio     = "El carrito ya está vacío"
	MsgConfirmarVaciado = "¿Estás seguro de que quieres vaciar el carrito?"
	MsgCarritoVaciado   = "Carrito vaciado"
)

// lockStripes bounds the number of session locks. Sessions hashing to the
// same stripe serialise with each other only.
const lockStripes = 64

// Engine reads a session's cart from the store on every operation and writes
// it back after each mutation. Nothing is kept in memory between calls, so
// store expiry applies and replicas share carts. Store failures are logged
// and never reach the caller.
type Engine struct {
	locks  [lockStripes]sync.Mutex
	store  cache.Cache
	prefix string
	ttl    time.Duration
}

func NewEngine(store cache.Cache, prefix string, ttl time.Duration) *Engine {
	return &Engine{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (e *Engine) key(session string) string {
	return cache.Key(e.prefix, session)
}

func stripe(session string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(session))
	return h.Sum32() % lockStripes
}

// lock serialises read-modify-write cycles of one session.
func (e *Engine) lock(session string) func() {
	mu := &e.locks[stripe(session)]
	mu.Lock()
	return mu.Unlock
}

// load returns the stored cart. writable is false when the store could not be
// read: the caller then works on an empty cart and must not write it back
// over whatever is stored. Malformed data is discarded and may be replaced.
func (e *Engine) load(ctx context.Context, session string) (c *models.Cart, writable bool) {

	logger := middleware.LoggerFromContext(ctx)
	key := e.key(session)

	var entries []models.CartEntry

	found, err := e.store.Get(ctx, key, &entries)
	switch {
	case errors.Is(err, cache.ErrMalformed):
		logger.Warn("Discarding stored cart", slog.String("key", key), slog.String("error", err.Error()))
		return &models.Cart{}, true
	case err != nil:
		logger.Warn("Could not read cart", slog.String("key", key), slog.String("error", err.Error()))
		return &models.Cart{}, false
	case !found:
		return &models.Cart{}, true
	}

	if err := validEntries(entries); err != nil {
		logger.Warn("Discarding stored cart", slog.String("key", key), slog.String("error", err.Error()))
		return &models.Cart{}, true
	}

	return &models.Cart{Entries: entries}, true
}

func validEntries(entries []models.CartEntry) error {

	seen := make(map[int64]struct{}, len(entries))

	for _, entry := range entries {
		if entry.Cantidad < 1 {
			return fmt.Errorf("entry %d has quantity %d", entry.ID, entry.Cantidad)
		}
		if _, dup := seen[entry.ID]; dup {
			return fmt.Errorf("entry %d appears more than once", entry.ID)
		}
		seen[entry.ID] = struct{}{}
	}

	return nil
}

func (e *Engine) persist(ctx context.Context, session string, c *models.Cart, op string, writable bool) {

	metrics.RecordCartMutation(op)

	logger := middleware.LoggerFromContext(ctx)
	key := e.key(session)

	if !writable {
		logger.Warn("Skipping cart write after failed read", slog.String("key", key), slog.String("op", op))
		return
	}

	entries := c.Entries
	if entries == nil {
		entries = []models.CartEntry{}
	}

	if err := e.store.Set(ctx, key, entries, e.ttl); err != nil {
		logger.Warn("Could not persist cart", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (e *Engine) Summary(ctx context.Context, session string) models.CartSummary {

	defer e.lock(session)()

	c, _ := e.load(ctx, session)

	return Summary(c)
}

// Snapshot returns a copy of the session's cart.
func (e *Engine) Snapshot(ctx context.Context, session string) models.Cart {

	defer e.lock(session)()

	c, _ := e.load(ctx, session)

	return Clone(c)
}

func (e *Engine) Add(ctx context.Context, session string, p models.Articulo) (models.CartSummary, *models.Notice) {

	defer e.lock(session)()

	c, writable := e.load(ctx, session)
	outcome := Add(c, p)
	e.persist(ctx, session, c, outcome.String(), writable)

	notice := &models.Notice{Level: appErrors.LevelSuccess, Message: "Producto agregado: " + p.Nombre}
	if outcome == Incremented {
		notice = &models.Notice{Level: appErrors.LevelInfo, Message: "Cantidad actualizada: " + p.Nombre}
	}

	return Summary(c), notice
}

// ChangeQuantity is a no-op for ids not in the cart.
func (e *Engine) ChangeQuantity(ctx context.Context, session string, id int64, delta int) (models.CartSummary, *models.Notice) {

	defer e.lock(session)()

	c, writable := e.load(ctx, session)

	entry, outcome := ChangeQuantity(c, id, delta)
	if outcome == Unchanged {
		return Summary(c), nil
	}

	e.persist(ctx, session, c, outcome.String(), writable)

	if outcome == Removed {
		return Summary(c), removedNotice(entry)
	}

	return Summary(c), nil
}

func (e *Engine) Remove(ctx context.Context, session string, id int64) (models.CartSummary, *models.Notice) {

	defer e.lock(session)()

	c, writable := e.load(ctx, session)

	entry, outcome := Remove(c, id)
	if outcome == Unchanged {
		return Summary(c), nil
	}

	e.persist(ctx, session, c, outcome.String(), writable)

	return Summary(c), removedNotice(entry)
}

// Clear empties the cart once the user has confirmed.
func (e *Engine) Clear(ctx context.Context, session string, confirmed bool) (models.CartSummary, *models.Notice, error) {

	defer e.lock(session)()

	c, writable := e.load(ctx, session)

	if len(c.Entries) == 0 {
		return Summary(c), &models.Notice{Level: appErrors.LevelInfo, Message: MsgCarritoVacio}, nil
	}

	if !confirmed {
		return Summary(c), nil, appErrors.ConfirmationRequiredError(MsgConfirmarVaciado)
	}

	Clear(c)
	e.persist(ctx, session, c, Cleared.String(), writable)

	return Summary(c), &models.Notice{Level: appErrors.LevelInfo, Message: MsgCarritoVaciado}, nil
}

// Reset stores an empty cart without asking, as done after a completed
// purchase. It does not read first, so it also overwrites unreadable data.
func (e *Engine) Reset(ctx context.Context, session string) {

	defer e.lock(session)()

	e.persist(ctx, session, &models.Cart{}, "reset", true)
}

func removedNotice(entry models.CartEntry) *models.Notice {
	return &models.Notice{Level: appErrors.LevelInfo, Message: "Producto eliminado: " + entry.Nombre}
}

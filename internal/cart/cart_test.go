package cart_test

import (
	"testing"

	"github.com/aaravmahajanofficial/tienda/internal/cart"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	laptop = models.Articulo{ID: 1, Nombre: "Laptop", Precio: 1000}
	mouse  = models.Articulo{ID: 2, Nombre: "Mouse", Precio: 25.5}
)

func TestAdd(t *testing.T) {
	var c models.Cart

	assert.Equal(t, cart.Added, cart.Add(&c, laptop))
	assert.Equal(t, cart.Added, cart.Add(&c, mouse))
	assert.Equal(t, cart.Incremented, cart.Add(&c, laptop))

	require.Len(t, c.Entries, 2)
	assert.Equal(t, int64(1), c.Entries[0].ID)
	assert.Equal(t, 2, c.Entries[0].Cantidad)
	assert.Equal(t, 1, c.Entries[1].Cantidad)
}

func TestAddKeepsPriceSnapshot(t *testing.T) {
	var c models.Cart
	cart.Add(&c, laptop)

	repriced := laptop
	repriced.Precio = 1500
	cart.Add(&c, repriced)

	assert.Equal(t, 1000.0, c.Entries[0].Precio)
	assert.Equal(t, 2000.0, cart.Summary(&c).MontoTotal)
}

func TestChangeQuantity(t *testing.T) {
	t.Run("Increment", func(t *testing.T) {
		var c models.Cart
		cart.Add(&c, mouse)

		entry, outcome := cart.ChangeQuantity(&c, mouse.ID, 1)
		assert.Equal(t, cart.Updated, outcome)
		assert.Equal(t, 2, entry.Cantidad)
	})

	t.Run("Decrement to zero removes", func(t *testing.T) {
		var c models.Cart
		cart.Add(&c, laptop)
		cart.Add(&c, mouse)

		entry, outcome := cart.ChangeQuantity(&c, laptop.ID, -1)
		assert.Equal(t, cart.Removed, outcome)
		assert.Equal(t, "Laptop", entry.Nombre)
		require.Len(t, c.Entries, 1)
		assert.Equal(t, mouse.ID, c.Entries[0].ID)
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		var c models.Cart
		cart.Add(&c, laptop)

		_, outcome := cart.ChangeQuantity(&c, 99, 1)
		assert.Equal(t, cart.Unchanged, outcome)
		assert.Equal(t, 1, c.Entries[0].Cantidad)
	})
}

func TestRemove(t *testing.T) {
	var c models.Cart
	cart.Add(&c, laptop)
	cart.Add(&c, laptop)

	entry, outcome := cart.Remove(&c, laptop.ID)
	assert.Equal(t, cart.Removed, outcome)
	assert.Equal(t, 2, entry.Cantidad)
	assert.Empty(t, c.Entries)

	_, outcome = cart.Remove(&c, laptop.ID)
	assert.Equal(t, cart.Unchanged, outcome)
}

func TestClear(t *testing.T) {
	var c models.Cart
	assert.Equal(t, cart.Unchanged, cart.Clear(&c))

	cart.Add(&c, laptop)
	assert.Equal(t, cart.Cleared, cart.Clear(&c))
	assert.Empty(t, c.Entries)
}

func TestSummary(t *testing.T) {
	var c models.Cart
	cart.Add(&c, laptop)
	cart.Add(&c, mouse)
	cart.Add(&c, mouse)

	summary := cart.Summary(&c)

	assert.Equal(t, 3, summary.CantidadTotal)
	assert.InDelta(t, 1051.0, summary.MontoTotal, 1e-9)
	require.Len(t, summary.Lines, 2)
	assert.InDelta(t, 51.0, summary.Lines[1].Subtotal, 1e-9)

	empty := cart.Summary(&models.Cart{})
	assert.NotNil(t, empty.Lines)
	assert.Zero(t, empty.CantidadTotal)
}

func TestClone(t *testing.T) {
	var c models.Cart
	cart.Add(&c, laptop)

	copied := cart.Clone(&c)
	cart.Add(&c, laptop)

	assert.Equal(t, 1, copied.Entries[0].Cantidad)
	assert.Equal(t, 2, c.Entries[0].Cantidad)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "added", cart.Added.String())
	assert.Equal(t, "incremented", cart.Incremented.String())
	assert.Equal(t, "unchanged", cart.Unchanged.String())
	assert.Equal(t, "unchanged", cart.Outcome(42).String())
}

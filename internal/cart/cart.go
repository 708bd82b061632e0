// Package cart holds the storefront cart rules. The functions in this file are
// pure transitions over models.Cart; Engine adds per-session ownership and
// persistence.
package cart

import (
	"slices"

	"github.com/aaravmahajanofficial/tienda/internal/models"
)

// Outcome tells the caller what a transition did so it can notify the user.
type Outcome int

const (
	Unchanged Outcome = iota
	Added
	Incremented
	Updated
	Removed
	Cleared
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Incremented:
		return "incremented"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	case Cleared:
		return "cleared"
	default:
		return "unchanged"
	}
}

func indexOf(c *models.Cart, id int64) int {
	return slices.IndexFunc(c.Entries, func(e models.CartEntry) bool { return e.ID == id })
}

// Add increments an existing entry or appends p with quantity 1, taking the
// price shown for p as the snapshot.
func Add(c *models.Cart, p models.Articulo) Outcome {

	if i := indexOf(c, p.ID); i >= 0 {
		c.Entries[i].Cantidad++
		return Incremented
	}

	c.Entries = append(c.Entries, models.CartEntry{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Precio:   p.Precio,
		Cantidad: 1,
	})

	return Added
}

// ChangeQuantity applies delta and removes the entry once it drops to zero.
// The returned entry is the one before removal so callers can name it.
func ChangeQuantity(c *models.Cart, id int64, delta int) (models.CartEntry, Outcome) {

	i := indexOf(c, id)
	if i < 0 {
		return models.CartEntry{}, Unchanged
	}

	c.Entries[i].Cantidad += delta
	entry := c.Entries[i]

	if entry.Cantidad <= 0 {
		c.Entries = slices.Delete(c.Entries, i, i+1)
		return entry, Removed
	}

	return entry, Updated
}

func Remove(c *models.Cart, id int64) (models.CartEntry, Outcome) {

	i := indexOf(c, id)
	if i < 0 {
		return models.CartEntry{}, Unchanged
	}

	entry := c.Entries[i]
	c.Entries = slices.Delete(c.Entries, i, i+1)

	return entry, Removed
}

func Clear(c *models.Cart) Outcome {

	if len(c.Entries) == 0 {
		return Unchanged
	}

	c.Entries = nil

	return Cleared
}

// Summary is the cart view: lines with subtotals and the totals without
// shipping.
func Summary(c *models.Cart) models.CartSummary {

	summary := models.CartSummary{Lines: make([]models.CartLine, 0, len(c.Entries))}

	for _, e := range c.Entries {
		summary.Lines = append(summary.Lines, models.CartLine{CartEntry: e, Subtotal: e.Subtotal()})
		summary.CantidadTotal += e.Cantidad
		summary.MontoTotal += e.Subtotal()
	}

	return summary
}

// Clone returns a copy that does not share the entries backing array.
func Clone(c *models.Cart) models.Cart {
	return models.Cart{Entries: slices.Clone(c.Entries)}
}

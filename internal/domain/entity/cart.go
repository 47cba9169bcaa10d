package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity is returned when a cart mutation carries a quantity
// that is not positive or does not match the product's unit granularity.
var ErrInvalidQuantity = errors.New("quantity must be positive and match the product's unit granularity")

// CartItem is one cart line: a product snapshot plus the desired quantity.
type CartItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Subtotal returns quantity × unit price for this line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.UnitPrice.Mul(i.Quantity)
}

// Cart is an ordered collection of cart items with at most one item per
// product id. It is pure data: no locking, no I/O. Callers that share a
// cart across goroutines must serialize access themselves.
type Cart struct {
	items []CartItem
}

// NewCart builds a cart from previously stored items, preserving order.
func NewCart(items []CartItem) *Cart {
	cart := &Cart{}
	cart.items = append(cart.items, items...)

	return cart
}

func validQuantity(qty decimal.Decimal, unit UnitType) bool {
	if !qty.IsPositive() {
		return false
	}
	if !unit.AllowsFraction() && !qty.IsInteger() {
		return false
	}

	return true
}

// Add merges the quantity into an existing line for the same product id,
// or appends a new line at the end.
func (c *Cart) Add(product ProductSnapshot, qty decimal.Decimal) error {
	if !validQuantity(qty, product.UnitType) {
		return errors.Wrapf(ErrInvalidQuantity, "add %s of %s", qty, product.ProductID)
	}

	for idx := range c.items {
		if c.items[idx].Product.ProductID == product.ProductID {
			c.items[idx].Quantity = c.items[idx].Quantity.Add(qty)

			return nil
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: qty})

	return nil
}

// Remove deletes the line for the given product id, if present.
func (c *Cart) Remove(productID uuid.UUID) {
	for idx := range c.items {
		if c.items[idx].Product.ProductID == productID {
			c.items = append(c.items[:idx], c.items[idx+1:]...)

			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less is equivalent to Remove.
func (c *Cart) SetQuantity(productID uuid.UUID, qty decimal.Decimal) error {
	if !qty.IsPositive() {
		c.Remove(productID)

		return nil
	}

	for idx := range c.items {
		if c.items[idx].Product.ProductID == productID {
			if !validQuantity(qty, c.items[idx].Product.UnitType) {
				return errors.Wrapf(ErrInvalidQuantity, "set %s of %s", qty, productID)
			}
			c.items[idx].Quantity = qty

			return nil
		}
	}

	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in storage order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// ItemCount is the sum of all line quantities, recomputed on every call.
func (c *Cart) ItemCount() decimal.Decimal {
	count := decimal.Zero
	for _, item := range c.items {
		count = count.Add(item.Quantity)
	}

	return count
}

// Total is the sum of all line subtotals, recomputed on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// VendorGroup is the slice of cart lines belonging to a single vendor.
type VendorGroup struct {
	VendorID uuid.UUID
	Items    []CartItem
}

// Total is the sum of the group's line subtotals.
func (g VendorGroup) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range g.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// VendorGroups partitions the cart lines by vendor. Group order follows the
// first occurrence of each vendor in storage order; callers must not read
// business priority into it. Lines without a vendor reference are returned
// separately so the caller can decide how to surface them.
func (c *Cart) VendorGroups() (groups []VendorGroup, orphans []CartItem) {
	index := make(map[uuid.UUID]int)
	for _, item := range c.items {
		if !item.Product.HasVendor() {
			orphans = append(orphans, item)

			continue
		}
		pos, ok := index[item.Product.VendorID]
		if !ok {
			pos = len(groups)
			index[item.Product.VendorID] = pos
			groups = append(groups, VendorGroup{VendorID: item.Product.VendorID})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}

	return groups, orphans
}

// Fingerprint returns a stable SHA-256 digest over the cart contents
// (product ids, quantities, snapshot prices). Two carts with the same
// lines in the same order share a fingerprint; checkout derives its
// idempotency keys from it so retrying an unchanged cart reuses them.
func (c *Cart) Fingerprint() string {
	var sb strings.Builder
	for _, item := range c.items {
		fmt.Fprintf(&sb, "%s|%s|%s|%s\n",
			item.Product.ProductID, item.Product.VendorID,
			item.Quantity.String(), item.Product.UnitPrice.String())
	}
	sum := sha256.Sum256([]byte(sb.String()))

	return hex.EncodeToString(sum[:])
}

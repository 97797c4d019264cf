package order

import (
	"bytes"
	"errors"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cart cannot be empty")
	ErrNonPositiveLineQty = errors.New("line item quantity must be positive")
)

// CartLine is a requested line before any product lookup.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
	Selection Selection
}

// CoalesceDemand groups requested quantity per product so that repeated
// lines for the same product (e.g. different flavors) are validated and
// decremented against stock exactly once. The returned id slice is
// sorted so products are always locked in a stable order.
func CoalesceDemand(lines []CartLine) ([]uuid.UUID, map[uuid.UUID]int, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	demand := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, nil, ErrNonPositiveLineQty
		}
		demand[line.ProductID] += line.Quantity
	}

	ids := make([]uuid.UUID, 0, len(demand))
	for id := range demand {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	return ids, demand, nil
}

package bill

import (
	"errors"
	"fmt"
	"math"
)

// Common errors
var (
	ErrNoItems       = errors.New("bill must contain at least one item")
	ErrNegativePrice = errors.New("item price cannot be negative")
	ErrMissingPerson = errors.New("personal item must name a person")
	ErrNegativeTip   = errors.New("tip percentage cannot be negative")
	ErrNotFinite     = errors.New("amount must be a finite number")
)

// Validate checks the invariants the split calculation assumes. Every
// request must pass validation before it reaches the calculation.
func (r *SplitRequest) Validate() error {
	if math.IsNaN(r.TipPercentage) || math.IsInf(r.TipPercentage, 0) {
		return fmt.Errorf("tipPercentage: %w", ErrNotFinite)
	}
	if r.TipPercentage < 0 {
		return ErrNegativeTip
	}
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for i, it := range r.Items {
		if math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			return fmt.Errorf("item %d (%q): %w", i, it.Name, ErrNotFinite)
		}
		if it.Price < 0 {
			return fmt.Errorf("item %d (%q): %w", i, it.Name, ErrNegativePrice)
		}
		if !it.IsShared && it.Person == "" {
			return fmt.Errorf("item %d (%q): %w", i, it.Name, ErrMissingPerson)
		}
	}
	return nil
}

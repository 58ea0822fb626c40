package split

import (
	"github.com/shopspring/decimal"
)

// Bill is the input to the split calculation. It must already be
// validated: a non-empty item list, non-negative finite prices, a
// non-negative finite tip percentage, and a person on every non-shared
// item.
type Bill struct {
	Date       string
	Location   string
	TipPercent float64
	Items      []Item
}

// Item is a single priced line on a bill. A shared item is divided
// evenly across all participants; a personal item belongs to one person.
type Item struct {
	Name   string
	Price  float64
	Shared bool
	Person string // empty for shared items
}

// Result is the fully computed split.
type Result struct {
	Date     string // display form, e.g. 2024年3月21日
	Location string
	SubTotal decimal.Decimal
	Tip      decimal.Decimal
	Total    decimal.Decimal
	Shares   []PersonShare
}

// PersonShare is one participant's final payment. The sum of all share
// amounts equals Result.Total exactly.
type PersonShare struct {
	Name   string
	Amount decimal.Decimal
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	dime    = decimal.New(1, -1) // 0.1, the rounding unit for payments
)

// Calculate splits a bill into per-person payments. Each participant pays
// their personal items plus an even slice of every shared item, with the
// tip applied proportionally to their own share. Tip, total and every
// payment are rounded to the nearest ten cents, and the payments are then
// reconciled so they sum to the rounded total exactly.
//
// Participants are the distinct person names on personal items, in order
// of first appearance. A bill with no personal items has no participants:
// the share list comes back empty and any shared cost stays unassigned,
// even though the total still includes it.
func Calculate(b Bill) Result {
	tipRate := decimal.NewFromFloat(b.TipPercent).Div(hundred)

	subTotal := decimal.Zero
	for _, it := range b.Items {
		subTotal = subTotal.Add(decimal.NewFromFloat(it.Price))
	}
	tip := roundTenth(subTotal.Mul(tipRate))
	total := roundTenth(subTotal.Add(tip))

	res := Result{
		Date:     FormatDate(b.Date),
		Location: b.Location,
		SubTotal: subTotal,
		Tip:      tip,
		Total:    total,
	}

	names, personal := personalTotals(b.Items)
	if len(names) == 0 {
		return res
	}

	// The divisor is the global participant count, also for participants
	// whose personal items are all zero-priced.
	count := decimal.NewFromInt(int64(len(names)))
	sharedEach := decimal.Zero
	for _, it := range b.Items {
		if it.Shared {
			sharedEach = sharedEach.Add(decimal.NewFromFloat(it.Price).Div(count))
		}
	}

	tipFactor := one.Add(tipRate)
	shares := make([]PersonShare, len(names))
	for i, name := range names {
		tipped := personal[name].Add(sharedEach).Mul(tipFactor)
		shares[i] = PersonShare{Name: name, Amount: floorTenth(roundTenth(tipped))}
	}

	reconcile(shares, total)
	res.Shares = shares
	return res
}

// personalTotals returns the distinct participant names in order of first
// appearance and each participant's personal-item total.
func personalTotals(items []Item) ([]string, map[string]decimal.Decimal) {
	var names []string
	totals := make(map[string]decimal.Decimal)
	for _, it := range items {
		if it.Shared {
			continue
		}
		cur, seen := totals[it.Person]
		if !seen {
			names = append(names, it.Person)
		}
		totals[it.Person] = cur.Add(decimal.NewFromFloat(it.Price))
	}
	return names, totals
}

// reconcile nudges the shares one dime at a time until they sum to total.
// The extreme share is re-selected on every step, so ties always resolve
// to the alphabetically first name among the current extremes. Shares are
// adjusted in place; their order is preserved.
func reconcile(shares []PersonShare, total decimal.Decimal) {
	if len(shares) == 0 {
		return
	}

	paying := decimal.Zero
	for _, s := range shares {
		paying = paying.Add(s.Amount)
	}
	paying = roundTenth(paying)

	for paying.LessThan(total) {
		i := smallest(shares)
		shares[i].Amount = shares[i].Amount.Add(dime)
		paying = paying.Add(dime)
	}
	for paying.GreaterThan(total) {
		i := largest(shares)
		shares[i].Amount = shares[i].Amount.Sub(dime)
		paying = paying.Sub(dime)
	}
}

// smallest returns the index of the minimal share, name ascending on ties.
func smallest(shares []PersonShare) int {
	idx := 0
	for i := 1; i < len(shares); i++ {
		c := shares[i].Amount.Cmp(shares[idx].Amount)
		if c < 0 || (c == 0 && shares[i].Name < shares[idx].Name) {
			idx = i
		}
	}
	return idx
}

// largest returns the index of the maximal share, name ascending on ties.
func largest(shares []PersonShare) int {
	idx := 0
	for i := 1; i < len(shares); i++ {
		c := shares[i].Amount.Cmp(shares[idx].Amount)
		if c > 0 || (c == 0 && shares[i].Name < shares[idx].Name) {
			idx = i
		}
	}
	return idx
}

// roundTenth rounds to the nearest 0.1, halves away from zero.
func roundTenth(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// floorTenth truncates to a 0.1 step.
func floorTenth(d decimal.Decimal) decimal.Decimal {
	return d.RoundDown(1)
}

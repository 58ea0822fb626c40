package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents a validated bill ready to be split.
type Bill struct {
	Date       string  `json:"date"`
	Location   string  `json:"location"`
	TipPercent float64 `json:"tip_percent"`
	Items      []Item  `json:"items"`
}

// Item represents a single priced line on a bill.
type Item struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Shared bool    `json:"shared"`
	Person string  `json:"person,omitempty"` // empty for shared items
}

// Report represents a computed split with its metadata.
type Report struct {
	ID         string
	ComputedAt time.Time
	Date       string // display form, e.g. 2024年3月21日
	Location   string
	SubTotal   decimal.Decimal
	Tip        decimal.Decimal
	Total      decimal.Decimal
	Shares     []PersonShare
}

// PersonShare is one participant's final payment. The amounts across a
// report sum exactly to its Total.
type PersonShare struct {
	Name   string
	Amount decimal.Decimal
}

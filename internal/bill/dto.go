package bill

import (
	"github.com/warikango/warikan/internal/bill/split"
	"github.com/warikango/warikan/internal/report"
)

// SplitRequest represents a bill to split, as received on the wire.
type SplitRequest struct {
	Date          string        `json:"date"`
	Location      string        `json:"location"`
	TipPercentage float64       `json:"tipPercentage"`
	Items         []ItemRequest `json:"items"`
}

// ItemRequest represents a single bill item on the wire.
type ItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	IsShared bool    `json:"isShared"`
	Person   string  `json:"person,omitempty"`
}

// ReportResponse wraps a computed bill document with its report metadata.
type ReportResponse struct {
	ReportID   string          `json:"reportId"`
	ComputedAt string          `json:"computedAt"`
	Bill       report.Document `json:"bill"`
}

// ToBill converts the request to the domain model.
func (r *SplitRequest) ToBill() Bill {
	b := Bill{
		Date:       r.Date,
		Location:   r.Location,
		TipPercent: r.TipPercentage,
		Items:      make([]Item, len(r.Items)),
	}
	for i, it := range r.Items {
		b.Items[i] = Item{
			Name:   it.Name,
			Price:  it.Price,
			Shared: it.IsShared,
			Person: it.Person,
		}
	}
	return b
}

// toSplitBill converts the domain model to the calculation package's input.
func toSplitBill(b Bill) split.Bill {
	sb := split.Bill{
		Date:       b.Date,
		Location:   b.Location,
		TipPercent: b.TipPercent,
		Items:      make([]split.Item, len(b.Items)),
	}
	for i, it := range b.Items {
		sb.Items[i] = split.Item{
			Name:   it.Name,
			Price:  it.Price,
			Shared: it.Shared,
			Person: it.Person,
		}
	}
	return sb
}

// ToResponse converts a Report to its wire form.
func (r *Report) ToResponse() *ReportResponse {
	doc := report.Document{
		Date:        r.Date,
		Location:    r.Location,
		SubTotal:    r.SubTotal.InexactFloat64(),
		Tip:         r.Tip.InexactFloat64(),
		TotalAmount: r.Total.InexactFloat64(),
		Items:       make([]report.PersonItem, len(r.Shares)),
	}
	for i, s := range r.Shares {
		doc.Items[i] = report.PersonItem{
			Name:   s.Name,
			Amount: s.Amount.InexactFloat64(),
		}
	}
	return &ReportResponse{
		ReportID:   r.ID,
		ComputedAt: r.ComputedAt.Format("2006-01-02T15:04:05Z"),
		Bill:       doc,
	}
}

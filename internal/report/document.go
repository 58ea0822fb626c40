// Package report renders computed bill splits as JSON documents or
// fixed-layout text reports.
package report

// Document is the computed bill in its wire form. Monetary values are
// plain two-decimal numbers; tip, total and every item amount are
// multiples of 0.1.
type Document struct {
	Date        string       `json:"date"`
	Location    string       `json:"location"`
	SubTotal    float64      `json:"subTotal"`
	Tip         float64      `json:"tip"`
	TotalAmount float64      `json:"totalAmount"`
	Items       []PersonItem `json:"items"`
}

// PersonItem is one participant's payment line in the document.
type PersonItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

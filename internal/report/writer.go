package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes the document as indented JSON. Decoding the output
// back into a Document reproduces the same values.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteText writes the fixed-layout text report: header lines for date,
// location, subtotal, tip and total, then one line per participant with
// the amount formatted to two decimal places.
func WriteText(w io.Writer, doc Document) error {
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("Date:     %s\n", doc.Date)
	write("Location: %s\n", doc.Location)
	write("SubTotal: %.2f\n", doc.SubTotal)
	write("Tip:      %.2f\n", doc.Tip)
	write("Total:    %.2f\n", doc.TotalAmount)
	write("----------------\n")
	for _, item := range doc.Items {
		write("%-12s %10.2f\n", item.Name, item.Amount)
	}
	return err
}

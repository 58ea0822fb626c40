package split

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDate converts an ISO calendar date (YYYY-MM-DD) to its display
// form, e.g. "2024-03-21" becomes "2024年3月21日". Month and day lose
// their leading zeros. The date is not checked against a calendar (month
// 13 passes through as-is) and malformed input yields a nonsensical
// string rather than an error.
func FormatDate(iso string) string {
	parts := strings.SplitN(iso, "-", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return fmt.Sprintf("%d年%d月%d日", year, month, day)
}

// Package format holds pure helpers converting raw market values into the
// strings the dashboard renders. All grouping follows the English locale.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// USD formats a price in dollars. Sub-dollar prices get extra precision so
// small-cap coins don't render as $0.00.
func USD(value float64) string {
	if value != 0 && math.Abs(value) < 1 {
		return printer.Sprintf("$%.6f", value)
	}
	return printer.Sprintf("$%.2f", value)
}

// Compact formats a large dollar amount with a magnitude suffix, e.g.
// "$1.23T", "$850.50B", "$12.34M".
func Compact(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1e12:
		return printer.Sprintf("$%.2fT", value/1e12)
	case abs >= 1e9:
		return printer.Sprintf("$%.2fB", value/1e9)
	case abs >= 1e6:
		return printer.Sprintf("$%.2fM", value/1e6)
	case abs >= 1e3:
		return printer.Sprintf("$%.2fK", value/1e3)
	default:
		return printer.Sprintf("$%.2f", value)
	}
}

// Percent formats a signed percentage with two decimals, e.g. "+1.25%"
func Percent(value float64) string {
	if value >= 0 {
		return printer.Sprintf("+%.2f%%", value)
	}
	return printer.Sprintf("%.2f%%", value)
}

// Amount formats a unitless quantity (e.g. circulating supply) with grouping
func Amount(value float64) string {
	return printer.Sprintf("%.0f", value)
}

// Clock formats a timestamp as a wall-clock time for the header's
// last-updated figure
func Clock(t time.Time) string {
	return t.Format("15:04:05")
}

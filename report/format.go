package report

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// NA is shown for unknown values.
const NA = "N/A"

func count(x float64) string {
	return humanize.Comma(int64(math.Round(x)))
}

func money(x float64) string {
	return "$" + humanize.Commaf(math.Round(x))
}

func moneyPtr(x *float64) string {
	if x == nil {
		return NA
	}

	return money(*x)
}

func moneyCents(x *float64) string {
	if x == nil {
		return NA
	}

	return "$" + humanize.FormatFloat("#,###.##", *x)
}

// percent formats a rate in [0,1] as a percentage
func percent(x *float64) string {
	if x == nil {
		return NA
	}

	return fmt.Sprintf("%.2f%%", 100**x)
}

func signedPct(x float64) string {
	return fmt.Sprintf("%+.1f%%", x)
}

func number(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}

	return humanize.CommafWithDigits(x, 2)
}

func intPtr(x *int) string {
	if x == nil {
		return NA
	}

	return fmt.Sprintf("%d", *x)
}

func strPtr(x *string) string {
	if x == nil {
		return NA
	}

	return *x
}

// Package banner renders quote results for the CLI and the TUI.
package banner

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bestpet/internal/core/domain"
)

const (
	successTitle = "============ Best Pet Shop ============"
	successRule  = "======================================="

	errorTitle = "================================ Error ================================"
	errorRule  = "======================================================================="

	// Pattern is the expected request layout.
	Pattern = "<date> <small dogs> <big dogs>"

	// Example is a valid request.
	Example = "03/08/2018 3 5"

	// FailureMessage is shown for every failed quote.
	FailureMessage = "could not find the best pet shop"
)

// FormatPrice renders a total with exactly two decimals.
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}

// Success renders the winning shop, one line per row, newline terminated.
func Success(st *styles.Styles, best domain.BestOption) string {
	var b strings.Builder
	b.WriteString(st.Success.Render(successTitle) + "\n")
	fmt.Fprintf(&b, "Name: %s | Price: %s\n", best.Shop.Name, FormatPrice(best.Price))
	b.WriteString(st.Success.Render(successRule) + "\n")
	return b.String()
}

// Failure renders the generic error banner. The text does not depend on
// what went wrong.
func Failure(st *styles.Styles) string {
	var b strings.Builder
	b.WriteString(st.Error.Render(errorTitle) + "\n")
	fmt.Fprintf(&b, "Could not find the best pet shop. Input must follow the pattern %s\n", Pattern)
	fmt.Fprintf(&b, "Example: %s\n", Example)
	b.WriteString(st.Error.Render(errorRule) + "\n")
	return b.String()
}

// Ranking renders every shop's total, in the given order.
func Ranking(st *styles.Styles, quotes []domain.ShopQuote) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Ranking:") + "\n")
	for i, q := range quotes {
		fmt.Fprintf(&b, "  [%d] %s | Price: %s %s\n",
			i+1, q.Shop.Name, FormatPrice(q.Price),
			st.Muted.Render("(distance "+q.Shop.Distance.String()+")"))
	}
	return b.String()
}

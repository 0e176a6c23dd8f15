package cli

import (
	"fmt"
	"io"

	"github.com/custodia-labs/bestpet/internal/adapters/driving/banner"
	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bestpet/internal/core/domain"
)

func printSuccessBanner(w io.Writer, best domain.BestOption) {
	fmt.Fprint(w, banner.Success(styles.ForWriter(w), best))
}

func printErrorBanner(w io.Writer) {
	fmt.Fprint(w, banner.Failure(styles.ForWriter(w)))
}

func printRanking(w io.Writer, quotes []domain.ShopQuote) {
	fmt.Fprint(w, banner.Ranking(styles.ForWriter(w), quotes))
}

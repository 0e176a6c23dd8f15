package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bestpet/internal/adapters/driving/banner"
	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/logger"
)

var (
	quoteAll  bool
	quoteJSON bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote [date small-dogs big-dogs]",
	Short: "Find the best pet shop for a bath day",
	Long: `Prices a bath for the given dogs at every shop and prints the cheapest one.
Ties on price go to the closest shop.

The date is day/month/year. Without arguments the request is read from stdin.
Flags go before the request; everything after the date is part of the request.

Example:
  bestpet quote --all 03/08/2018 3 5`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().BoolVarP(&quoteAll, "all", "a", false, "also list every shop ranked by price")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "output result as JSON")
	// A negative quantity such as "-3" is a request field, not a flag.
	quoteCmd.Flags().SetInterspersed(false)
	quoteCmd.SetFlagErrorFunc(quoteFailed)
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	line, err := readQuoteLine(cmd, args)
	if err != nil {
		return quoteFailed(cmd, err)
	}

	req, err := domain.ParseQuoteRequest(line)
	if err != nil {
		return quoteFailed(cmd, err)
	}
	logger.Debug("request: date=%s weekday=%s small=%d big=%d",
		req.Date.Format(domain.DateLayout), req.Weekday, req.SmallDogs, req.BigDogs)

	ctx := context.Background()
	best, err := quoteService.BestOption(ctx, req)
	if err != nil {
		return quoteFailed(cmd, err)
	}

	var ranking []domain.ShopQuote
	if quoteAll {
		ranking, err = quoteService.Rank(ctx, req.Weekday, req.SmallDogs, req.BigDogs)
		if err != nil {
			return quoteFailed(cmd, err)
		}
	}

	if quoteJSON {
		return outputQuoteJSON(cmd, req, best, ranking)
	}

	out := cmd.OutOrStdout()
	printSuccessBanner(out, *best)
	if quoteAll {
		fmt.Fprintln(out)
		printRanking(out, ranking)
	}
	return nil
}

// quoteFailed logs the cause and prints the generic error banner.
// The command itself succeeds.
func quoteFailed(cmd *cobra.Command, cause error) error {
	logger.Warn("quote failed: %v", cause)
	if quoteJSON {
		return outputQuoteErrorJSON(cmd)
	}
	printErrorBanner(cmd.OutOrStdout())
	return nil
}

// readQuoteLine joins the arguments, or reads one line from stdin.
func readQuoteLine(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Enter %s: ", banner.Pattern)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading request: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return "", &domain.InputError{Field: domain.FieldLine, Value: line, Err: domain.ErrInvalidInput}
	}
	return line, nil
}

// isTerminal reports whether r is an interactive terminal; tests replace it.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type quoteShopJSON struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Price    string `json:"price"`
}

type quoteResultJSON struct {
	Date      string          `json:"date"`
	Weekday   string          `json:"weekday"`
	SmallDogs int             `json:"small_dogs"`
	BigDogs   int             `json:"big_dogs"`
	Best      quoteShopJSON   `json:"best"`
	Ranking   []quoteShopJSON `json:"ranking,omitempty"`
}

type quoteErrorJSON struct {
	Error   string `json:"error"`
	Pattern string `json:"pattern"`
	Example string `json:"example"`
}

func toQuoteShopJSON(shop *domain.Shop, price string) quoteShopJSON {
	return quoteShopJSON{
		ID:       shop.ID,
		Name:     shop.Name,
		Distance: shop.Distance.String(),
		Price:    price,
	}
}

func outputQuoteJSON(
	cmd *cobra.Command,
	req domain.QuoteRequest,
	best *domain.BestOption,
	ranking []domain.ShopQuote,
) error {
	result := quoteResultJSON{
		Date:      req.Date.Format("02/01/2006"),
		Weekday:   req.Weekday.String(),
		SmallDogs: req.SmallDogs,
		BigDogs:   req.BigDogs,
		Best:      toQuoteShopJSON(best.Shop, banner.FormatPrice(best.Price)),
	}
	for _, q := range ranking {
		result.Ranking = append(result.Ranking, toQuoteShopJSON(q.Shop, banner.FormatPrice(q.Price)))
	}
	return writeJSON(cmd, result)
}

func outputQuoteErrorJSON(cmd *cobra.Command) error {
	return writeJSON(cmd, quoteErrorJSON{
		Error:   banner.FailureMessage,
		Pattern: banner.Pattern,
		Example: banner.Example,
	})
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bestpet/internal/adapters/driving/banner"
	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bestpet/internal/core/domain"
)

var shopsCmd = &cobra.Command{
	Use:   "shops [id]",
	Short: "List the shops in the catalog",
	Long: `Lists every shop in the active catalog with its distance and the
weekday and weekend price of each product.

Pass a shop id to show only that shop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShops,
}

func init() {
	rootCmd.AddCommand(shopsCmd)
}

func runShops(cmd *cobra.Command, args []string) error {
	if shopService == nil {
		return errors.New("shop service not configured")
	}

	if len(args) == 1 {
		return runShowShop(cmd, args[0])
	}

	shops, err := shopService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list shops: %w", err)
	}

	if len(shops) == 0 {
		cmd.Println("No shops in catalog.")
		return nil
	}

	st := styles.ForWriter(cmd.OutOrStdout())
	cmd.Println(st.Title.Render("Shops:"))
	cmd.Println()
	for _, shop := range shops {
		printShop(cmd, st, shop)
	}
	return nil
}

func runShowShop(cmd *cobra.Command, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid shop id %q", arg)
	}

	shop, err := shopService.Get(context.Background(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("shop %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get shop: %w", err)
	}

	printShop(cmd, styles.ForWriter(cmd.OutOrStdout()), shop)
	return nil
}

func printShop(cmd *cobra.Command, st *styles.Styles, shop *domain.Shop) {
	cmd.Printf("  [%d] %s %s\n", shop.ID, shop.Name, st.Muted.Render("(distance "+shop.Distance.String()+")"))
	for _, p := range shop.Products() {
		cmd.Printf("      %d %s: weekday %s, weekend %s\n",
			p.ID, p.Name,
			banner.FormatPrice(p.PriceTable.WeekdayPrice),
			banner.FormatPrice(p.PriceTable.WeekendPrice))
	}
	cmd.Println()
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/brokerage"
	"github.com/etnz/brokerage/renderer"
	"github.com/google/subcommands"
)

// submitOrder rebuilds the account, submits the order, and appends the
// resulting fill to the fill log. Zero fills are reported and discarded.
func submitOrder(cfg Config, order brokerage.Order) subcommands.ExitStatus {
	ledger, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	filled, err := ledger.SubmitOrder(order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if filled.IsZero() {
		fmt.Println("Nothing filled.")
		return subcommands.ExitSuccess
	}

	fill := order
	fill.Quantity = filled
	if status := appendFill(cfg.FillsFile, fill); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Println(renderer.Transaction(fill))
	fmt.Printf("Cash balance: %s\n", ledger.CashBalance())
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	security string
	quantity float64
	price    float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `bkr buy -s <security> -q <quantity> -p <price>

  Purchases shares of a security. The order fills up to the number of whole
  shares the cash balance can afford, and the cost is debited from cash.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	order := brokerage.NewBuyOrder(c.security, brokerage.Q(c.quantity), brokerage.M(c.price, cfg.Currency))
	return submitOrder(cfg, order)
}

// --- Sell Command ---

type sellCmd struct {
	security string
	quantity float64
	price    float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `bkr sell -s <security> -q <quantity> -p <price>

  Sells shares of a security. The order fills up to the number of shares held,
  and the proceeds are credited to cash.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	order := brokerage.NewSellOrder(c.security, brokerage.Q(c.quantity), brokerage.M(c.price, cfg.Currency))
	return submitOrder(cfg, order)
}

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

// loadForReport is the common preamble of the read-only commands.
func loadForReport() (*brokerage.AccountLedger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return loadLedger(cfg)
}

// --- Positions Command ---

type positionsCmd struct{}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "list all open positions" }
func (*positionsCmd) Usage() string {
	return `bkr positions

  Lists every security held, its quantity and its weighted-average price.
`
}

func (*positionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadForReport()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Positions(ledger.Positions()))
	return subcommands.ExitSuccess
}

// --- Balance Command ---

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the cash balance" }
func (*balanceCmd) Usage() string {
	return `bkr balance

  Prints the current cash balance of the account.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadForReport()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(ledger.CashBalance())
	return subcommands.ExitSuccess
}

// --- Tx Command ---

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the filled orders of the account" }
func (*txCmd) Usage() string {
	return `bkr tx [-head <n>] [-tail <n>]

  Lists the fills recorded against the account, oldest first, with options
  for limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N fills.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N fills.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadForReport()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fills := ledger.Transactions()
	if p.head > 0 && len(fills) > p.head {
		fills = fills[:p.head]
	}
	if p.tail > 0 && len(fills) > p.tail {
		fills = fills[len(fills)-p.tail:]
	}

	printMarkdown(renderer.Transactions(fills))
	return subcommands.ExitSuccess
}

// --- Statement Command ---

type statementCmd struct{}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "render a full account statement" }
func (*statementCmd) Usage() string {
	return `bkr statement

  Renders the account statement: cash, open positions with cost basis, and
  realized gains per security.
`
}

func (*statementCmd) SetFlags(f *flag.FlagSet) {}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadForReport()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Statement(brokerage.NewStatement(ledger)))
	return subcommands.ExitSuccess
}

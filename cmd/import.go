package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/brokerage"
	"github.com/google/subcommands"
)

type importCmd struct {
	inputFile string
	rows      string
	side      string
	security  string
	quantity  string
	price     string
	currency  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import fills from an external JSON document" }
func (*importCmd) Usage() string {
	return `bkr import [-i <file>] [-rows <path>] [-side <path>] [-security <path>] [-quantity <path>] [-price <path>] [-currency <code>]

  Reads a JSON document (stdin by default), extracts orders using JSONPath
  expressions, submits them to the account in document order, and appends
  the resulting fills to the fill log.

  The -rows path selects the list of records; the other paths are evaluated
  relative to each record.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	def := brokerage.DefaultImportSpec()
	f.StringVar(&c.inputFile, "i", "", "Input JSON file. Reads stdin when omitted.")
	f.StringVar(&c.rows, "rows", def.Rows, "JSONPath to the list of fill records.")
	f.StringVar(&c.side, "side", def.Side, "JSONPath to the order side within a record.")
	f.StringVar(&c.security, "security", def.Security, "JSONPath to the security ticker within a record.")
	f.StringVar(&c.quantity, "quantity", def.Quantity, "JSONPath to the filled quantity within a record.")
	f.StringVar(&c.price, "price", def.Price, "JSONPath to the fill price within a record.")
	f.StringVar(&c.currency, "currency", "", "Currency code of the imported prices. Defaults to the account currency.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var in io.Reader = os.Stdin
	if c.inputFile != "" {
		file, err := os.Open(c.inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input %q: %v\n", c.inputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	currency := c.currency
	if currency == "" {
		currency = cfg.Currency
	}
	spec := brokerage.ImportSpec{
		Rows:     c.rows,
		Side:     c.side,
		Security: c.security,
		Quantity: c.quantity,
		Price:    c.price,
		Currency: currency,
	}

	orders, err := brokerage.ImportOrders(in, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing orders: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(orders) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no orders found in input.")
		return subcommands.ExitSuccess
	}

	// Imported orders go through the ledger like any other order, so the
	// fill log only ever records what was actually transacted.
	ledger, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	imported := 0
	for _, order := range orders {
		filled, err := ledger.SubmitOrder(order)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if filled.IsZero() {
			continue
		}
		fill := order
		fill.Quantity = filled
		if status := appendFill(cfg.FillsFile, fill); status != subcommands.ExitSuccess {
			return status
		}
		imported++
	}

	fmt.Printf("Imported %d fills into %s\n", imported, cfg.FillsFile)
	fmt.Printf("Cash balance: %s\n", ledger.CashBalance())
	return subcommands.ExitSuccess
}

package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/brokerage"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the fill log into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bkr fmt

  Validates and formats the fill log. This command reads all fills, validates
  them, and writes them back in a canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	data, err := os.ReadFile(cfg.FillsFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: no fill log %q to format.\n", cfg.FillsFile)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading fill log %q: %v\n", cfg.FillsFile, err)
		return subcommands.ExitFailure
	}

	orders, err := brokerage.DecodeOrders(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid fill log %q: %v\n", cfg.FillsFile, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := brokerage.EncodeOrders(&buf, orders); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting fill log: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(cfg.FillsFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing fill log %q: %v\n", cfg.FillsFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d fills in %s\n", len(orders), cfg.FillsFile)
	return subcommands.ExitSuccess
}

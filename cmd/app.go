// Package cmd implements the CLI application to manage a brokerage account.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/brokerage"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "orders")
	c.Register(&sellCmd{}, "orders")
	c.Register(&importCmd{}, "orders")

	c.Register(&positionsCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&statementCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "bkr.yaml", "Path to the account configuration file (YAML)")
var fillsFile = flag.String("fills-file", "", "Path to the fill log (JSONL format), overrides the configuration")

// loadConfig reads the account configuration, falling back to defaults when
// the file does not exist. The -fills-file flag wins over the file.
func loadConfig() (Config, error) {
	cfg, err := LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return cfg, err
	}
	if *fillsFile != "" {
		cfg.FillsFile = *fillsFile
	}
	return cfg, cfg.Validate()
}

// loadLedger rebuilds the account by replaying the fill log onto a fresh
// ledger holding the configured opening cash.
func loadLedger(cfg Config) (*brokerage.AccountLedger, error) {
	ledger := brokerage.NewAccountLedger(brokerage.M(cfg.OpeningCash, cfg.Currency))

	f, err := os.Open(cfg.FillsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, fill log does not exist, starting from an empty account instead")
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open fill log %q: %w", cfg.FillsFile, err)
	}
	defer f.Close()

	orders, err := brokerage.DecodeOrders(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode fill log %q: %w", cfg.FillsFile, err)
	}
	if _, err := ledger.Replay(orders); err != nil {
		return nil, fmt.Errorf("could not replay fill log %q: %w", cfg.FillsFile, err)
	}
	return ledger, nil
}

// appendFill appends a single processed fill to the fill log.
func appendFill(filename string, fill brokerage.Order) subcommands.ExitStatus {
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening fill log %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := brokerage.EncodeOrder(f, fill); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to fill log %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

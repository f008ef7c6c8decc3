package brokerage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeOrder marshals a single order to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeOrder(w io.Writer, order Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write order: %w", err)
	}
	return nil
}

// EncodeOrders writes orders to an io.Writer in canonical JSONL format, one
// order per line, in the given order.
func EncodeOrders(w io.Writer, orders []Order) error {
	for _, order := range orders {
		if err := EncodeOrder(w, order); err != nil {
			return err
		}
	}
	return nil
}

// DecodeOrders reads a stream of JSONL order data, decodes each line, and
// returns the orders in reading order. Empty lines are skipped. Every
// decoded order is validated, so the result is safe to replay.
func DecodeOrders(r io.Reader) ([]Order, error) {
	var orders []Order
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var order Order
		if err := json.Unmarshal(lineBytes, &order); err != nil {
			return nil, fmt.Errorf("could not decode order on line %d: %w", line, err)
		}
		if err := order.Validate(); err != nil {
			return nil, fmt.Errorf("order on line %d: %w", line, err)
		}
		orders = append(orders, order)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return orders, nil
}

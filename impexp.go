package brokerage

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// ImportSpec describes how to locate order fields inside a broker's JSON
// export. Rows selects the list of order objects; the remaining paths are
// evaluated relative to each row.
type ImportSpec struct {
	Rows     string // jsonpath to the list of orders, e.g. "$.orders[*]"
	Side     string // jsonpath to the order side ("buy"/"sell") within a row
	Security string // jsonpath to the ticker within a row
	Quantity string // jsonpath to the share count within a row
	Price    string // jsonpath to the per-share price within a row
	Currency string // currency tag applied to imported prices, may be ""
}

// DefaultImportSpec matches exports of the shape
// {"orders":[{"side":...,"security":...,"quantity":...,"price":...},...]}.
func DefaultImportSpec() ImportSpec {
	return ImportSpec{
		Rows:     "$.orders[*]",
		Side:     "$.side",
		Security: "$.security",
		Quantity: "$.quantity",
		Price:    "$.price",
	}
}

// ImportOrders extracts orders from a third-party JSON export using the
// jsonpath expressions of the spec. Imported orders are validated, so the
// result is safe to replay against a ledger.
func ImportOrders(r io.Reader, spec ImportSpec) ([]Order, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse export: %w", err)
	}

	jrows, err := jsonpath.Get(spec.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("error selecting rows %q: %w", spec.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// a single-object selection is accepted as a one-row list
		rows = []any{jrows}
	}

	orders := make([]Order, 0, len(rows))
	for i, row := range rows {
		side, err := importString(row, spec.Side)
		if err != nil {
			return nil, fmt.Errorf("row %d: side: %w", i, err)
		}
		parsedSide, err := ParseSide(strings.ToLower(side))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		security, err := importString(row, spec.Security)
		if err != nil {
			return nil, fmt.Errorf("row %d: security: %w", i, err)
		}
		quantity, err := importFloat(row, spec.Quantity)
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity: %w", i, err)
		}
		price, err := importFloat(row, spec.Price)
		if err != nil {
			return nil, fmt.Errorf("row %d: price: %w", i, err)
		}

		order := Order{
			Side:     parsedSide,
			Security: security,
			Quantity: Q(quantity),
			Price:    M(price, spec.Currency),
		}
		if err := order.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// importScalar evaluates a jsonpath against a row and unwraps the result.
// jsonpath is never clear about whether it returns a list of one answer or a
// single answer, so a one-element list is unwrapped to its element.
func importScalar(row any, path string) (any, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func importString(row any, path string) (string, error) {
	jval, err := importScalar(row, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}

func importFloat(row any, path string) (float64, error) {
	jval, err := importScalar(row, path)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		// some exports quote their numbers
		sval, ok := jval.(string)
		if !ok {
			return 0, fmt.Errorf("%q is neither a float nor a string: %v", path, jval)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is an invalid number %q: %w", path, sval, err)
		}
	}
	return val, nil
}

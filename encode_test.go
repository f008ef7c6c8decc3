package brokerage

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeOrders(t *testing.T) {
	orders := []Order{
		NewBuyOrder("AAPL", Q(10), USD(150)),
		NewSellOrder("AAPL", Q(4), USD(160)),
		NewBuyOrder("MSFT", Q(2), NO(99.5)),
	}

	var buf bytes.Buffer
	if err := EncodeOrders(&buf, orders); err != nil {
		t.Fatalf("EncodeOrders() error = %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != len(orders) {
		t.Errorf("EncodeOrders() wrote %d lines, want %d", got, len(orders))
	}

	decoded, err := DecodeOrders(&buf)
	if err != nil {
		t.Fatalf("DecodeOrders() error = %v", err)
	}
	if len(decoded) != len(orders) {
		t.Fatalf("DecodeOrders() = %d orders, want %d", len(decoded), len(orders))
	}
	for i := range orders {
		if !decoded[i].Equal(orders[i]) {
			t.Errorf("order %d = %+v, want %+v", i, decoded[i], orders[i])
		}
	}
}

func TestDecodeOrders_SkipsEmptyLines(t *testing.T) {
	in := `{"side":"buy","security":"AAPL","quantity":10,"price":150,"currency":"USD"}

{"side":"sell","security":"AAPL","quantity":5,"price":160,"currency":"USD"}
`
	orders, err := DecodeOrders(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeOrders() error = %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("DecodeOrders() = %d orders, want 2", len(orders))
	}
}

func TestDecodeOrders_ReportsLineNumber(t *testing.T) {
	in := `{"side":"buy","security":"AAPL","quantity":10,"price":150}
not a json line
`
	_, err := DecodeOrders(strings.NewReader(in))
	if err == nil {
		t.Fatal("DecodeOrders() error = nil, want decode error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("DecodeOrders() error = %q, want it to name line 2", err)
	}
}

func TestDecodeOrders_ValidatesOrders(t *testing.T) {
	in := `{"side":"buy","security":"","quantity":10,"price":150}
`
	_, err := DecodeOrders(strings.NewReader(in))
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("DecodeOrders() error = %v, want ErrInvalidOrder", err)
	}
}

func TestDecodeOrders_RequiresSide(t *testing.T) {
	// A hand-edited line without a side must not replay as a buy.
	in := `{"security":"AAPL","quantity":10,"price":150}
`
	_, err := DecodeOrders(strings.NewReader(in))
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("DecodeOrders() error = %v, want ErrInvalidOrder", err)
	}
}

func TestEncodeDecode_ReplayRebuildsAccount(t *testing.T) {
	ledger := NewAccountLedger(USD(10000))
	fill(t, ledger, NewBuyOrder("AAPL", Q(10), USD(100)))
	fill(t, ledger, NewSellOrder("AAPL", Q(4), USD(120)))

	var buf bytes.Buffer
	if err := EncodeOrders(&buf, ledger.Transactions()); err != nil {
		t.Fatalf("EncodeOrders() error = %v", err)
	}

	orders, err := DecodeOrders(&buf)
	if err != nil {
		t.Fatalf("DecodeOrders() error = %v", err)
	}
	rebuilt := NewAccountLedger(USD(10000))
	if _, err := rebuilt.Replay(orders); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}

	if got, want := rebuilt.CashBalance(), ledger.CashBalance(); !got.Equal(want) {
		t.Errorf("rebuilt CashBalance() = %s, want %s", got, want)
	}
	if got, want := rebuilt.Position("AAPL"), ledger.Position("AAPL"); !got.Equal(want) {
		t.Errorf("rebuilt Position(AAPL) = %s, want %s", got, want)
	}
	if got, want := rebuilt.RealizedGains("AAPL"), ledger.RealizedGains("AAPL"); !got.Equal(want) {
		t.Errorf("rebuilt RealizedGains(AAPL) = %s, want %s", got, want)
	}
}

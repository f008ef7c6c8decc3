package brokerage

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keys keep insertion order", func(t *testing.T) {
		// The fill log format depends on this: side first, then security,
		// quantity, price, regardless of alphabetical order.
		var w jsonObjectWriter
		w.Append("side", "sell")
		w.Append("security", "AAPL")
		w.Append("quantity", 4)
		w.Append("price", 160)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"side":"sell","security":"AAPL","quantity":4,"price":160}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		// The currency tag is omitted when empty, a zero amount is not.
		var w jsonObjectWriter
		w.Append("amount", 0)
		w.Optional("currency", "")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"amount":0}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}

		w = jsonObjectWriter{}
		w.Append("amount", 0)
		w.Optional("currency", "USD")
		got, err = w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"amount":0,"currency":"USD"}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal failure is reported at the end", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", json.RawMessage(`{`))
		w.Append("side", "buy")
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() error = nil, want marshal error")
		}
	})
}

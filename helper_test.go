package brokerage

import "testing"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// fill submits an order and fails the test on a validation error.
func fill(t *testing.T, l *AccountLedger, order Order) Quantity {
	t.Helper()
	filled, err := l.SubmitOrder(order)
	if err != nil {
		t.Fatalf("SubmitOrder(%v) error = %v", order, err)
	}
	return filled
}

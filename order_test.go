package brokerage

import (
	"errors"
	"testing"
)

func TestOrder_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		order   Order
		wantErr bool
	}{
		{name: "valid buy", order: NewBuyOrder("AAPL", Q(10), USD(100))},
		{name: "valid sell", order: NewSellOrder("AAPL", Q(10), USD(100))},
		{name: "zero quantity", order: NewBuyOrder("AAPL", Q(0), USD(100))},
		{name: "zero price", order: NewBuyOrder("AAPL", Q(10), USD(0))},
		{name: "no currency", order: NewBuyOrder("AAPL", Q(10), NO(100))},
		{name: "empty ticker", order: NewBuyOrder("", Q(10), USD(100)), wantErr: true},
		{name: "negative quantity", order: NewBuyOrder("AAPL", Q(-10), USD(100)), wantErr: true},
		{name: "fractional quantity", order: NewBuyOrder("AAPL", Q(0.5), USD(100)), wantErr: true},
		{name: "negative price", order: NewBuyOrder("AAPL", Q(10), USD(-1)), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("Validate() error = %v, want ErrInvalidOrder", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestOrder_Cost(t *testing.T) {
	order := NewBuyOrder("AAPL", Q(10), USD(150))
	if got := order.Cost(); !got.Equal(USD(1500)) {
		t.Errorf("Cost() = %s, want %s", got, USD(1500))
	}
}

func TestOrder_UnmarshalJSON_MissingSide(t *testing.T) {
	var o Order
	err := o.UnmarshalJSON([]byte(`{"security":"AAPL","quantity":10,"price":100}`))
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("UnmarshalJSON() error = %v, want ErrInvalidOrder", err)
	}
}

func TestOrder_MarshalJSON(t *testing.T) {
	testCases := []struct {
		name  string
		order Order
		want  string
	}{
		{
			name:  "buy with currency",
			order: NewBuyOrder("AAPL", Q(10), USD(150.5)),
			want:  `{"side":"buy","security":"AAPL","quantity":10,"price":150.5,"currency":"USD"}`,
		},
		{
			name:  "sell without currency",
			order: NewSellOrder("MSFT", Q(3), NO(99)),
			want:  `{"side":"sell","security":"MSFT","quantity":3,"price":99}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.order.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("MarshalJSON() = %s, want %s", data, tc.want)
			}

			var back Order
			if err := back.UnmarshalJSON(data); err != nil {
				t.Fatalf("UnmarshalJSON() error = %v", err)
			}
			if !back.Equal(tc.order) {
				t.Errorf("round trip = %+v, want %+v", back, tc.order)
			}
		})
	}
}

package brokerage

import "fmt"

// Side identifies the direction of an order.
type Side int

const (
	// Buy orders purchase shares, debiting the cash balance.
	Buy Side = iota
	// Sell orders dispose of held shares, crediting the cash balance.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown order side: %q", s)
	}
}

// MarshalJSON encodes the side as its string form.
func (s Side) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// UnmarshalJSON decodes the side from its string form.
func (s *Side) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("order side must be a JSON string, got %s", string(data))
	}
	side, err := ParseSide(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

package renderer

import (
	"fmt"

	"github.com/etnz/brokerage"
)

// Transaction renders a processed fill to a one-line string.
func Transaction(o brokerage.Order) string {
	switch o.Side {
	case brokerage.Buy:
		return fmt.Sprintf("Bought %s of %s at %s", o.Quantity, o.Security, o.Price)
	case brokerage.Sell:
		return fmt.Sprintf("Sold %s of %s at %s", o.Quantity, o.Security, o.Price)
	default:
		return o.Side.String()
	}
}

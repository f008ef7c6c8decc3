package brokerage

// Statement is a point-in-time report of an account: the cash balance, one
// row per held security, and account-wide totals.
type Statement struct {
	Cash              Money
	Positions         []PositionReport
	TotalCostBasis    Money
	TotalRealizedGain Money
}

// PositionReport describes one held security in a statement.
type PositionReport struct {
	Security     string
	Quantity     Quantity
	AveragePrice Money // weighted-average purchase price of the shares held
	CostBasis    Money // AveragePrice times Quantity
	RealizedGain Money // profit locked in by past sales of this security
}

// NewStatement computes a statement from the ledger's current state.
func NewStatement(l *AccountLedger) *Statement {
	s := &Statement{
		Cash:              l.CashBalance(),
		TotalRealizedGain: l.TotalRealizedGains(),
	}
	for _, position := range l.Positions() {
		costBasis := l.CostBasis(position.Security)
		s.Positions = append(s.Positions, PositionReport{
			Security:     position.Security,
			Quantity:     position.Quantity,
			AveragePrice: position.Price,
			CostBasis:    costBasis,
			RealizedGain: l.RealizedGains(position.Security),
		})
		s.TotalCostBasis = s.TotalCostBasis.Add(costBasis)
	}
	return s
}

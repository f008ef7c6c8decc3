package renderer

import "github.com/etnz/brokerage"

// The view types hold preformatted strings so the templates stay free of
// formatting logic.

type statementView struct {
	Cash              string
	Positions         []statementRow
	TotalCostBasis    string
	TotalRealizedGain string
}

type statementRow struct {
	Security     string
	Quantity     string
	AveragePrice string
	CostBasis    string
	RealizedGain string
}

func newStatementView(s *brokerage.Statement) *statementView {
	v := &statementView{
		Cash:              s.Cash.String(),
		TotalCostBasis:    s.TotalCostBasis.String(),
		TotalRealizedGain: s.TotalRealizedGain.SignedString(),
	}
	for _, p := range s.Positions {
		v.Positions = append(v.Positions, statementRow{
			Security:     p.Security,
			Quantity:     p.Quantity.String(),
			AveragePrice: p.AveragePrice.String(),
			CostBasis:    p.CostBasis.String(),
			RealizedGain: p.RealizedGain.SignedString(),
		})
	}
	return v
}

type positionsView struct {
	Positions []positionRow
}

type positionRow struct {
	Security     string
	Quantity     string
	AveragePrice string
}

func newPositionsView(positions []brokerage.SecurityPosition) *positionsView {
	v := &positionsView{}
	for _, p := range positions {
		v.Positions = append(v.Positions, positionRow{
			Security:     p.Security,
			Quantity:     p.Quantity.String(),
			AveragePrice: p.Price.String(),
		})
	}
	return v
}

type transactionsView struct {
	Transactions []transactionRow
}

type transactionRow struct {
	Index       int
	Description string
}

func newTransactionsView(orders []brokerage.Order) *transactionsView {
	v := &transactionsView{}
	for i, o := range orders {
		v.Transactions = append(v.Transactions, transactionRow{
			Index:       i + 1,
			Description: Transaction(o),
		})
	}
	return v
}

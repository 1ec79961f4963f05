package scoring

import (
	"github.com/guttosm/stockscore/internal/domain/apperrors"
	"github.com/guttosm/stockscore/internal/domain/models"
)

// Coefficients of the affine scoring formula Y = A + B1*X1 + B2*X2 + B3*X3.
type Coefficients struct {
	A, B1, B2, B3 float64
}

// Default holds the fixed coefficients. They are not fitted from the data.
var Default = Coefficients{A: 0.5, B1: 2.1, B2: 0.003, B3: 1.2}

// Apply evaluates the formula.
func (c Coefficients) Apply(x1, x2, x3 float64) float64 {
	return c.A + c.B1*x1 + c.B2*x2 + c.B3*x3
}

// Lookup joins the two aggregates for one item code. A code missing from
// either side is an ItemNotFoundError, never a zero-filled aggregate.
func Lookup(code string, sales map[string]models.SalesAggregate, purchases map[string]float64) (models.ItemAggregate, error) {
	s, inSales := sales[code]
	p, inPurchases := purchases[code]
	if !inSales || !inPurchases {
		return models.ItemAggregate{}, &apperrors.ItemNotFoundError{Code: code, InSales: inSales, InPurchases: inPurchases}
	}
	return models.ItemAggregate{
		TransactionFrequency: s.TransactionFrequency,
		TotalRevenue:         s.TotalRevenue,
		UnitsPurchased:       p,
	}, nil
}

// Score computes Y for code using the default coefficients.
func Score(code string, sales map[string]models.SalesAggregate, purchases map[string]float64) (float64, error) {
	in, err := Lookup(code, sales, purchases)
	if err != nil {
		return 0, err
	}
	return Default.Apply(float64(in.TransactionFrequency), in.TotalRevenue, in.UnitsPurchased), nil
}

// Evaluate is Score plus the inputs, ready for display.
func Evaluate(code, name string, sales map[string]models.SalesAggregate, purchases map[string]float64) (models.ScoreResult, error) {
	in, err := Lookup(code, sales, purchases)
	if err != nil {
		return models.ScoreResult{}, err
	}
	return models.ScoreResult{
		ItemCode: code,
		ItemName: name,
		Inputs:   in,
		Y:        Default.Apply(float64(in.TransactionFrequency), in.TotalRevenue, in.UnitsPurchased),
	}, nil
}

package workflow

import (
	"github.com/shopspring/decimal"
)

// numeric mirrors a NUMERIC(precision, scale) column.
type numeric struct {
	precision int32
	scale     int32
}

var (
	priceColumn = numeric{precision: 18, scale: 6}
	salesColumn = numeric{precision: 18, scale: 4}
)

// checkAmount rejects amounts that are not positive or that the column would
// round or overflow. Trailing zeros beyond the scale are fine.
func checkAmount(field string, d decimal.Decimal, col numeric) error {
	if !d.IsPositive() {
		return invalid(field, ErrInvalidPrice, "%s must be greater than zero", field)
	}
	if !d.Equal(d.Truncate(col.scale)) {
		return invalid(field, ErrInvalidPrice, "%s must have at most %d decimal places", field, col.scale)
	}
	if limit := decimal.New(1, col.precision-col.scale); d.GreaterThanOrEqual(limit) {
		return invalid(field, ErrInvalidPrice, "%s must be less than %s", field, limit.String())
	}
	return nil
}

package lazy

import (
	"math/big"
	"strconv"
)

// Decimal is an arbitrary precision decimal: coefficient * 10^exponent.
//
// Zero carries a sign. A decimal whose encoding includes coefficient bytes
// that are all zero is negative zero; one without coefficient bytes is
// positive zero.
type Decimal struct {
	coefficient  Int
	exponent     int64
	negativeZero bool
}

// NewDecimal returns coefficient * 10^exponent.
func NewDecimal(coefficient int64, exponent int64) Decimal {
	return Decimal{coefficient: NewInt(coefficient), exponent: exponent}
}

// NewBigDecimal returns coefficient * 10^exponent for a wide coefficient.
func NewBigDecimal(coefficient *big.Int, exponent int64) Decimal {
	return Decimal{coefficient: NewBigInt(coefficient), exponent: exponent}
}

// NegativeZero returns -0 * 10^exponent.
func NegativeZero(exponent int64) Decimal {
	return Decimal{exponent: exponent, negativeZero: true}
}

// Coefficient returns the coefficient. It is zero for both zeros.
func (d Decimal) Coefficient() Int {
	return d.coefficient
}

// Exponent returns the power of ten the coefficient is scaled by.
func (d Decimal) Exponent() int64 {
	return d.exponent
}

// IsZero reports whether d is positive or negative zero.
func (d Decimal) IsZero() bool {
	return d.coefficient.Sign() == 0
}

// IsNegativeZero reports whether d is negative zero.
func (d Decimal) IsNegativeZero() bool {
	return d.negativeZero
}

// Sign returns -1, 0 or +1. Both zeros report 0.
func (d Decimal) Sign() int {
	return d.coefficient.Sign()
}

// Equal reports whether d and o denote the same number.
//
// Precision and the sign of zero are ignored, so 1.0 equals 1.00 and -0
// equals 0d5.
func (d Decimal) Equal(o Decimal) bool {
	if d.IsZero() || o.IsZero() {
		return d.IsZero() && o.IsZero()
	}

	dc, de := d.normalized()
	oc, oe := o.normalized()

	return de == oe && dc.Cmp(oc) == 0
}

// IdenticalTo reports whether d and o have the same coefficient, exponent and
// sign of zero.
func (d Decimal) IdenticalTo(o Decimal) bool {
	return d.exponent == o.exponent && d.negativeZero == o.negativeZero && d.coefficient.Equal(o.coefficient)
}

// normalized strips trailing decimal zeros from a non-zero coefficient.
func (d Decimal) normalized() (*big.Int, int64) {
	c := d.coefficient.Big()
	exp := d.exponent

	ten := big.NewInt(10)
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(c, ten, r)
		if r.Sign() != 0 {
			return c, exp
		}
		c, q = q, c
		exp++
	}
}

// String formats d as <coefficient>d<exponent>, for example 314159d-5 or -0d3.
func (d Decimal) String() string {
	c := d.coefficient.String()
	if d.negativeZero {
		c = "-0"
	}

	return c + "d" + strconv.FormatInt(d.exponent, 10)
}

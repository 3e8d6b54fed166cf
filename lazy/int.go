package lazy

import (
	"math/big"
	"strconv"
)

// Int is an integer of arbitrary precision.
//
// Values that fit in an int64 are stored inline; wider values are held as a
// *big.Int that is never exposed. The zero Int is 0.
type Int struct {
	small int64
	big   *big.Int
}

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	return Int{small: v}
}

// NewBigInt returns an Int holding a copy of v.
func NewBigInt(v *big.Int) Int {
	if v.IsInt64() {
		return Int{small: v.Int64()}
	}

	return Int{big: new(big.Int).Set(v)}
}

// IsInt64 reports whether the value fits in an int64.
func (i Int) IsInt64() bool {
	return i.big == nil
}

// Int64 returns the value and whether it fits in an int64.
func (i Int) Int64() (int64, bool) {
	if i.big != nil {
		return 0, false
	}

	return i.small, true
}

// Big returns the value as a newly allocated *big.Int.
func (i Int) Big() *big.Int {
	if i.big != nil {
		return new(big.Int).Set(i.big)
	}

	return big.NewInt(i.small)
}

// Sign returns -1, 0 or +1 depending on the sign of the value.
func (i Int) Sign() int {
	if i.big != nil {
		return i.big.Sign()
	}

	switch {
	case i.small < 0:
		return -1
	case i.small > 0:
		return 1
	default:
		return 0
	}
}

// Cmp compares i and o and returns -1, 0 or +1.
func (i Int) Cmp(o Int) int {
	if i.big == nil && o.big == nil {
		switch {
		case i.small < o.small:
			return -1
		case i.small > o.small:
			return 1
		default:
			return 0
		}
	}

	return i.Big().Cmp(o.Big())
}

// Equal reports whether i and o hold the same value.
func (i Int) Equal(o Int) bool {
	return i.Cmp(o) == 0
}

func (i Int) String() string {
	if i.big != nil {
		return i.big.String()
	}

	return strconv.FormatInt(i.small, 10)
}

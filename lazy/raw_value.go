package lazy

import (
	"fmt"
	"strconv"

	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/format"
)

// RawValue is the decoded form of a LazyValue.
//
// Exactly one accessor matches the value's kind; the others return an error
// wrapping errs.ErrTypeMismatch.
type RawValue struct {
	kind format.Kind
	b    bool
	i    Int
	f    float64
	d    Decimal
	text string
	sym  RawSymbol
	lob  []byte
	seq  Sequence
}

// Kind returns the kind of the value.
func (v RawValue) Kind() format.Kind {
	return v.kind
}

// IsNull reports whether the value is the untyped null.
func (v RawValue) IsNull() bool {
	return v.kind == format.KindNull
}

func (v RawValue) expect(kind format.Kind) error {
	if v.kind != kind {
		return fmt.Errorf("%w: expected %s, found %s", errs.ErrTypeMismatch, kind, v.kind)
	}

	return nil
}

// AsBool returns the value of a bool.
func (v RawValue) AsBool() (bool, error) {
	if err := v.expect(format.KindBool); err != nil {
		return false, err
	}

	return v.b, nil
}

// AsInt returns the value of an int.
func (v RawValue) AsInt() (Int, error) {
	if err := v.expect(format.KindInt); err != nil {
		return Int{}, err
	}

	return v.i, nil
}

// AsInt64 returns the value of an int that fits in an int64.
func (v RawValue) AsInt64() (int64, error) {
	i, err := v.AsInt()
	if err != nil {
		return 0, err
	}

	small, ok := i.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: int %s overflows int64", errs.ErrTypeMismatch, i)
	}

	return small, nil
}

// AsFloat returns the value of a float. Single precision floats are widened.
func (v RawValue) AsFloat() (float64, error) {
	if err := v.expect(format.KindFloat); err != nil {
		return 0, err
	}

	return v.f, nil
}

// AsDecimal returns the value of a decimal.
func (v RawValue) AsDecimal() (Decimal, error) {
	if err := v.expect(format.KindDecimal); err != nil {
		return Decimal{}, err
	}

	return v.d, nil
}

// AsString returns the text of a string. The string shares memory with the
// input region.
func (v RawValue) AsString() (string, error) {
	if err := v.expect(format.KindString); err != nil {
		return "", err
	}

	return v.text, nil
}

// AsSymbol returns a symbol.
func (v RawValue) AsSymbol() (RawSymbol, error) {
	if err := v.expect(format.KindSymbol); err != nil {
		return RawSymbol{}, err
	}

	return v.sym, nil
}

// AsBlob returns the bytes of a blob. The slice aliases the input region.
func (v RawValue) AsBlob() ([]byte, error) {
	if err := v.expect(format.KindBlob); err != nil {
		return nil, err
	}

	return v.lob, nil
}

// AsClob returns the bytes of a clob. The slice aliases the input region.
func (v RawValue) AsClob() ([]byte, error) {
	if err := v.expect(format.KindClob); err != nil {
		return nil, err
	}

	return v.lob, nil
}

// AsList returns the elements of a list.
func (v RawValue) AsList() (Sequence, error) {
	if err := v.expect(format.KindList); err != nil {
		return Sequence{}, err
	}

	return v.seq, nil
}

// AsSExp returns the elements of an s-expression.
func (v RawValue) AsSExp() (Sequence, error) {
	if err := v.expect(format.KindSExp); err != nil {
		return Sequence{}, err
	}

	return v.seq, nil
}

// AsSequence returns the elements of a list or s-expression.
func (v RawValue) AsSequence() (Sequence, error) {
	if !v.kind.IsContainer() {
		return Sequence{}, fmt.Errorf("%w: expected list or sexp, found %s", errs.ErrTypeMismatch, v.kind)
	}

	return v.seq, nil
}

func (v RawValue) String() string {
	switch v.kind {
	case format.KindNull:
		return "null"
	case format.KindBool:
		return strconv.FormatBool(v.b)
	case format.KindInt:
		return v.i.String()
	case format.KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case format.KindDecimal:
		return v.d.String()
	case format.KindString:
		return strconv.Quote(v.text)
	case format.KindSymbol:
		return v.sym.String()
	case format.KindBlob, format.KindClob:
		return fmt.Sprintf("%s(%d bytes)", v.kind, len(v.lob))
	case format.KindList, format.KindSExp:
		return fmt.Sprintf("%s(%d bytes)", v.kind, v.seq.ByteLength())
	default:
		return "invalid"
	}
}

package lazy

import "strconv"

// RawSymbol is a symbol as it appears in the stream: either inline text or a
// numeric ID into a symbol table. IDs are never resolved here.
type RawSymbol struct {
	text    string
	id      uint64
	hasText bool
}

// SymbolText returns a symbol with inline text.
func SymbolText(text string) RawSymbol {
	return RawSymbol{text: text, hasText: true}
}

// SymbolID returns a symbol referring to a symbol table entry.
func SymbolID(id uint64) RawSymbol {
	return RawSymbol{id: id}
}

// HasText reports whether the symbol carries inline text.
func (s RawSymbol) HasText() bool {
	return s.hasText
}

// Text returns the inline text and whether the symbol has any.
func (s RawSymbol) Text() (string, bool) {
	return s.text, s.hasText
}

// ID returns the symbol ID and whether the symbol is an ID.
func (s RawSymbol) ID() (uint64, bool) {
	return s.id, !s.hasText
}

// Equal reports whether s and o are the same raw symbol.
func (s RawSymbol) Equal(o RawSymbol) bool {
	if s.hasText != o.hasText {
		return false
	}
	if s.hasText {
		return s.text == o.text
	}

	return s.id == o.id
}

func (s RawSymbol) String() string {
	if s.hasText {
		return "'" + s.text + "'"
	}

	return "$" + strconv.FormatUint(s.id, 10)
}

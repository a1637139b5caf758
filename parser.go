package prosecheck

// Parser consumes a character slice and produces a token vector. The plain
// English tokenizer, the Markdown/MDX/code parsers, and the IsolateEnglish
// and CollapseIdentifiers adapters all implement this one interface, so any
// of them can be passed to NewDocument interchangeably.
type Parser interface {
	Parse(source []rune) []Token
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(source []rune) []Token

func (f ParserFunc) Parse(source []rune) []Token { return f(source) }

// ParseStr is a convenience wrapper for callers holding a string rather than
// a pre-split rune slice.
func ParseStr(p Parser, s string) []Token {
	return p.Parse([]rune(s))
}

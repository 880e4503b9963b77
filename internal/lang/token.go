package lang

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindNumber    Kind = iota // 12, ff00ffff
	KindDot                   // .
	KindNull                  // _
	KindAll                   // *
	KindLink                  // &
	KindAny                   // ^
	KindEqual                 // =
	KindAbsorb                // @
	KindLabel                 // states, render
	KindDirection             // l r u d
	KindNewline
	KindSpace
	KindTab
	KindInvalid
	KindEOF
)

var kindNames = [...]string{
	KindNumber:    "Number",
	KindDot:       "Dot",
	KindNull:      "Null",
	KindAll:       "All",
	KindLink:      "Link",
	KindAny:       "Any",
	KindEqual:     "Equal",
	KindAbsorb:    "Absorb",
	KindLabel:     "Label",
	KindDirection: "Direction",
	KindNewline:   "Newline",
	KindSpace:     "Space",
	KindTab:       "Tab",
	KindInvalid:   "Invalid",
	KindEOF:       "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

const (
	keywordStates = "states"
	keywordRender = "render"
)

// Token is a lexical unit of a rule file.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	switch t.Kind {
	case KindNewline:
		return `\n`
	case KindTab:
		return `\t`
	case KindEOF:
		return "EOF"
	}
	return t.Lexeme
}

package lang

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// ScanError reports a character the scanner does not recognize.
type ScanError struct {
	Char rune
	Line int
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("InvalidCharacter %q at line %d", e.Char, e.Line)
}

// Scanner performs lexical analysis on rule source.
type Scanner struct {
	source  []byte
	cursor  int
	line    int
	pending bool
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan tokenizes the whole source. The result always ends with a single EOF
// token.
func Scan(source []byte) ([]Token, error) {
	s := NewScanner(source)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == KindEOF {
			return toks, nil
		}
	}
}

// Next returns the next token from the source.
func (s *Scanner) Next() (Token, error) {
	for {
		if s.cursor >= len(s.source) {
			return s.token(KindEOF, ""), nil
		}
		s.bumpLine()
		ch := s.source[s.cursor]
		switch ch {
		case '\r':
			s.cursor++
			continue
		case '#':
			s.skipComment()
			continue
		}
		break
	}

	ch := s.source[s.cursor]
	if kind, ok := singles[ch]; ok {
		s.cursor++
		if kind == KindNewline {
			tok := s.token(KindNewline, "\n")
			s.pending = true
			return tok, nil
		}
		return s.token(kind, string(ch)), nil
	}

	switch {
	case ch == 's':
		return s.scanKeyword(keywordStates)
	case ch == 'r':
		if s.peek() == 'e' {
			return s.scanKeyword(keywordRender)
		}
		s.cursor++
		return s.token(KindDirection, "r"), nil
	case ch == 'l' || ch == 'u':
		s.cursor++
		return s.token(KindDirection, string(ch)), nil
	case ch == 'd' && !isHexDigit(s.peek()):
		s.cursor++
		return s.token(KindDirection, "d"), nil
	case isHexDigit(ch):
		return s.scanNumber(), nil
	}
	return Token{}, s.invalid(s.cursor)
}

var singles = map[byte]Kind{
	'_':  KindNull,
	'.':  KindDot,
	'*':  KindAll,
	'^':  KindAny,
	'=':  KindEqual,
	'&':  KindLink,
	'@':  KindAbsorb,
	' ':  KindSpace,
	'\t': KindTab,
	'\n': KindNewline,
}

func (s *Scanner) token(kind Kind, lexeme string) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: s.line}
}

// bumpLine moves to the next line once a character after a newline is read,
// so the EOF of a file ending in a newline stays on the last line.
func (s *Scanner) bumpLine() {
	if s.pending {
		s.line++
		s.pending = false
	}
}

func (s *Scanner) skipComment() {
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.cursor++
	}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isHexDigit(s.source[s.cursor]) {
		s.cursor++
	}
	return s.token(KindNumber, string(s.source[start:s.cursor]))
}

func (s *Scanner) scanKeyword(kw string) (Token, error) {
	for i := 0; i < len(kw); i++ {
		pos := s.cursor + i
		if pos >= len(s.source) {
			return Token{}, s.invalid(s.cursor)
		}
		if s.source[pos] != kw[i] {
			return Token{}, s.invalid(pos)
		}
	}
	s.cursor += len(kw)
	return s.token(KindLabel, kw), nil
}

func (s *Scanner) invalid(pos int) error {
	r, _ := utf8.DecodeRune(s.source[pos:])
	return &ScanError{Char: r, Line: s.line}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isHexDigit(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// WriteTokens prints one token per line, the way `cellm tokens` shows them.
func WriteTokens(w io.Writer, toks []Token) {
	for i, tok := range toks {
		fmt.Fprintf(w, "%4d  line %-4d %-10s %s\n", i, tok.Line, tok.Kind, tok)
	}
}

package lang

import (
	"fmt"
	"strings"
)

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrNoStates        = newSyntaxError("a rule file must begin with 'states N'")
	synErrStateCount      = newSyntaxError("the state count must be at least 1")
	synErrUnexpectedKind  = newSyntaxError("unexpected token")
	synErrDecimal         = newSyntaxError("invalid decimal number")
	synErrDeadOwner       = newSyntaxError("rules for state 0 (dead state) are not permitted")
	synErrStateRange      = newSyntaxError("state is not declared by the states header")
	synErrNoNeighbor      = newSyntaxError("expecting a neighbor index or one of ^ = *")
	synErrNeighborIndex   = newSyntaxError("a neighbor index must be between 0 and 7")
	synErrAnyCount        = newSyntaxError("an any-neighbor count must be between 0 and 8")
	synErrNoOffspring     = newSyntaxError("expecting an offspring state or _")
	synErrNoMove          = newSyntaxError("invalid MOVE syntax")
	synErrTrailing        = newSyntaxError("unexpected token after the rules")
	synErrRenderSize      = newSyntaxError("invalid size parameter for render section")
	synErrRenderLine      = newSyntaxError("expecting a state color or a seed point")
	synErrColor           = newSyntaxError("invalid 32 bit color assignment")
	synErrSeedOutsideGrid = newSyntaxError("seed point lies outside the grid")
)

// ParseError locates a syntax error in the token stream. Prev, Cur and Next
// are the lexemes around the failure; BOF and EOF stand in at the edges.
type ParseError struct {
	Cause  *SyntaxError
	Detail string
	Index  int
	Line   int
	Prev   string
	Cur    string
	Next   string

	// Expected and Found are set when a specific token kind was required.
	Expected Kind
	Found    Kind
	Mismatch bool
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: %v", e.Line, e.Cause)
	if e.Mismatch {
		fmt.Fprintf(&b, ": expected %v, found %v", e.Expected, e.Found)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}
	fmt.Fprintf(&b, "\n... %-4s %-4s %-4s ...\n\t^ at token %d %s", e.Prev, e.Cur, e.Next, e.Index, e.Cur)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Cause }

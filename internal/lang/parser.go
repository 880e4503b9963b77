package lang

import (
	"fmt"
	"strconv"

	"cellm/internal/bio"
)

// Result is everything a rule file declares.
type Result struct {
	Rules  []bio.Rule
	Render bio.RenderRules
	States int
}

// Parse builds rules and render settings from a token stream. Space and Tab
// tokens are dropped before parsing.
func Parse(tokens []Token) (res *Result, retErr error) {
	p := newParser(tokens)
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		perr, ok := v.(*ParseError)
		if !ok {
			panic(v)
		}
		res = nil
		retErr = perr
	}()
	p.parseSystem()
	return &Result{Rules: p.rules, Render: p.render, States: p.states}, nil
}

// cursor walks a token slice. The slice always ends with EOF and the cursor
// never moves past it.
type cursor struct {
	toks []Token
	pos  int
}

func (c *cursor) cur() Token { return c.toks[c.pos] }

func (c *cursor) at(kind Kind) bool { return c.toks[c.pos].Kind == kind }

func (c *cursor) advance() {
	if c.pos < len(c.toks)-1 {
		c.pos++
	}
}

type parser struct {
	cursor
	rules  []bio.Rule
	render bio.RenderRules
	states int
}

func newParser(tokens []Token) *parser {
	toks := make([]Token, 0, len(tokens)+1)
	for _, t := range tokens {
		if t.Kind == KindSpace || t.Kind == KindTab {
			continue
		}
		toks = append(toks, t)
		if t.Kind == KindEOF {
			break
		}
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != KindEOF {
		line := 1
		if len(toks) > 0 {
			line = toks[len(toks)-1].Line
		}
		toks = append(toks, Token{Kind: KindEOF, Line: line})
	}
	return &parser{
		cursor: cursor{toks: toks},
		render: bio.NewRenderRules(),
	}
}

func (p *parser) parseSystem() {
	p.skipNewlines()
	if tok := p.cur(); tok.Kind != KindLabel || tok.Lexeme != keywordStates {
		p.raise(synErrNoStates, "")
	}
	p.advance()
	n, pos := p.decimal()
	if n < 1 {
		p.raiseAt(pos, synErrStateCount, "")
	}
	p.states = n
	p.endOfLine()

	for {
		switch p.cur().Kind {
		case KindNewline:
			p.advance()
			continue
		case KindNumber:
			p.rules = append(p.rules, p.parseRule())
			p.endOfLine()
			continue
		}
		break
	}

	if tok := p.cur(); tok.Kind == KindLabel && tok.Lexeme == keywordRender {
		p.advance()
		p.parseRender()
	}
	if !p.at(KindEOF) {
		p.raise(synErrTrailing, "")
	}
}

func (p *parser) parseRule() bio.Rule {
	r := bio.NewRule()

	owner, pos := p.decimal()
	if owner == 0 {
		p.raiseAt(pos, synErrDeadOwner, "")
	}
	p.checkState(owner, pos)
	r.Owner = owner

	p.parseNeighbors(&r)
	p.parseOffspring(&r)
	p.parseMove(&r)

	next, pos := p.decimal()
	p.checkState(next, pos)
	r.Next = next
	return r
}

func (p *parser) parseNeighbors(r *bio.Rule) {
	switch p.cur().Kind {
	case KindNumber:
		for {
			idx, pos := p.decimal()
			if idx > 7 {
				p.raiseAt(pos, synErrNeighborIndex, "")
			}
			r.Neighbors = append(r.Neighbors, idx)
			if !p.at(KindLink) {
				break
			}
			p.advance()
		}
	case KindAny, KindEqual:
		r.AnyNeighbor = true
		r.AnyExact = p.at(KindEqual)
		p.advance()
		if p.at(KindNumber) {
			count, pos := p.decimal()
			if count > 8 {
				p.raiseAt(pos, synErrAnyCount, "")
			}
			r.AnyCount = count
		}
	case KindAll:
		r.Neighbors = append([]int(nil), bio.AllNeighbors...)
		p.advance()
	default:
		p.raise(synErrNoNeighbor, "")
	}

	p.consume(KindDot)
	state, pos := p.decimal()
	p.checkState(state, pos)
	r.NeighborState = state
}

func (p *parser) parseOffspring(r *bio.Rule) {
	switch p.cur().Kind {
	case KindNull:
		r.Offspring = 0
		p.advance()
	case KindNumber:
		state, pos := p.decimal()
		p.checkState(state, pos)
		r.Offspring = state
	default:
		p.raise(synErrNoOffspring, "")
	}
}

func (p *parser) parseMove(r *bio.Rule) {
	tok := p.cur()
	switch tok.Kind {
	case KindDirection:
		r.Move = bio.ConstMove(bio.Direction(tok.Lexeme[0]))
	case KindAny:
		r.Move = bio.RandomMove()
	case KindNull:
		r.Move = bio.ConstMove(bio.DirStay)
	case KindAbsorb:
		r.Move = bio.ConstMove(bio.DirAbsorb)
	default:
		p.raise(synErrNoMove, "")
	}
	p.advance()
}

func (p *parser) parseRender() {
	p.skipNewlines()
	sizes := [3]int{}
	for i := range sizes {
		v, pos := p.decimalWith(synErrRenderSize)
		if v <= 0 {
			p.raiseAt(pos, synErrRenderSize, "")
		}
		sizes[i] = v
	}
	p.render.CellSize = sizes[0]
	p.render.GridWidth = sizes[1]
	p.render.GridHeight = sizes[2]
	p.endOfLine()

	for {
		switch p.cur().Kind {
		case KindNewline:
			p.advance()
		case KindEOF:
			return
		case KindAbsorb:
			p.advance()
			p.parseSeed()
		case KindNumber:
			state, pos := p.decimal()
			p.checkState(state, pos)
			p.render.SetColor(state, p.color(state))
		default:
			p.raise(synErrRenderLine, "")
		}
	}
}

func (p *parser) parseSeed() {
	x, xpos := p.decimal()
	y, _ := p.decimal()
	state, spos := p.decimal()
	if x >= p.render.GridWidth || y >= p.render.GridHeight {
		p.raiseAt(xpos, synErrSeedOutsideGrid, fmt.Sprintf("(%d, %d) on a %dx%d grid", x, y, p.render.GridWidth, p.render.GridHeight))
	}
	p.checkState(state, spos)
	p.render.AddStatePoint(bio.StatePoint{X: x, Y: y, State: state})
}

func (p *parser) color(state int) uint32 {
	pos := p.pos
	tok := p.consume(KindNumber)
	c, err := strconv.ParseUint(tok.Lexeme, 16, 32)
	if err != nil {
		p.raiseAt(pos, synErrColor, fmt.Sprintf("state %d", state))
	}
	return uint32(c)
}

func (p *parser) decimal() (int, int) {
	return p.decimalWith(synErrDecimal)
}

func (p *parser) decimalWith(cause *SyntaxError) (int, int) {
	pos := p.pos
	if cause != synErrDecimal && !p.at(KindNumber) {
		p.raise(cause, "")
	}
	tok := p.consume(KindNumber)
	v, err := strconv.Atoi(tok.Lexeme)
	if err != nil || v < 0 {
		p.raiseAt(pos, cause, tok.Lexeme)
	}
	return v, pos
}

func (p *parser) checkState(state, pos int) {
	if state >= p.states {
		p.raiseAt(pos, synErrStateRange, fmt.Sprintf("state %d with 'states %d'", state, p.states))
	}
}

func (p *parser) endOfLine() {
	if p.at(KindEOF) {
		return
	}
	p.consume(KindNewline)
}

func (p *parser) skipNewlines() {
	for p.at(KindNewline) {
		p.advance()
	}
}

func (p *parser) consume(expected Kind) Token {
	tok := p.cur()
	if tok.Kind == expected {
		p.advance()
		return tok
	}
	err := p.errorAt(p.pos, synErrUnexpectedKind, "")
	err.Expected = expected
	err.Found = tok.Kind
	err.Mismatch = true
	panic(err)
}

func (p *parser) raise(cause *SyntaxError, detail string) {
	p.raiseAt(p.pos, cause, detail)
}

func (p *parser) raiseAt(pos int, cause *SyntaxError, detail string) {
	panic(p.errorAt(pos, cause, detail))
}

func (p *parser) errorAt(pos int, cause *SyntaxError, detail string) *ParseError {
	prev := "BOF"
	if pos > 0 {
		prev = p.toks[pos-1].String()
	}
	next := "EOF"
	if pos < len(p.toks)-1 {
		next = p.toks[pos+1].String()
	}
	tok := p.toks[pos]
	return &ParseError{
		Cause:  cause,
		Detail: detail,
		Index:  pos,
		Line:   tok.Line,
		Prev:   prev,
		Cur:    tok.String(),
		Next:   next,
	}
}

package lang

import (
	"fmt"

	"cellm/internal/bio"
)

// Program is a compiled rule file ready for the engine.
type Program struct {
	Tokens []Token
	Rules  *bio.RuleSet
	Render bio.RenderRules
	States int
}

// Compile scans, parses and groups a rule file.
func Compile(src []byte) (*Program, error) {
	toks, err := Scan(src)
	if err != nil {
		return nil, err
	}
	res, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	rs, err := bio.Build(res.Rules, res.States)
	if err != nil {
		return nil, fmt.Errorf("cannot build the rule set: %w", err)
	}
	return &Program{
		Tokens: toks,
		Rules:  rs,
		Render: res.Render,
		States: res.States,
	}, nil
}

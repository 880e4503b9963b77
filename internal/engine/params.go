package engine

import (
	"fmt"
	"strconv"

	"cellm/internal/core"
)

// Parameters reports the grid, rule and population figures shown on the HUD.
func (p *Processor) Parameters() core.ParameterSnapshot {
	size := p.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.IntParam("cell_size", "Cell size", p.render.CellSize),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.IntParam("states", "States", p.rules.States()),
				core.IntParam("rules", "Rules", p.rules.Len()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", p.generation),
				core.IntParam("population", "Population", p.Population()),
				core.IntParam("fired", "Rules fired", p.fired),
			},
		},
	}

	counts := p.Counts()
	pop := core.ParameterGroup{Name: "Population"}
	for s := 1; s < p.rules.States(); s++ {
		pop.Params = append(pop.Params, core.Parameter{
			Key:   "state_" + strconv.Itoa(s),
			Label: fmt.Sprintf("State %d", s),
			Type:  core.ParamTypeInt,
			Value: strconv.Itoa(counts[s]),
		})
	}
	if len(pop.Params) > 0 {
		groups = append(groups, pop)
	}
	return core.ParameterSnapshot{Groups: groups}
}

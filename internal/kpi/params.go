// Package kpi computes the mode's key performance indicators from the
// normalized parameter space, with full computation traces and strict null
// propagation for missing inputs.
package kpi

import (
	"sort"

	"github.com/edassess/evalengine/internal/types"
)

// Params is the flattened parameter space: every normalized field of every
// non-invalid block, keyed by canonical name. When two blocks supply the same
// parameter the larger value wins, which keeps the result independent of
// block iteration order.
type Params struct {
	values  map[string]float64
	aliases map[string][]string
}

// CollectParams builds the parameter space for a submission. Invalid blocks
// are excluded entirely; their numbers are untrustworthy by definition.
func CollectParams(blocks map[types.BlockType]*types.Block, aliases map[string][]string) *Params {
	p := &Params{values: make(map[string]float64), aliases: aliases}
	for _, bt := range sortedBlockTypes(blocks) {
		block := blocks[bt]
		if block.Status == types.StatusInvalid {
			continue
		}
		for name, v := range block.NormalizedFields {
			if existing, ok := p.values[name]; !ok || v > existing {
				p.values[name] = v
			}
		}
	}
	return p
}

// Get resolves a parameter by canonical name, falling back to the configured
// alias list in order.
func (p *Params) Get(name string) (float64, bool) {
	if v, ok := p.values[name]; ok {
		return v, true
	}
	for _, alias := range p.aliases[name] {
		if v, ok := p.values[alias]; ok {
			return v, true
		}
	}
	return 0, false
}

func sortedBlockTypes(blocks map[types.BlockType]*types.Block) []types.BlockType {
	keys := make([]types.BlockType, 0, len(blocks))
	for bt := range blocks {
		keys = append(keys, bt)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

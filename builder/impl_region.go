// SPDX-License-Identifier: MIT
// Package: happygraph/builder
//
// impl_region.go - same-region clique policy.
//
// Contract:
//   • Every unordered pair {i,j}, i<j, of nodes sharing a Region string gets
//     one KindRegion edge.
//   • Regions are processed in ascending name order, pairs in (i,j) order.
//
// Complexity:
//   • Time: Σ O(size(r)²) over regions. Space: O(V) for the groups.

package builder

import (
	"sort"

	"github.com/katalvlaran/happygraph/core"
)

const methodRegionCliques = "RegionCliques"

// RegionCliques returns a Constructor that fully connects each region group.
func RegionCliques() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		groups := make(map[string][]core.NodeIndex)
		for _, n := range g.Nodes() {
			groups[n.Record.Region] = append(groups[n.Record.Region], n.Index)
		}

		regions := make([]string, 0, len(groups))
		for r := range groups {
			regions = append(regions, r)
		}
		sort.Strings(regions)

		for _, r := range regions {
			members := groups[r]
			for a := 0; a < len(members); a++ {
				for b := a + 1; b < len(members); b++ {
					if err := addPolicyEdge(g, cfg, methodRegionCliques, members[a], members[b], core.KindRegion); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

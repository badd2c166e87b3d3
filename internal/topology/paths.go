package topology

import "strings"

// tracePaths enumerates every acyclic input-to-output signal path by
// walking backwards from each output terminal.
func tracePaths(graph *Graph) []*Path {
	var paths []*Path

	for _, out := range graph.OutputTerminals {
		for _, ids := range traceBack(graph, out.ID, nil, map[int]bool{}) {
			nodes := make([]*Node, 0, len(ids))
			for _, id := range ids {
				if n, ok := graph.Nodes[id]; ok {
					nodes = append(nodes, n)
				}
			}
			if len(nodes) == 0 {
				continue
			}
			p := &Path{Nodes: nodes}
			p.Description = describePath(p)
			paths = append(paths, p)
		}
	}

	return paths
}

// traceBack returns every path of node IDs, ordered input terminal first,
// that ends at the given node. onPath holds the nodes of the path under
// construction: revisiting one of them would be a cycle, so that branch
// contributes nothing. A non-input node without sources is a dead end.
func traceBack(graph *Graph, id int, tail []int, onPath map[int]bool) [][]int {
	if onPath[id] {
		return nil
	}
	node, ok := graph.Nodes[id]
	if !ok {
		return nil
	}

	path := append([]int{id}, tail...)

	if node.Kind == KindInputTerminal {
		return [][]int{path}
	}

	sources := graph.Sources(id)
	if len(sources) == 0 {
		return nil
	}

	onPath[id] = true
	defer delete(onPath, id)

	var all [][]int
	for _, src := range sources {
		all = append(all, traceBack(graph, src.ID, path, onPath)...)
	}
	return all
}

// describePath renders a short "Microphone -> Feature (Mute, Volume) ->
// USB Streaming" style summary of a path.
func describePath(p *Path) string {
	parts := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		switch n.Kind {
		case KindInputTerminal, KindOutputTerminal, KindProcessingUnit:
			parts = append(parts, n.Label)
		case KindFeatureUnit:
			if len(n.Controls) > 0 {
				parts = append(parts, "Feature ("+strings.Join(n.Controls, ", ")+")")
			} else {
				parts = append(parts, "Feature")
			}
		case KindMixerUnit:
			parts = append(parts, "Mixer")
		case KindSelectorUnit:
			parts = append(parts, "Selector")
		case KindExtensionUnit:
			parts = append(parts, "Extension")
		}
	}
	return strings.Join(parts, " -> ")
}

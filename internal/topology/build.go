package topology

import (
	"context"
	"fmt"

	"github.com/vk/uacscan/internal/ctxlog"
	"github.com/vk/uacscan/internal/model"
)

// Build constructs the topology graph for the device's active
// configuration. Building never fails: a device without an AudioControl
// interface yields an empty graph, and dangling source references simply
// produce no edge.
func Build(ctx context.Context, dev *model.Device) *Graph {
	logger := ctxlog.FromContext(ctx)
	graph := &Graph{Nodes: make(map[int]*Node)}

	ac := dev.AudioControl()
	if ac == nil {
		logger.Debug("topology: no AudioControl interface, returning empty graph.")
		return graph
	}

	// First pass: one node per entity.
	addTerminalNodes(graph, ac)
	addUnitNodes(graph, ac)
	addClockNodes(graph, ac)
	logger.Debug("topology: node creation complete.", "node_count", len(graph.Nodes))

	// Second pass: one edge per resolvable source reference.
	buildEdges(graph, ac)
	logger.Debug("topology: edge creation complete.", "edge_count", len(graph.Edges))

	// Final pass: enumerate the signal paths.
	graph.Paths = tracePaths(graph)
	logger.Debug("topology: path tracing complete.", "path_count", len(graph.Paths))

	return graph
}

func addTerminalNodes(graph *Graph, ac *model.AudioControlInterface) {
	for _, t := range ac.InputTerminals {
		name := t.Name
		if name == "" {
			name = t.TypeName()
		}
		node := &Node{
			ID:           t.TerminalID,
			Kind:         KindInputTerminal,
			Name:         name,
			Label:        t.TypeName(),
			Channels:     t.NrChannels,
			USBStreaming: t.IsUSBStreaming(),
		}
		graph.Nodes[t.TerminalID] = node
		graph.InputTerminals = append(graph.InputTerminals, node)
		if node.USBStreaming {
			// Host-to-device stream, the playback entry point.
			graph.USBInputs = append(graph.USBInputs, node)
		}
	}

	for _, t := range ac.OutputTerminals {
		name := t.Name
		if name == "" {
			name = t.TypeName()
		}
		node := &Node{
			ID:    t.TerminalID,
			Kind:  KindOutputTerminal,
			Name:  name,
			Label: t.TypeName(),
			// Output terminal descriptors carry no channel count of their
			// own; it stays zero rather than being inferred from the source.
			Channels:     0,
			USBStreaming: t.IsUSBStreaming(),
		}
		graph.Nodes[t.TerminalID] = node
		graph.OutputTerminals = append(graph.OutputTerminals, node)
		if node.USBStreaming {
			// Device-to-host stream, the capture exit point.
			graph.USBOutputs = append(graph.USBOutputs, node)
		}
	}
}

var processTypeNames = map[int]string{
	0x00: "Undefined",
	0x01: "Up/Downmix",
	0x02: "Dolby Prologic",
	0x03: "Stereo Extender",
}

func addUnitNodes(graph *Graph, ac *model.AudioControlInterface) {
	addUnit := func(node *Node) {
		graph.Nodes[node.ID] = node
		graph.Units = append(graph.Units, node)
	}

	for _, u := range ac.FeatureUnits {
		name := u.Name
		if name == "" {
			name = fmt.Sprintf("Feature Unit %d", u.UnitID)
		}
		addUnit(&Node{
			ID:       u.UnitID,
			Kind:     KindFeatureUnit,
			Name:     name,
			Label:    "Feature Unit",
			Channels: u.NrChannels,
			Controls: u.ControlNames(),
		})
	}

	for _, u := range ac.MixerUnits {
		name := u.Name
		if name == "" {
			name = fmt.Sprintf("Mixer Unit %d", u.UnitID)
		}
		addUnit(&Node{
			ID:       u.UnitID,
			Kind:     KindMixerUnit,
			Name:     name,
			Label:    fmt.Sprintf("Mixer (%d inputs)", u.NrInPins),
			Channels: u.NrChannels,
		})
	}

	for _, u := range ac.SelectorUnits {
		name := u.Name
		if name == "" {
			name = fmt.Sprintf("Selector Unit %d", u.UnitID)
		}
		addUnit(&Node{
			ID:    u.UnitID,
			Kind:  KindSelectorUnit,
			Name:  name,
			Label: fmt.Sprintf("Selector (%d inputs)", u.NrInPins),
		})
	}

	for _, u := range ac.ProcessingUnits {
		label, ok := processTypeNames[u.ProcessType]
		if !ok {
			label = fmt.Sprintf("Process 0x%02X", u.ProcessType)
		}
		name := u.Name
		if name == "" {
			name = fmt.Sprintf("Processing Unit %d", u.UnitID)
		}
		addUnit(&Node{
			ID:       u.UnitID,
			Kind:     KindProcessingUnit,
			Name:     name,
			Label:    label,
			Channels: u.NrChannels,
		})
	}

	for _, u := range ac.ExtensionUnits {
		name := u.Name
		if name == "" {
			name = fmt.Sprintf("Extension Unit %d", u.UnitID)
		}
		addUnit(&Node{
			ID:       u.UnitID,
			Kind:     KindExtensionUnit,
			Name:     name,
			Label:    fmt.Sprintf("Extension (0x%04X)", u.ExtensionCode),
			Channels: u.NrChannels,
		})
	}
}

func addClockNodes(graph *Graph, ac *model.AudioControlInterface) {
	addClock := func(node *Node) {
		graph.Nodes[node.ID] = node
		graph.ClockEntities = append(graph.ClockEntities, node)
	}

	for _, c := range ac.ClockSources {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Clock Source %d", c.ClockID)
		}
		addClock(&Node{
			ID:    c.ClockID,
			Kind:  KindClockSource,
			Name:  name,
			Label: c.ClockType(),
		})
	}

	for _, c := range ac.ClockSelectors {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Clock Selector %d", c.ClockID)
		}
		addClock(&Node{
			ID:    c.ClockID,
			Kind:  KindClockSelector,
			Name:  name,
			Label: fmt.Sprintf("Clock Selector (%d inputs)", c.NrInPins),
		})
	}

	for _, c := range ac.ClockMultipliers {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Clock Multiplier %d", c.ClockID)
		}
		addClock(&Node{
			ID:    c.ClockID,
			Kind:  KindClockMultiplier,
			Name:  name,
			Label: "Clock Multiplier",
		})
	}
}

// buildEdges creates one edge per source reference that resolves to a
// known node. Unresolvable references are dropped without error.
func buildEdges(graph *Graph, ac *model.AudioControlInterface) {
	addEdge := func(source, target int, clock bool) {
		if source == 0 {
			return
		}
		src, ok := graph.Nodes[source]
		if !ok {
			return
		}
		if _, ok := graph.Nodes[target]; !ok {
			return
		}
		channels := 0
		if !clock {
			channels = src.Channels
		}
		graph.Edges = append(graph.Edges, Edge{
			Source:   source,
			Target:   target,
			Channels: channels,
			Clock:    clock,
		})
	}

	for _, t := range ac.OutputTerminals {
		addEdge(t.SourceID, t.TerminalID, false)
	}
	for _, u := range ac.FeatureUnits {
		addEdge(u.SourceID, u.UnitID, false)
	}
	for _, u := range ac.MixerUnits {
		for _, src := range u.SourceIDs {
			addEdge(src, u.UnitID, false)
		}
	}
	for _, u := range ac.SelectorUnits {
		for _, src := range u.SourceIDs {
			addEdge(src, u.UnitID, false)
		}
	}
	for _, u := range ac.ProcessingUnits {
		for _, src := range u.SourceIDs {
			addEdge(src, u.UnitID, false)
		}
	}
	for _, u := range ac.ExtensionUnits {
		for _, src := range u.SourceIDs {
			addEdge(src, u.UnitID, false)
		}
	}
	for _, t := range ac.InputTerminals {
		addEdge(t.ClockSourceID, t.TerminalID, true)
	}
	for _, t := range ac.OutputTerminals {
		addEdge(t.ClockSourceID, t.TerminalID, true)
	}
	for _, c := range ac.ClockSelectors {
		for _, pin := range c.ClockPinIDs {
			addEdge(pin, c.ClockID, true)
		}
	}
	for _, c := range ac.ClockMultipliers {
		addEdge(c.ClockSourceID, c.ClockID, true)
	}
}

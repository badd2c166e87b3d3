package topology

// NodeKind discriminates what a graph node represents. Consumers switch on
// the kind rather than on the underlying entity type.
type NodeKind string

const (
	KindInputTerminal   NodeKind = "input_terminal"
	KindOutputTerminal  NodeKind = "output_terminal"
	KindFeatureUnit     NodeKind = "feature_unit"
	KindMixerUnit       NodeKind = "mixer_unit"
	KindSelectorUnit    NodeKind = "selector_unit"
	KindProcessingUnit  NodeKind = "processing_unit"
	KindExtensionUnit   NodeKind = "extension_unit"
	KindClockSource     NodeKind = "clock_source"
	KindClockSelector   NodeKind = "clock_selector"
	KindClockMultiplier NodeKind = "clock_multiplier"
)

// IsTerminal reports whether the kind is an input or output terminal.
func (k NodeKind) IsTerminal() bool {
	return k == KindInputTerminal || k == KindOutputTerminal
}

// IsClock reports whether the kind is a clock entity.
func (k NodeKind) IsClock() bool {
	return k == KindClockSource || k == KindClockSelector || k == KindClockMultiplier
}

// Node is one vertex of the topology graph. It carries the denormalized
// data the renderer needs, so consumers never have to reach back into the
// entity model.
type Node struct {
	ID   int
	Kind NodeKind

	// Name is the entity's string descriptor, falling back to a generated
	// label. Label describes the entity kind (terminal type name, process
	// type, pin count).
	Name  string
	Label string

	Channels     int
	USBStreaming bool
	// Controls holds the master-channel control names of a feature unit.
	Controls []string
}

// Edge is a directed connection in signal flow direction: Source feeds
// Target. Clock edges belong to the sample-clock tree and never carry
// audio.
type Edge struct {
	Source   int
	Target   int
	Channels int
	Clock    bool
}

// Path is one complete signal path, ordered from input terminal to output
// terminal.
type Path struct {
	Nodes       []*Node
	Description string
}

// Input returns the path's input terminal node.
func (p *Path) Input() *Node {
	if len(p.Nodes) == 0 {
		return nil
	}
	return p.Nodes[0]
}

// Output returns the path's output terminal node.
func (p *Path) Output() *Node {
	if len(p.Nodes) == 0 {
		return nil
	}
	return p.Nodes[len(p.Nodes)-1]
}

// IsPlayback reports whether the path originates at a USB streaming input
// terminal, i.e. carries audio from the host into the device.
func (p *Path) IsPlayback() bool {
	in := p.Input()
	return in != nil && in.USBStreaming
}

// IsCapture reports whether the path terminates at a USB streaming output
// terminal, i.e. carries audio from the device to the host.
func (p *Path) IsCapture() bool {
	out := p.Output()
	return out != nil && out.USBStreaming
}

// Graph is the complete topology of one AudioControl interface. It is
// immutable once returned by Build.
type Graph struct {
	Nodes map[int]*Node
	Edges []Edge
	Paths []*Path

	// Categorized node views, in descriptor order.
	InputTerminals  []*Node
	OutputTerminals []*Node
	Units           []*Node
	ClockEntities   []*Node

	// USB streaming terminals by direction: USBInputs receive host audio
	// (playback), USBOutputs deliver audio to the host (capture).
	USBInputs  []*Node
	USBOutputs []*Node
}

// Node returns the node with the given entity ID, or nil.
func (g *Graph) Node(id int) *Node {
	return g.Nodes[id]
}

// Sources returns the nodes feeding the given node over non-clock edges.
func (g *Graph) Sources(id int) []*Node {
	var nodes []*Node
	for _, e := range g.Edges {
		if e.Target == id && !e.Clock {
			if n, ok := g.Nodes[e.Source]; ok {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

// Targets returns the nodes the given node feeds over non-clock edges.
func (g *Graph) Targets(id int) []*Node {
	var nodes []*Node
	for _, e := range g.Edges {
		if e.Source == id && !e.Clock {
			if n, ok := g.Nodes[e.Target]; ok {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

// PlaybackPaths returns the paths originating at USB streaming input
// terminals.
func (g *Graph) PlaybackPaths() []*Path {
	var paths []*Path
	for _, p := range g.Paths {
		if p.IsPlayback() {
			paths = append(paths, p)
		}
	}
	return paths
}

// CapturePaths returns the paths terminating at USB streaming output
// terminals.
func (g *Graph) CapturePaths() []*Path {
	var paths []*Path
	for _, p := range g.Paths {
		if p.IsCapture() {
			paths = append(paths, p)
		}
	}
	return paths
}

// InternalPaths returns the paths touching no USB streaming terminal on
// either end, typically hardware monitoring routes.
func (g *Graph) InternalPaths() []*Path {
	var paths []*Path
	for _, p := range g.Paths {
		if !p.IsPlayback() && !p.IsCapture() {
			paths = append(paths, p)
		}
	}
	return paths
}

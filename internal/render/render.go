// Package render turns the parsed device, its topology graph and its
// bandwidth analysis into human-readable ASCII reports.
package render

import (
	"fmt"
	"strings"

	"github.com/vk/uacscan/internal/bandwidth"
	"github.com/vk/uacscan/internal/model"
	"github.com/vk/uacscan/internal/topology"
)

// Renderer writes reports at a fixed rule width.
type Renderer struct {
	width int
}

// New returns a renderer. A non-positive width falls back to 80 columns.
func New(width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{width: width}
}

// Summary renders the device identity block.
func (r *Renderer) Summary(dev *model.Device) string {
	var b strings.Builder
	rule := strings.Repeat("=", r.width)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "USB AUDIO DEVICE")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Device:        %s\n", dev.Name())
	fmt.Fprintf(&b, "Manufacturer:  %s\n", dev.ManufacturerName())
	fmt.Fprintf(&b, "IDs:           %04X:%04X\n", dev.Descriptor.VendorID, dev.Descriptor.ProductID)
	if dev.Descriptor.SerialNumber != "" {
		fmt.Fprintf(&b, "Serial:        %s\n", dev.Descriptor.SerialNumber)
	}
	if dev.Descriptor.USBVersion != "" {
		fmt.Fprintf(&b, "USB Version:   %s\n", dev.Descriptor.USBVersion)
	}
	fmt.Fprintf(&b, "UAC Version:   %s\n", dev.Version())
	if n := len(dev.Configurations); n > 1 {
		fmt.Fprintf(&b, "Configurations: %d retained", n)
		var versions []string
		for _, c := range dev.Configurations {
			versions = append(versions, string(c.Version))
		}
		fmt.Fprintf(&b, " (UAC %s)\n", strings.Join(versions, ", "))
	}
	if c := dev.Active(); c != nil && c.Descriptor.MaxPowerMA > 0 {
		fmt.Fprintf(&b, "Max Power:     %dmA\n", c.Descriptor.MaxPowerMA)
	}

	return b.String()
}

// Topology renders the signal paths and clock entities of a graph.
func (r *Renderer) Topology(graph *topology.Graph) string {
	var b strings.Builder
	rule := strings.Repeat("=", r.width)
	thin := strings.Repeat("-", r.width/2)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "AUDIO TOPOLOGY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	playback := graph.PlaybackPaths()
	capture := graph.CapturePaths()

	if len(playback) > 0 {
		fmt.Fprintln(&b, "PLAYBACK PATHS (Host -> Device)")
		fmt.Fprintln(&b, thin)
		writePaths(&b, playback)
	}
	if len(capture) > 0 {
		fmt.Fprintln(&b, "CAPTURE PATHS (Device -> Host)")
		fmt.Fprintln(&b, thin)
		writePaths(&b, capture)
	}
	if internal := graph.InternalPaths(); len(internal) > 0 {
		fmt.Fprintln(&b, "INTERNAL PATHS")
		fmt.Fprintln(&b, thin)
		writePaths(&b, internal)
	}

	if len(graph.ClockEntities) > 0 {
		fmt.Fprintln(&b, "CLOCK TOPOLOGY")
		fmt.Fprintln(&b, thin)
		for _, clock := range graph.ClockEntities {
			fmt.Fprintf(&b, "  [%d] %s (%s)\n", clock.ID, clock.Name, clock.Label)
		}
		fmt.Fprintln(&b)
	}

	if len(playback) == 0 && len(capture) == 0 {
		fmt.Fprintln(&b, "ENTITIES")
		fmt.Fprintln(&b, thin)
		for _, n := range graph.InputTerminals {
			fmt.Fprintf(&b, "  [%d] in:  %s\n", n.ID, n.Name)
		}
		for _, n := range graph.OutputTerminals {
			fmt.Fprintf(&b, "  [%d] out: %s\n", n.ID, n.Name)
		}
		for _, n := range graph.Units {
			fmt.Fprintf(&b, "  [%d] unit: %s\n", n.ID, n.Name)
		}
	}

	return b.String()
}

func writePaths(b *strings.Builder, paths []*topology.Path) {
	for i, p := range paths {
		fmt.Fprintf(b, "Path %d:\n", i+1)
		boxes := make([]string, len(p.Nodes))
		for j, n := range p.Nodes {
			box := fmt.Sprintf("[%d: %s", n.ID, n.Name)
			if n.Channels > 0 {
				box += fmt.Sprintf(", %dch", n.Channels)
			}
			boxes[j] = box + "]"
		}
		fmt.Fprintf(b, "  %s\n", strings.Join(boxes, " --> "))
		if p.Description != "" {
			fmt.Fprintf(b, "  (%s)\n", p.Description)
		}
		fmt.Fprintln(b)
	}
}

// Report renders the complete analysis: summary, topology and bandwidth.
func (r *Renderer) Report(dev *model.Device, graph *topology.Graph, analysis *bandwidth.Analysis) string {
	var b strings.Builder
	b.WriteString(r.Summary(dev))
	b.WriteString("\n")
	b.WriteString(r.Topology(graph))
	b.WriteString("\n")
	b.WriteString(analysis.Table())
	return b.String()
}

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/uacscan/internal/bandwidth"
	"github.com/vk/uacscan/internal/ctxlog"
	"github.com/vk/uacscan/internal/lsusb"
	"github.com/vk/uacscan/internal/model"
	"github.com/vk/uacscan/internal/render"
	"github.com/vk/uacscan/internal/topology"
)

// Run executes the main application logic: read the dumps, parse each one,
// derive its topology and write the requested report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	inputs, err := a.readInputs(ctx)
	if err != nil {
		return err
	}

	for i, in := range inputs {
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(a.outW)
			}
			fmt.Fprintf(a.outW, "### %s\n\n", in.Name)
		}
		if err := a.analyze(ctx, in); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// analyze runs the full pipeline for one dump and writes its report.
func (a *App) analyze(ctx context.Context, in input) error {
	dev, err := lsusb.Parse(ctx, in.Text)
	if err != nil {
		return fmt.Errorf("failed to parse lsusb dump %s: %w", in.Name, err)
	}

	if a.config.UACVersion != "" {
		if err := dev.SelectVersion(model.UACVersion(a.config.UACVersion)); err != nil {
			return err
		}
		a.logger.Debug("Configuration selected by UAC version.", "version", a.config.UACVersion)
	}

	graph := topology.Build(ctx, dev)
	analysis := bandwidth.Analyze(ctx, dev)

	report, err := a.renderReport(dev, graph, analysis)
	if err != nil {
		return err
	}
	fmt.Fprint(a.outW, report)
	return nil
}

// renderReport assembles the output for the configured format, honoring the
// report config's width and, for the "report" format, its section list.
func (a *App) renderReport(dev *model.Device, graph *topology.Graph, analysis *bandwidth.Analysis) (string, error) {
	r := render.New(a.reportCfg.Width)
	switch a.config.Format {
	case "full", "":
		return r.Report(dev, graph, analysis), nil
	case "summary":
		return r.Summary(dev), nil
	case "topology":
		return r.Topology(graph), nil
	case "bandwidth":
		return analysis.Table(), nil
	case "report":
		var b strings.Builder
		if a.reportCfg.HasSection("summary") {
			b.WriteString(r.Summary(dev))
			b.WriteString("\n")
		}
		if a.reportCfg.HasSection("topology") {
			b.WriteString(r.Topology(graph))
			b.WriteString("\n")
		}
		if a.reportCfg.HasSection("bandwidth") {
			b.WriteString(analysis.Table())
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("unknown output format %q", a.config.Format)
}

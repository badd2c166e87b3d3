// Package reportcfg loads the optional HCL report configuration file. The
// file tunes the output side of the tool only; parsing and topology
// analysis never depend on it.
//
// A report config looks like:
//
//	report {
//	  format   = "report"
//	  width    = 100
//	  sections = ["summary", "topology", "bandwidth"]
//	  options = {
//	    show_clocks = true
//	  }
//	}
package reportcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/uacscan/internal/ctxlog"
)

// Formats accepted in the `format` attribute and the -format flag.
var ValidFormats = []string{"full", "topology", "report", "bandwidth", "summary"}

// Config is the decoded report configuration.
type Config struct {
	Format   string
	Width    int
	Sections []string

	// options holds the free-form `options` object; values are looked up
	// lazily so new renderer options need no schema change here.
	options cty.Value
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Format: "full", Width: 80, options: cty.NilVal}
}

type reportFile struct {
	Report *reportBlock `hcl:"report,block"`
}

type reportBlock struct {
	Format   string    `hcl:"format,optional"`
	Width    int       `hcl:"width,optional"`
	Sections []string  `hcl:"sections,optional"`
	Options  cty.Value `hcl:"options,optional"`
}

// Load parses and validates one report configuration file.
func Load(ctx context.Context, path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse report config %s: %w", path, diags)
	}

	var parsed reportFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode report config %s: %w", path, diags)
	}

	cfg := Default()
	if parsed.Report != nil {
		if parsed.Report.Format != "" {
			if !validFormat(parsed.Report.Format) {
				return nil, fmt.Errorf("report config %s: unknown format %q", path, parsed.Report.Format)
			}
			cfg.Format = parsed.Report.Format
		}
		if parsed.Report.Width > 0 {
			cfg.Width = parsed.Report.Width
		}
		cfg.Sections = parsed.Report.Sections
		cfg.options = parsed.Report.Options
	}

	ctxlog.FromContext(ctx).Debug("report config loaded.",
		"path", path,
		"format", cfg.Format,
		"width", cfg.Width,
	)
	return cfg, nil
}

func validFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// HasSection reports whether a section is enabled. An absent sections list
// enables everything.
func (c *Config) HasSection(name string) bool {
	if len(c.Sections) == 0 {
		return true
	}
	for _, s := range c.Sections {
		if s == name {
			return true
		}
	}
	return false
}

// BoolOption returns a boolean entry from the options object, or the
// default when the object or the entry is missing or not a boolean.
func (c *Config) BoolOption(name string, def bool) bool {
	v := c.optionValue(name)
	if v == cty.NilVal || !v.Type().Equals(cty.Bool) || v.IsNull() {
		return def
	}
	return v.True()
}

// StringOption returns a string entry from the options object, or the
// default when missing or not a string.
func (c *Config) StringOption(name string, def string) string {
	v := c.optionValue(name)
	if v == cty.NilVal || !v.Type().Equals(cty.String) || v.IsNull() {
		return def
	}
	return v.AsString()
}

func (c *Config) optionValue(name string) cty.Value {
	if c.options == cty.NilVal || c.options.IsNull() {
		return cty.NilVal
	}
	t := c.options.Type()
	if !t.IsObjectType() && !t.IsMapType() {
		return cty.NilVal
	}
	if t.IsObjectType() && !t.HasAttribute(name) {
		return cty.NilVal
	}
	if t.IsMapType() {
		if !c.options.HasIndex(cty.StringVal(name)).True() {
			return cty.NilVal
		}
		return c.options.Index(cty.StringVal(name))
	}
	return c.options.GetAttr(name)
}

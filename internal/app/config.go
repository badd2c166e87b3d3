package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath        string // lsusb -v dump; "" or "-" reads stdin
	Format           string // full, topology, report, bandwidth or summary
	UACVersion       string // "", "1.0", "2.0" or "3.0"
	ReportConfigPath string // optional HCL report configuration

	LogFormat string
	LogLevel  string
	Quiet     bool
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.UACVersion {
	case "", "1.0", "2.0", "3.0":
	default:
		return nil, fmt.Errorf("invalid UAC version %q: must be '1.0', '2.0' or '3.0'", cfg.UACVersion)
	}

	return &cfg, nil
}

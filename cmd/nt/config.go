package main

import "github.com/spf13/pflag"

// Flags holds CLI flag names, letting embedders of this package override
// them without touching [Config]'s field layout.
type Flags struct {
	Indent    string
	SortKeys  string
	OnDup     string
	LogLevel  string
	LogFormat string
}

// Config holds CLI flag values shared by the nt subcommands.
type Config struct {
	Flags     Flags
	Indent    int
	SortKeys  bool
	OnDup     string
	LogLevel  string
	LogFormat string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Indent:    "indent",
			SortKeys:  "sort-keys",
			OnDup:     "on-duplicate",
			LogLevel:  "log-level",
			LogFormat: "log-format",
		},
	}
}

// RegisterFlags adds this Config's flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Indent, c.Flags.Indent, 4,
		"number of spaces added per nesting level when re-emitting")
	flags.BoolVar(&c.SortKeys, c.Flags.SortKeys, false,
		"emit mapping keys in sorted order instead of insertion order")
	flags.StringVar(&c.OnDup, c.Flags.OnDup, "error",
		"duplicate mapping key policy: error, use-first, or use-last")
	flags.StringVar(&c.LogLevel, c.Flags.LogLevel, "info",
		"log level: debug, info, warn, or error")
	flags.StringVar(&c.LogFormat, c.Flags.LogFormat, "logfmt",
		"log format: logfmt or json")
}

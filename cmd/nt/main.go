// Command nt is a command-line front end for the nestedtext package: it
// validates, canonicalizes, and inspects NestedText documents. It is not
// part of the nestedtext package's public API — embedders should import
// github.com/nestedtext-go/nestedtext directly.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nestedtext-go/nestedtext"
	"github.com/nestedtext-go/nestedtext/internal/ntlog"
)

func main() {
	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:           "nt",
		Short:         "Inspect and reformat NestedText documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newFormatCmd(cfg),
		newValidateCmd(cfg),
		newJSONCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nt: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg *Config) (*slog.Logger, error) {
	h, err := ntlog.NewHandler(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

func dupPolicy(name string) (nestedtext.DuplicateKeyPolicy, error) {
	switch name {
	case "", "error":
		return nestedtext.OnDuplicateError, nil
	case "use-first":
		return nestedtext.OnDuplicateUseFirst, nil
	case "use-last":
		return nestedtext.OnDuplicateUseLast, nil
	default:
		return 0, fmt.Errorf("unknown duplicate-key policy %q", name)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func decodeArg(cfg *Config, path string) (nestedtext.Value, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	policy, err := dupPolicy(cfg.OnDup)
	if err != nil {
		return nil, err
	}

	dec := nestedtext.NewDecoder(bytes.NewReader(data))
	dec.SetDuplicateKeyPolicy(policy)
	return dec.Decode()
}

func newFormatCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "format [file]",
		Short: "Re-emit a NestedText document in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			path := firstArg(args)
			logger.Debug("formatting", "path", path)

			val, err := decodeArg(cfg, path)
			if err != nil {
				return err
			}

			var opts []nestedtext.EncodeOption
			opts = append(opts, nestedtext.WithIndent(cfg.Indent))
			if cfg.SortKeys {
				opts = append(opts, nestedtext.WithSortedKeys())
			}

			out, err := nestedtext.MarshalValue(val, opts...)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
}

func newValidateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse a NestedText document and report errors, if any",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			path := firstArg(args)

			if _, err := decodeArg(cfg, path); err != nil {
				return err
			}
			logger.Info("valid document", "path", path)
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}
}

func newJSONCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "json [file]",
		Short: "Decode a NestedText document and print it as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := firstArg(args)
			val, err := decodeArg(cfg, path)
			if err != nil {
				return err
			}

			native, err := nestedtext.ToInterface(val)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(native, "", "  ")
			if err != nil {
				return err
			}
			out = append(out, '\n')
			_, err = os.Stdout.Write(out)
			return err
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

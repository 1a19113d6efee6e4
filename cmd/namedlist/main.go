// Package main provides the namedlist binary, a small inspector for YAML
// documents holding a list of named entries.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-namedlist/hashing"
	"github.com/hasbyte1/go-namedlist/internal/dotpath"
	"github.com/hasbyte1/go-namedlist/namedlist"
)

const (
	Version = "0.1.0"
	appName = "namedlist"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	file     string
	logLevel string
	logger   *slog.Logger
	list     *namedlist.List[*entry]
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect an ordered list of named entries",
		Long: `namedlist reads a YAML document whose top level is a sequence of
entries, each with a "name" field, and answers positional and by-name
queries over it.

The file is read lazily: commands that never touch the entries do not
open it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.logLevel)
			a.list = loadEntries(a.file).WithOptions(namedlist.Options{Logger: a.logger})
		},
	}

	cmd.PersistentFlags().StringVarP(&a.file, "file", "f", "entries.yaml", "YAML document to read")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		keysCmd(a),
		getCmd(a),
		metaCmd(a),
		rangeCmd(a),
		fingerprintCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func keysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the indexed names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := a.list.Keys()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
}

func getCmd(a *app) *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print the entry answering to NAME",
		Long: `Print the entry answering to NAME, compared case-insensitively.

With --field, print only the value at a dot path inside the entry's meta
mapping, e.g. --field author.email.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			if field == "" {
				return writeEntries(cmd.OutOrStdout(), []*entry{e})
			}
			v, ok := dotpath.Lookup(e.Meta, field)
			if !ok {
				return fmt.Errorf("entry %q has no meta field %q", e.Key, field)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "Dot path into the entry's meta mapping")
	return cmd
}

func metaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "meta NAME",
		Short: "Print the meta mapping of an entry as sorted path=value lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range dotpath.Lines(e.Meta) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func (a *app) lookup(name string) (*entry, error) {
	e, ok, err := a.list.TryGet(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no entry named %q", name)
	}
	return e, nil
}

func rangeCmd(a *app) *cobra.Command {
	var skip, take int
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print a window of entries in list order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := a.list.FindRange(skip, take)
			if err != nil {
				return err
			}
			a.logger.Debug("range", "skip", skip, "take", take)
			return writeEntries(cmd.OutOrStdout(), window.ToSlice())
		},
	}
	cmd.Flags().IntVar(&skip, "skip", 0, "Entries to skip")
	cmd.Flags().IntVar(&take, "take", 10, "Maximum entries to print")
	return cmd
}

func fingerprintCmd(a *app) *cobra.Command {
	var driver, verify string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print or verify the fingerprint of the entry names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := hashing.NewDefaultManager()
			if err != nil {
				return err
			}
			shape, err := a.list.Shape()
			if err != nil {
				return err
			}

			if verify != "" {
				ok, err := m.Matches(verify, shape)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("fingerprint mismatch for %s", a.file)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}

			if err := m.SetDefaultDriver(hashing.DriverName(driver)); err != nil {
				return fmt.Errorf("%w (available: %v)", err, m.Drivers())
			}
			fp, err := m.Fingerprint(shape)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&driver, "driver", string(hashing.DriverBlake2b256), "Digest driver")
	cmd.Flags().StringVar(&verify, "verify", "", "Check the entries against a stored fingerprint instead")
	return cmd
}

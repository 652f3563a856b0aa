// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"platemap/internal/cli"
	"platemap/internal/cmdutil"
	"platemap/internal/config"
	"platemap/internal/writers"
)

// Exit codes.
const (
	exitOK     = 0
	exitUsage  = 2
	exitOutput = 3

	// 128+SIGINT, as a shell reports an interrupted command.
	exitCanceled = 130
)

// clock is swapped in tests so file names are stable.
var clock = time.Now

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error  { return &exitError{code: exitUsage, err: err} }
func outputErr(err error) error { return &exitError{code: exitOutput, err: err} }

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

// env is what every command shares once the root has loaded config.
type env struct {
	out    *bufio.Writer
	errw   io.Writer
	global cli.GlobalOptions
	cfg    config.Config
	log    *slog.Logger
	now    func() time.Time
}

func (e *env) warnf(format string, a ...any) {
	cmdutil.Warnf(e.errw, e.global.Quiet, format, a...)
}

// flush pushes buffered stdout, e.g. before a long-running server blocks.
func (e *env) flush() error {
	if err := e.out.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return outputErr(err)
	}
	return nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	e := &env{
		out:  outw,
		errw: stderr,
		cfg:  config.Default(),
		log:  slog.New(slog.DiscardHandler),
		now:  clock,
	}

	root := newRootCmd(e)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	flushErr := outw.Flush()
	if parent.Err() != nil {
		return exitCanceled
	}
	switch {
	case err == nil && flushErr == nil:
		return exitOK
	case err == nil:
		if writers.IsBrokenPipe(flushErr) {
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, flushErr)
		return exitOutput
	case writers.IsBrokenPipe(err):
		return exitOK
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return exitCode(err)
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "platemap",
		Short:         "Assign i7/i5 indexes to wells of a 96-well plate",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.loadConfig()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErr(fmt.Errorf("%w (see '%s --help')", err, cmd.CommandPath()))
	})

	pf := root.PersistentFlags()
	pf.StringVar(&e.global.ConfigFile, "config", "", "YAML config file")
	pf.StringVar(&e.global.EnvFile, "env-file", ".env", "dotenv file with PLATEMAP_* overrides (skipped if missing)")
	pf.StringVar(&e.global.LogLevel, "log-level", "", "debug | info | warn | error (default from config)")
	pf.BoolVarP(&e.global.Quiet, "quiet", "q", false, "suppress warnings and informational logs")

	root.AddCommand(
		newAssignCmd(e),
		newPlateCmd(e),
		newIndexCmd(e),
		newServeCmd(e),
		newVersionCmd(e),
	)
	return root
}

func (e *env) loadConfig() error {
	cfg, err := config.Load(config.Sources{File: e.global.ConfigFile, EnvFile: e.global.EnvFile})
	if err != nil {
		return usageErr(err)
	}
	if e.global.LogLevel != "" {
		cfg.LogLevel = e.global.LogLevel
		if err := cfg.Validate(); err != nil {
			return usageErr(err)
		}
	}
	e.cfg = cfg
	e.log = cmdutil.NewLogger(e.errw, cfg.LogLevel, e.global.Quiet)
	return nil
}

// inherit fills dst from config unless the flag was given explicitly.
func inherit[T any](cmd *cobra.Command, flag string, dst *T, fromConfig T) {
	if !cmd.Flags().Changed(flag) {
		*dst = fromConfig
	}
}

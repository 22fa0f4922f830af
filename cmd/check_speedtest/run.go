package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mmartinello/check-speedtest/pkg/check"
	"github.com/mmartinello/check-speedtest/pkg/exec"
	"github.com/mmartinello/check-speedtest/pkg/logging"
	"github.com/mmartinello/check-speedtest/pkg/output"
	"github.com/mmartinello/check-speedtest/pkg/speedcheck"
)

// execute runs the plugin once and returns the process exit code. It is the
// only place where errors and panics become plugin output; with --debug2 a
// panic propagates untouched.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, runner exec.Runner) (code int) {
	p := &plugin{stdout: stdout, stderr: stderr, runner: runner}
	defer func() {
		if r := recover(); r != nil {
			if p.opts.debug2 {
				panic(r)
			}
			code = output.PrintResult(stdout, stderr, check.Unknown(errors.Errorf("%v", r)))
		}
	}()

	cmd := newRootCmd(p)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil && p.result == nil:
		return 0
	case err == nil:
		return output.PrintResult(stdout, stderr, *p.result)
	case p.opts.debug2 && !check.Expected(err):
		// Raw failure with stack trace instead of a status line.
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	default:
		return output.PrintResult(stdout, stderr, check.Unknown(err))
	}
}

func (p *plugin) run(cmd *cobra.Command, _ []string) error {
	logger := logging.New(p.stderr, p.opts.debug || p.opts.debug2)
	logger.WithFields(changedFlags(cmd.Flags())).Debug("Command arguments")

	cfg, err := p.opts.config(cmd.Flags())
	if err != nil {
		return err
	}

	c := &speedcheck.Check{Config: cfg, Runner: p.runner, Log: logger}
	result, err := c.Run(cmd.Context())
	if err != nil {
		if !check.Expected(err) {
			logger.WithError(err).Debugf("Caught %T", errors.Cause(err))
		}
		return err
	}
	p.result = &result
	return nil
}

func changedFlags(flags *pflag.FlagSet) log.Fields {
	fields := log.Fields{}
	flags.Visit(func(f *pflag.Flag) {
		fields[f.Name] = f.Value.String()
	})
	return fields
}

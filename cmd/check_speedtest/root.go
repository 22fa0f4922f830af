package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mmartinello/check-speedtest/pkg/check"
	"github.com/mmartinello/check-speedtest/pkg/exec"
)

// options mirrors the command-line flags.
type options struct {
	debug  bool
	debug2 bool

	noDownload bool
	noUpload   bool
	alwaysOK   bool
	server     int

	downloadWarning  float64
	downloadCritical float64
	downloadMax      float64
	uploadWarning    float64
	uploadCritical   float64
	uploadMax        float64
}

// plugin is the state of one invocation.
type plugin struct {
	opts   options
	stdout io.Writer
	stderr io.Writer
	runner exec.Runner
	result *check.Result // nil when no check ran (--help, --version)
}

func newRootCmd(p *plugin) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check_speedtest",
		Short:         "Icinga plugin: check_speedtest",
		Long:          description + ".\n\nRuns speedtest-cli and grades the measured download and upload speeds.",
		Version:       Version,
		Args:          noPositionalArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          p.run,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}} - " + description + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &check.ConfigError{Err: err}
	})

	f := cmd.Flags()
	f.BoolP("version", "V", false, "print the plugin version and exit")
	f.BoolVar(&p.opts.debug, "debug", false,
		"print debugging info to stderr; this may confuse Icinga since it prints extra output")
	f.BoolVar(&p.opts.debug2, "debug2", false,
		"like --debug, and let unexpected errors through instead of reporting UNKNOWN")
	f.BoolVar(&p.opts.noDownload, "no-download", false, "do not perform download test")
	f.BoolVar(&p.opts.noUpload, "no-upload", false, "do not perform upload test")
	f.BoolVar(&p.opts.alwaysOK, "always-ok", false, "always exit with OK")
	f.IntVarP(&p.opts.server, "server", "s", 0, "specify a server ID to test against")
	f.Float64VarP(&p.opts.downloadWarning, "download-warning", "w", 0, "download warning level in Mbit/s (example: 10 or 10.5)")
	f.Float64VarP(&p.opts.downloadCritical, "download-critical", "c", 0, "download critical level in Mbit/s (example: 2 or 2.5)")
	f.Float64VarP(&p.opts.uploadWarning, "upload-warning", "W", 0, "upload warning level in Mbit/s (example: 2 or 2.5)")
	f.Float64VarP(&p.opts.uploadCritical, "upload-critical", "C", 0, "upload critical level in Mbit/s (example: 1 or 1.5)")
	f.Float64VarP(&p.opts.downloadMax, "download-max", "m", 0, "maximum download level in Mbit/s for the connection")
	f.Float64VarP(&p.opts.uploadMax, "upload-max", "M", 0, "maximum upload level in Mbit/s for the connection")

	return cmd
}

func noPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return check.Configf("unexpected argument %q", args[0])
	}
	return nil
}

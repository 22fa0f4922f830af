// Package speedcheck runs speedtest-cli and grades the measured download and
// upload speeds against warning and critical thresholds.
package speedcheck

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mmartinello/check-speedtest/pkg/check"
	"github.com/mmartinello/check-speedtest/pkg/exec"
	"github.com/mmartinello/check-speedtest/pkg/logging"
	"github.com/mmartinello/check-speedtest/pkg/perfdata"
)

// CommandName is the measurement utility looked up in PATH.
const CommandName = "speedtest-cli"

const unit = "Mbit/sec"

// Check runs one speed test and grades it.
type Check struct {
	Config *Config
	Runner exec.Runner     // injected for testing
	Log    log.FieldLogger // debug side channel
}

// Command returns the full command line that Run executes.
func (c *Check) Command() []string {
	return append([]string{CommandName}, c.Config.Args()...)
}

// Run executes speedtest-cli, extracts both speeds and returns the graded
// result. Unreadable output yields check.ErrNoSpeeds; failing to run the
// command at all yields an unexpected error carrying a stack trace.
func (c *Check) Run(ctx context.Context) (check.Result, error) {
	logger := c.logger()
	command := c.Command()
	logger.WithField("command", command).Debug("Composed speedtest command")

	path, err := c.Runner.LookPath(command[0])
	if err != nil {
		return check.Result{}, errors.Wrapf(err, "%s not found in PATH", command[0])
	}

	output, exitCode, err := c.Runner.Output(ctx, path, command[1:]...)
	if err != nil {
		return check.Result{}, errors.Wrapf(err, "running %s", command[0])
	}
	logger.Debugf("Speedtest command exited with status %d", exitCode)
	logger.Debugf("Command output: %s", output)

	speeds := Extract(output)
	logger.WithFields(log.Fields{
		"download": describe(speeds.Download),
		"upload":   describe(speeds.Upload),
	}).Debug("Extracted speeds")

	levels, err := Evaluate(c.Config, speeds)
	if err != nil {
		return check.Result{}, err
	}

	result := check.Result{Status: levels.Overall()}
	addSummary(&result, "Download", speeds.Download, levels.Download)
	addSummary(&result, "Upload", speeds.Upload, levels.Upload)
	for _, m := range Perfdata(c.Config, speeds) {
		logger.Debugf("Perfdata: %s", m)
		result.AddPerfdata(m)
	}
	return result, nil
}

func (c *Check) logger() log.FieldLogger {
	if c.Log == nil {
		return logging.Discard()
	}
	return c.Log
}

// addSummary appends one half of the status details, e.g.
// "Download speed: 5.0 Mbit/sec [WARNING]" or "No download speed".
func addSummary(result *check.Result, direction string, speed *float64, level check.Status) {
	switch {
	case speed == nil:
		result.AddDetailf("No %s speed", strings.ToLower(direction))
	case level == check.StatusOK:
		result.AddDetailf("%s speed: %s %s", direction, perfdata.FormatFloat(*speed), unit)
	default:
		result.AddDetailf("%s speed: %s %s [%s]", direction, perfdata.FormatFloat(*speed), unit, level)
	}
}

// Perfdata builds the download_speed and upload_speed entries. The floor
// is 0.0 whenever the same direction has a max configured.
func Perfdata(cfg *Config, speeds Speeds) []perfdata.Metric {
	return []perfdata.Metric{
		metric("download_speed", speeds.Download, cfg.DownloadWarning, cfg.DownloadCritical, cfg.DownloadMax),
		metric("upload_speed", speeds.Upload, cfg.UploadWarning, cfg.UploadCritical, cfg.UploadMax),
	}
}

func metric(label string, value, warn, crit, max *float64) perfdata.Metric {
	m := perfdata.Metric{
		Label: label,
		Value: value,
		Unit:  unit,
		Warn:  warn,
		Crit:  crit,
		Max:   max,
	}
	if max != nil {
		floor := 0.0
		m.Min = &floor
	}
	return m
}

func describe(v *float64) string {
	if v == nil {
		return "none"
	}
	return perfdata.FormatFloat(*v)
}

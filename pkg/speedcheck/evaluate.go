package speedcheck

import (
	"github.com/mmartinello/check-speedtest/pkg/check"
)

// Levels is the per-direction outcome of threshold evaluation.
type Levels struct {
	Download check.Status
	Upload   check.Status
}

// Overall returns the worst of the two levels.
func (l Levels) Overall() check.Status {
	return check.Worst(l.Download, l.Upload)
}

// Evaluate grades the speeds against the configured thresholds. Warning
// checks run before critical ones so a critical breach always wins. A
// value equal to a threshold is not a breach.
func Evaluate(cfg *Config, speeds Speeds) (Levels, error) {
	levels := Levels{Download: check.StatusOK, Upload: check.StatusOK}

	if speeds.None() {
		return levels, check.ErrNoSpeeds
	}
	if cfg.AlwaysOK {
		return levels, nil
	}

	if below(speeds.Download, cfg.DownloadWarning) {
		levels.Download = check.StatusWarning
	}
	if below(speeds.Upload, cfg.UploadWarning) {
		levels.Upload = check.StatusWarning
	}
	if below(speeds.Download, cfg.DownloadCritical) {
		levels.Download = check.StatusCritical
	}
	if below(speeds.Upload, cfg.UploadCritical) {
		levels.Upload = check.StatusCritical
	}
	return levels, nil
}

func below(value, threshold *float64) bool {
	return value != nil && threshold != nil && *value < *threshold
}

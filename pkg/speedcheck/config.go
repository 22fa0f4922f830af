package speedcheck

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmartinello/check-speedtest/pkg/check"
)

// Config holds the plugin arguments. Nil pointers mean "not given".
type Config struct {
	SkipDownload bool
	SkipUpload   bool
	AlwaysOK     bool
	ServerID     *int

	DownloadWarning  *float64 // Mbit/s
	DownloadCritical *float64 // Mbit/s
	DownloadMax      *float64 // Mbit/s, perfdata ceiling only

	UploadWarning  *float64
	UploadCritical *float64
	UploadMax      *float64
}

// Validate checks the argument combinations. It returns a *check.ConfigError
// describing the first problem found.
func (c *Config) Validate() error {
	for _, l := range []struct {
		name  string
		value *float64
	}{
		{"download warning", c.DownloadWarning},
		{"download critical", c.DownloadCritical},
		{"download max", c.DownloadMax},
		{"upload warning", c.UploadWarning},
		{"upload critical", c.UploadCritical},
		{"upload max", c.UploadMax},
	} {
		if l.value != nil && (!(*l.value > 0) || math.IsInf(*l.value, 1)) {
			return check.Configf("%s level must be a positive number!", capitalize(l.name))
		}
	}

	if c.SkipDownload && anySet(c.DownloadWarning, c.DownloadCritical, c.DownloadMax) {
		return check.Configf("You must not specify download warning, critical or max levels if --no-download specified!")
	}
	if c.SkipUpload && anySet(c.UploadWarning, c.UploadCritical, c.UploadMax) {
		return check.Configf("You must not specify upload warning, critical or max levels if --no-upload specified!")
	}

	if err := validateDirection("download", c.DownloadWarning, c.DownloadCritical, c.DownloadMax); err != nil {
		return err
	}
	return validateDirection("upload", c.UploadWarning, c.UploadCritical, c.UploadMax)
}

func validateDirection(dir string, warning, critical, max *float64) error {
	if warning != nil && critical != nil && *warning <= *critical {
		return check.Configf("%s warning level must be bigger than %s critical level!", capitalize(dir), dir)
	}
	if max == nil {
		return nil
	}
	if critical != nil && *max < *critical {
		return check.Configf("%s max level cannot be lower than %s critical level!", capitalize(dir), dir)
	}
	if warning != nil && *max < *warning {
		return check.Configf("%s max level cannot be lower than %s warning level!", capitalize(dir), dir)
	}
	return nil
}

// Args returns the speedtest-cli arguments for this configuration.
func (c *Config) Args() []string {
	var args []string
	if c.SkipDownload {
		args = append(args, "--no-download")
	}
	if c.SkipUpload {
		args = append(args, "--no-upload")
	}
	if c.ServerID != nil {
		args = append(args, "--server", strconv.Itoa(*c.ServerID))
	}
	return args
}

func anySet(values ...*float64) bool {
	for _, v := range values {
		if v != nil {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

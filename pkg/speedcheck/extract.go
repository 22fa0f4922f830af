package speedcheck

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	downloadRegex = regexp.MustCompile(`(?m)^Download: (.+) Mbit/s\r?$`)
	uploadRegex   = regexp.MustCompile(`(?m)^Upload: (.+) Mbit/s\r?$`)
)

// Speeds holds the measured throughput in Mbit/s. A nil field means the
// metric was not found in the output.
type Speeds struct {
	Download *float64
	Upload   *float64
}

// None reports whether neither metric was found.
func (s Speeds) None() bool {
	return s.Download == nil && s.Upload == nil
}

// Extract reads the download and upload speeds from speedtest-cli output.
// Each metric is looked up independently and never fails the other.
func Extract(output string) Speeds {
	return Speeds{
		Download: find(downloadRegex, output),
		Upload:   find(uploadRegex, output),
	}
}

func find(re *regexp.Regexp, output string) *float64 {
	matches := re.FindStringSubmatch(output)
	if matches == nil {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(matches[1]), 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

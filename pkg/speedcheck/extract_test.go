package speedcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmartinello/check-speedtest/pkg/testutil"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		output       string
		wantDownload *float64
		wantUpload   *float64
	}{
		{
			name:         "full report",
			output:       testutil.SpeedtestOutput,
			wantDownload: ptr(55.23),
			wantUpload:   ptr(12.10),
		},
		{
			name:         "download only",
			output:       "Download: 93.4 Mbit/s\nSkipping upload test\n",
			wantDownload: ptr(93.4),
		},
		{
			name:       "upload only",
			output:     "Skipping download test\nUpload: 8.75 Mbit/s\n",
			wantUpload: ptr(8.75),
		},
		{
			name:   "empty output",
			output: "",
		},
		{
			name:   "error output",
			output: "Cannot retrieve speedtest configuration\nERROR: <urlopen error [Errno -3]>\n",
		},
		{
			name:   "unparseable number",
			output: "Download: fast Mbit/s\nUpload: n/a Mbit/s\n",
		},
		{
			name:       "not anchored to line start",
			output:     "  Download: 10.0 Mbit/s\nUpload: 3.0 Mbit/s\n",
			wantUpload: ptr(3.0),
		},
		{
			name:   "wrong unit",
			output: "Download: 10.0 Mbyte/s\nUpload: 3.0 Mbyte/s\n",
		},
		{
			name:   "case sensitive",
			output: "download: 10.0 Mbit/s\nUPLOAD: 3.0 Mbit/s\n",
		},
		{
			name:         "first match wins",
			output:       "Download: 1.5 Mbit/s\nDownload: 2.5 Mbit/s\n",
			wantDownload: ptr(1.5),
		},
		{
			name:         "crlf line endings",
			output:       "Download: 20.5 Mbit/s\r\nUpload: 4.25 Mbit/s\r\n",
			wantDownload: ptr(20.5),
			wantUpload:   ptr(4.25),
		},
		{
			name:         "no trailing newline",
			output:       "Download: 7 Mbit/s",
			wantDownload: ptr(7),
		},
		{
			name:         "zero speed is present",
			output:       "Download: 0.00 Mbit/s\n",
			wantDownload: ptr(0),
		},
		{
			name:   "nan is absent",
			output: "Download: nan Mbit/s\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.output)
			assert.Equal(t, tt.wantDownload, got.Download, "download")
			assert.Equal(t, tt.wantUpload, got.Upload, "upload")
		})
	}
}

func TestSpeedsNone(t *testing.T) {
	assert.True(t, Speeds{}.None())
	assert.False(t, Speeds{Download: ptr(1)}.None())
	assert.False(t, Speeds{Upload: ptr(1)}.None())
}

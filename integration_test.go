//go:build unix

package checkspeedtest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmartinello/check-speedtest/pkg/check"
	"github.com/mmartinello/check-speedtest/pkg/exec"
	"github.com/mmartinello/check-speedtest/pkg/output"
	"github.com/mmartinello/check-speedtest/pkg/speedcheck"
	"github.com/mmartinello/check-speedtest/pkg/testutil"
)

// Integration tests run the real runner against a fake speedtest-cli on PATH.

func TestIntegration_Report(t *testing.T) {
	testutil.FakeCommand(t, speedcheck.CommandName, "cat <<'EOF'\n"+testutil.SpeedtestOutput+"EOF\necho 'noise' >&2\n")

	c := &speedcheck.Check{
		Config: &speedcheck.Config{DownloadWarning: testutil.Ptr(100.0), DownloadCritical: testutil.Ptr(10.0)},
		Runner: &exec.RealRunner{},
	}

	result, err := c.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, check.StatusWarning, result.Status)
	assert.Equal(t,
		"WARNING - Download speed: 55.23 Mbit/sec [WARNING], Upload speed: 12.1 Mbit/sec"+
			" |'download_speed'=55.23Mbit/sec;100.0;10.0;NaN;NaN 'upload_speed'=12.1Mbit/sec;NaN;NaN;NaN;NaN",
		output.FormatResult(result))
}

func TestIntegration_Arguments(t *testing.T) {
	// Echo the received arguments back as speeds so they can be asserted on.
	testutil.FakeCommand(t, speedcheck.CommandName, `
[ "$1" = "--no-upload" ] || exit 9
[ "$2" = "--server" ] || exit 9
echo "Download: $3 Mbit/s"
`)

	c := &speedcheck.Check{
		Config: &speedcheck.Config{SkipUpload: true, ServerID: testutil.Ptr(4302)},
		Runner: &exec.RealRunner{},
	}

	result, err := c.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Download speed: 4302.0 Mbit/sec", "No upload speed"}, result.Details)
}

func TestIntegration_NonZeroExit(t *testing.T) {
	testutil.FakeCommand(t, speedcheck.CommandName, "echo 'Download: 5.5 Mbit/s'\nexit 1\n")

	c := &speedcheck.Check{Config: &speedcheck.Config{}, Runner: &exec.RealRunner{}}

	result, err := c.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, check.StatusOK, result.Status)
}

func TestIntegration_Failure(t *testing.T) {
	testutil.FakeCommand(t, speedcheck.CommandName, "echo 'ERROR: Unable to connect to servers' >&2\nexit 1\n")

	c := &speedcheck.Check{Config: &speedcheck.Config{}, Runner: &exec.RealRunner{}}

	_, err := c.Run(context.Background())

	assert.True(t, errors.Is(err, check.ErrNoSpeeds), "err = %v, want ErrNoSpeeds", err)
}

func TestIntegration_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	c := &speedcheck.Check{Config: &speedcheck.Config{}, Runner: &exec.RealRunner{}}

	_, err := c.Run(context.Background())

	require.Error(t, err)
	assert.False(t, check.Expected(err))
}

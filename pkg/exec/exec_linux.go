//go:build linux

package exec

import (
	"os/exec"
	"syscall"
)

// linkLifetime makes the kernel kill the child when the plugin dies, so a
// supervisor timeout that kills the plugin also reclaims speedtest-cli.
func linkLifetime(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGKILL}
}

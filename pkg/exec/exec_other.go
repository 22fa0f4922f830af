//go:build !linux

package exec

import "os/exec"

// linkLifetime is a no-op without a parent-death signal; the child is still
// killed through context cancellation when the plugin receives SIGTERM.
func linkLifetime(cmd *exec.Cmd) {}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmartinello/check-speedtest/pkg/exec"
)

// Version is set at build time via ldflags
var Version = "1.0"

const description = "Nagios/Icinga plugin to monitor WAN connection speed using speedtest-cli"

func main() {
	// SIGTERM from the supervisor cancels the context, which kills speedtest-cli.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, &exec.RealRunner{})
	stop()
	os.Exit(code)
}

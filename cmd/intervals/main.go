package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/henderiw/intervals/cmd/intervals/app"
	"k8s.io/klog/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.NewRootCommand(os.Stdin, os.Stdout).ExecuteContext(ctx)
	stop()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"

	"github.com/nodewee/screenshot-namer/cmd"

	"github.com/charmbracelet/fang"
)

// Version information - set during build time via ldflags
var (
	Version   = "dev"
	GitCommit = "none"
	BuildTime = "unknown"
)

func main() {
	cmd.SetVersionInfo(Version, GitCommit, BuildTime)

	root := cmd.NewRootCmd()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(cmd.Version()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"context"

	"github.com/fd0/termstatus"
)

// Terminal prints messages and keeps a status line at the bottom.
type Terminal interface {
	Print(msg string)
	Printf(msg string, data ...interface{})
	SetStatus(lines []string)
	Run(ctx context.Context)
}

// statically ensure that the terminals implement Terminal
var (
	_ Terminal = &termstatus.Terminal{}
	_ Terminal = &LogTerminal{}
)

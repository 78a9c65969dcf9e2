//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// getTermWidth tries to find out how many columns there are on the current
// terminal. If an error is encountered, it'll return a default value
// of 80.
func getTermWidth(fd int) int {
	width := 80

	var info windows.ConsoleScreenBufferInfo
	err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info)
	if err == nil {
		width = int(info.Size.X)
	}
	return width
}

// prepareTerminal enables escape sequences for colors and the status line on
// stdout and stderr. The returned function restores the previous modes.
func prepareTerminal() (reset func()) {
	var stdoutMode, stderrMode uint32

	stdoutHandle := windows.Handle(os.Stdout.Fd())

	err := windows.GetConsoleMode(stdoutHandle, &stdoutMode)
	if err != nil {
		return func() {}
	}

	err = windows.SetConsoleMode(stdoutHandle, stdoutMode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	if err != nil {
		return func() {}
	}

	stderrHandle := windows.Handle(os.Stderr.Fd())

	err = windows.GetConsoleMode(stderrHandle, &stderrMode)
	if err != nil {
		return func() {
			_ = windows.SetConsoleMode(stdoutHandle, stdoutMode)
		}
	}

	err = windows.SetConsoleMode(stderrHandle, stderrMode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	if err != nil {
		return func() {
			_ = windows.SetConsoleMode(stdoutHandle, stdoutMode)
		}
	}

	return func() {
		_ = windows.SetConsoleMode(stdoutHandle, stdoutMode)
		_ = windows.SetConsoleMode(stderrHandle, stderrMode)
	}
}

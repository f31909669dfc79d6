package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"extsort/internal/organizer"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

func renderResultLine(result organizer.Result, colorize bool) string {
	var line string
	kind := statusOK
	switch {
	case result.DryRun:
		line = fmt.Sprintf("Dry-run: %d files would be moved", result.Processed)
		kind = statusInfo
	default:
		line = fmt.Sprintf("Success: %d files moved", result.Processed)
	}
	if result.Skipped > 0 {
		line += fmt.Sprintf(" (%d skipped)", result.Skipped)
	}
	if result.Failed > 0 {
		line += fmt.Sprintf(", %d failed", result.Failed)
		kind = statusWarn
	}
	return paint(line, kind, colorize)
}

func renderFailureLine(outcome organizer.Outcome, colorize bool) string {
	line := fmt.Sprintf("  failed: %s", outcome.Source)
	if outcome.Err != nil {
		line += ": " + outcome.Err.Error()
	}
	return paint(line, statusError, colorize)
}

func paint(line string, kind statusKind, colorize bool) string {
	if !colorize {
		return line
	}
	c := color.New(statusKindColor(kind))
	c.EnableColor()
	return c.Sprint(line)
}

func statusKindColor(kind statusKind) color.Attribute {
	switch kind {
	case statusOK:
		return color.FgGreen
	case statusWarn:
		return color.FgYellow
	case statusError:
		return color.FgRed
	default:
		return color.FgBlue
	}
}

func shouldColorize(writer io.Writer) bool {
	if color.NoColor {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

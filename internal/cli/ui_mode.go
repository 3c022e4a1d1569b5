package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// uiMode selects how browse presents a run.
type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

// viewerDecision is the outcome of matching a ui mode against stdout.
type viewerDecision struct {
	interactive bool
	// color is false when stdout is not a terminal.
	color   bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = fdIsTerminal

func parseUIMode(raw string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", raw)
	}
}

// decideViewer starts the viewer for live, or for auto on a terminal.
// Live without a terminal degrades to the static table with a warning.
func decideViewer(mode uiMode, stdout io.Writer) viewerDecision {
	tty := isTerminal(stdout)
	decision := viewerDecision{color: tty}
	switch mode {
	case uiAuto:
		decision.interactive = tty
	case uiLive:
		decision.interactive = tty
		if !tty {
			decision.warning = "--ui live needs a terminal; printing the static table instead."
		}
	}
	return decision
}

func fdIsTerminal(w io.Writer) bool {
	file, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(file.Fd()))
}

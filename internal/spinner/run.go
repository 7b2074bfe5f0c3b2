package spinner

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ShouldShow returns true if the spinner should be displayed. The
// spinner is hidden for quiet mode, JSON output, or non-TTY (piped)
// output.
func ShouldShow(quiet, json, nonTTY bool) bool {
	return !quiet && !json && !nonTTY
}

// Run starts a spinner tracking the given categories. It calls fetchFn,
// passing a callback that fetchFn should invoke as each category
// completes. Run blocks until every category finishes.
func Run(categories []string, fetchFn func(onComplete func(CompletionInfo))) error {
	if len(categories) == 0 {
		fetchFn(func(CompletionInfo) {})
		return nil
	}

	m := newModel(categories)
	p := tea.NewProgram(m)

	done := make(chan struct{})
	go func() {
		fetchFn(func(info CompletionInfo) {
			p.Send(completionMsg(info))
		})
		close(done)
	}()

	_, err := p.Run()
	<-done
	if err != nil {
		return fmt.Errorf("running spinner: %w", err)
	}
	return nil
}

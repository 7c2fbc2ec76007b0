package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"nrvtest/internal/domain"
	"nrvtest/internal/storage"
)

// Viewer displays test failures in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}

// FailureViewer browses the last run's failed tests and their captured
// subprocess output.
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View opens the interactive failure browser. Space toggles a failure as
// resolved (persisted back to the results file), q or Esc quits.
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No test failures in the last run")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range results.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	itemText := func(index int) string {
		failure := results.Details[index]
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ %d. %s[white]", index+1, failure.TestName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.TestName)
	}

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failed tests (%d) ", len(results.Details)))
	list.SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	details.SetBorder(true).SetTitle(" Captured output ")

	showDetails := func(index int) {
		failure := results.Details[index]
		details.Clear()
		fmt.Fprintf(details, "[yellow]%s[white]\n\n", failure.TestName)
		fmt.Fprintf(details, "Exit code: [red]%d[white]\n", failure.ExitCode)
		fmt.Fprintf(details, "Duration:  %.2fs\n\n", failure.DurationSeconds)
		fmt.Fprint(details, tview.Escape(failure.Output))
		details.ScrollToBeginning()
	}

	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})
	showDetails(0)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Rune() == ' ':
			index := list.GetCurrentItem()
			resolved[index] = !resolved[index]
			list.SetItemText(index, itemText(index), "")
			return nil
		case event.Rune() == 'q', event.Key() == tcell.KeyEscape:
			app.Stop()
			return nil
		}
		return event
	})

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	if err := app.SetRoot(flex, true).Run(); err != nil {
		return fmt.Errorf("failure viewer: %w", err)
	}
	return saveResolved()
}

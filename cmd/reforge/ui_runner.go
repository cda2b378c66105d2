package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"reforge/internal/diag"
	"reforge/internal/diagfmt"
	"reforge/internal/rebuild"
	"reforge/internal/ui"
)

// printUI is the non-interactive UI collaborator: it writes the list
// and a severity tally to its writer.
type printUI struct {
	w    io.Writer
	opts diagfmt.PrettyOpts
}

func (u printUI) PublishDiagnostics(records []diag.Record) {
	diagfmt.Pretty(u.w, records, u.opts)
	diagfmt.Summary(u.w, records, u.opts)
}

func (u printUI) FocusDiagnostics() {}

// tuiUI is the interactive UI collaborator: publishing stores the list,
// the focus request brings up the Bubble Tea view.
type tuiUI struct {
	title   string
	records []diag.Record
}

func (u *tuiUI) PublishDiagnostics(records []diag.Record) {
	u.records = records
}

func (u *tuiUI) FocusDiagnostics() {
	if err := runDiagnosticList(u.title, u.records); err != nil {
		fmt.Fprintf(os.Stderr, "failed to show diagnostic list: %v\n", err)
	}
}

func runDiagnosticList(title string, records []diag.Record) error {
	model := ui.NewListModel(title, records)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}

// chooseUI picks the UI collaborator from the flags and terminal.
func chooseUI(opts diagfmt.PrettyOpts, interactive bool, title string) rebuild.UI {
	if interactive {
		return &tuiUI{title: title}
	}
	return printUI{w: os.Stdout, opts: opts}
}

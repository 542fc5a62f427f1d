package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/sparsecalc/logging"
)

var (
	successStyle = pterm.NewStyle(pterm.FgGreen)
	errorStyle   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	titleStyle   = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

// styled applies s only when w is a terminal.
func styled(w io.Writer, s *pterm.Style, text string) string {
	if !logging.IsTerminal(w) {
		return text
	}
	return s.Sprint(text)
}

// printSuccess writes "<SUCCESS> msg".
func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		styled(w, successStyle, pterm.Success.Prefix.Text),
		fmt.Sprintf(format, args...))
}

// printError writes "<ERROR> err".
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		styled(w, errorStyle, " "+pterm.Error.Prefix.Text+" "),
		err.Error())
}

// printTitle writes the interactive banner.
func printTitle(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s\n%s\n\n", styled(w, titleStyle, MsgPromptTitle), MsgPromptRule)
}

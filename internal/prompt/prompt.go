// Package prompt handles the two interactive touchpoints: the report-name
// question and the final exit pause. When stdin is a terminal the name
// prompt renders as a small bubbletea text input; otherwise (pipes, CI) it
// degrades to a plain line read so scripted runs keep working.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	reportNamePrompt = "Enter a name for the report (without extension): "
	exitPrompt       = "Press Enter to exit..."
)

// ReportName asks for a report base name. Blank input means the caller's
// default applies. placeholder is shown in the terminal UI as a hint.
func ReportName(in io.Reader, out io.Writer, placeholder string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return reportNameTUI(f, out, placeholder)
	}

	fmt.Fprint(out, reportNamePrompt)
	return readLine(in)
}

// WaitForExit blocks until the user presses Enter, mirroring the pause of
// a double-clicked console executable.
func WaitForExit(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\n"+exitPrompt)
	_, _ = readLine(in)
}

func readLine(in io.Reader) (string, error) {
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

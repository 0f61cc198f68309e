package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
)

// Writer writes alerts in an output format. Structured formats get one
// document per alert so scripts can read them.
type Writer struct {
	w        io.Writer
	format   output.Format
	useColor bool
}

// NewWriter creates a Writer. Color is used only on terminals and never
// when noColor is set.
func NewWriter(w io.Writer, format output.Format, noColor bool) *Writer {
	return &Writer{
		w:        w,
		format:   format,
		useColor: !noColor && isTerminal(w),
	}
}

// alertData is the structured form of an alert.
type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Write writes one alert.
func (aw *Writer) Write(alert *Alert) error {
	switch aw.format {
	case output.FormatJSON, output.FormatYAML:
		data := alertData{
			Level:   alert.Level.String(),
			Message: alert.Message,
			Details: alert.Details,
		}
		if alert.Err != nil {
			data.Error = alert.Err.Error()
		}
		return output.NewFormatter(aw.format).Format(aw.w, data)
	default:
		return aw.writeText(alert)
	}
}

func (aw *Writer) writeText(alert *Alert) error {
	message := alert.String()
	if aw.useColor {
		message = alert.Level.color() + message + resetColor
	}
	if _, err := fmt.Fprintln(aw.w, message); err != nil {
		return err
	}
	for _, detail := range alert.Details {
		if _, err := fmt.Fprintf(aw.w, "   %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

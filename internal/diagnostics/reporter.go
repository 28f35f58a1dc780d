package diagnostics

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/ports"
	"github.com/lurkerbot/lurker/internal/theme"
)

// Reporter renders diagnostic records as text lines. Records below
// domain.LevelWarning go to out, everything else to errOut.
type Reporter struct {
	clock ports.TimeKeeper
	start time.Time

	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer

	sourceStyle  lipgloss.Style
	signalStyle  lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// Verify interface compliance at compile time
var _ ports.DiagnosticSink = (*Reporter)(nil)

// NewReporter creates a Reporter. Elapsed time is measured from the moment
// of creation using clock.
func NewReporter(out, errOut io.Writer, clock ports.TimeKeeper) *Reporter {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	return &Reporter{
		clock:        clock,
		start:        clock.Now(),
		out:          out,
		errOut:       errOut,
		sourceStyle:  outRenderer.NewStyle().Foreground(theme.ColorMuted),
		signalStyle:  outRenderer.NewStyle().Foreground(theme.ColorSignal),
		warningStyle: errRenderer.NewStyle().Foreground(theme.ColorWarning).Bold(true),
		errorStyle:   errRenderer.NewStyle().Foreground(theme.ColorError).Bold(true),
	}
}

// Send writes one line for the record
func (r *Reporter) Send(source string, level domain.Level, message string) {
	elapsed := r.clock.Now().Sub(r.start).Seconds()

	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case level >= domain.LevelError:
		fmt.Fprintf(r.errOut, "[%.6f] %s:%d %s %s\n",
			elapsed, source, int(level), r.errorStyle.Render("error:"), message)
	case level >= domain.LevelWarning:
		fmt.Fprintf(r.errOut, "[%.6f] %s:%d %s %s\n",
			elapsed, source, int(level), r.warningStyle.Render("warning:"), message)
	case level >= domain.LevelSignal && level < domain.LevelLifecycle:
		fmt.Fprintf(r.out, "[%.6f] %s %s\n",
			elapsed, r.sourceStyle.Render(fmt.Sprintf("%s:%d", source, int(level))), r.signalStyle.Render(message))
	default:
		fmt.Fprintf(r.out, "[%.6f] %s %s\n",
			elapsed, r.sourceStyle.Render(fmt.Sprintf("%s:%d", source, int(level))), message)
	}
}

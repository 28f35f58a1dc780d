package diagnostics

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lurkerbot/lurker/internal/domain"
	portsmocks "github.com/lurkerbot/lurker/internal/ports/mocks"
)

func TestReporter_RoutesByLevel(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := portsmocks.NewMockTimeKeeper(t)
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(start.Add(1500 * time.Millisecond))

	var out, errOut bytes.Buffer
	reporter := NewReporter(&out, &errOut, clock)

	reporter.Send("Lurker", domain.LevelActivity, "[#alpha] +bob")
	reporter.Send("Lurker", domain.LevelLifecycle, "Configured.")
	reporter.Send("Lurker/TMI", domain.LevelWarning, "slow server")
	reporter.Send("Lurker", domain.LevelError, "unable to read root CA certificates file")

	assert.Equal(t,
		"[1.500000] Lurker:1 [#alpha] +bob\n"+
			"[1.500000] Lurker:3 Configured.\n",
		out.String())
	assert.Equal(t,
		"[1.500000] Lurker/TMI:5 warning: slow server\n"+
			"[1.500000] Lurker:10 error: unable to read root CA certificates file\n",
		errOut.String())
}

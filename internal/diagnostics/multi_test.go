package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lurkerbot/lurker/internal/domain"
	portsmocks "github.com/lurkerbot/lurker/internal/ports/mocks"
)

func TestMulti_FansOutInOrderAndSkipsNil(t *testing.T) {
	first := portsmocks.NewMockDiagnosticSink(t)
	second := portsmocks.NewMockDiagnosticSink(t)

	var order []string
	first.EXPECT().Send("Lurker", domain.LevelActivity, "hello").
		Run(func(string, domain.Level, string) { order = append(order, "first") }).Return().Once()
	second.EXPECT().Send("Lurker", domain.LevelActivity, "hello").
		Run(func(string, domain.Level, string) { order = append(order, "second") }).Return().Once()

	NewMulti(first, nil, second).Send("Lurker", domain.LevelActivity, "hello")

	assert.Equal(t, []string{"first", "second"}, order)
}

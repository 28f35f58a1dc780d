package ports

import (
	"github.com/lurkerbot/lurker/internal/domain"
)

// Connection is a line-oriented transport to the chat service
type Connection interface {
	// ReadLine blocks until a full protocol line arrives (without the line terminator)
	ReadLine() (string, error)
	WriteLine(line string) error
	Close() error
}

// ConnectionFactory opens a new transport. It may fail before any network activity,
// e.g. when trust-store material cannot be loaded.
type ConnectionFactory func() (Connection, error)

// MessagingHandler receives notifications from the messaging client.
// Methods may be called from any goroutine, concurrently with each other.
type MessagingHandler interface {
	OnDoom()
	OnLoggedIn()
	OnLoggedOut()
	OnMembershipChanged(membership domain.Membership)
	OnMessage(message domain.Message)
	OnNotice(notice domain.Notice)
	OnHost(host domain.Host)
	OnRoomModeChange(change domain.RoomModeChange)
	OnClear(announcement domain.Clear)
	OnSub(sub domain.Sub)
	OnRaid(raid domain.Raid)
	OnRitual(ritual domain.Ritual)
}

// MessagingClient is the outbound command surface of the chat service client.
// Commands are asynchronous; outcomes arrive through the MessagingHandler.
type MessagingClient interface {
	SetConnectionFactory(factory ConnectionFactory)
	SetHandler(handler MessagingHandler)
	SetTimeKeeper(timeKeeper TimeKeeper)
	// SubscribeToDiagnostics registers sink for the client's own diagnostics
	// at or above minLevel. The returned function removes the subscription.
	SubscribeToDiagnostics(sink DiagnosticSink, minLevel domain.Level) func()

	LogInAnonymously()
	Join(channel string)
	LogOut(farewell string)
}

// Dispatch routes an event to the matching handler method
func Dispatch(handler MessagingHandler, event domain.Event) {
	switch e := event.(type) {
	case domain.Doom:
		handler.OnDoom()
	case domain.LoggedIn:
		handler.OnLoggedIn()
	case domain.LoggedOut:
		handler.OnLoggedOut()
	case domain.Membership:
		handler.OnMembershipChanged(e)
	case domain.Message:
		handler.OnMessage(e)
	case domain.Notice:
		handler.OnNotice(e)
	case domain.Host:
		handler.OnHost(e)
	case domain.RoomModeChange:
		handler.OnRoomModeChange(e)
	case domain.Clear:
		handler.OnClear(e)
	case domain.Sub:
		handler.OnSub(e)
	case domain.Raid:
		handler.OnRaid(e)
	case domain.Ritual:
		handler.OnRitual(e)
	}
}

package domain

import "time"

// Event is a notification delivered by the messaging client.
// The set of variants is closed; every implementation lives in this file.
type Event interface {
	isEvent()
}

// Doom signals that the server is about to drop the connection.
type Doom struct{}

// LoggedIn signals that the messaging client finished logging in.
type LoggedIn struct{}

// LoggedOut signals that the messaging client is no longer connected.
type LoggedOut struct{}

// Membership reports a user joining or leaving a channel
type Membership struct {
	Channel string
	Joined  bool
	User    string
}

// Message is a chat line posted to a channel
type Message struct {
	Bits        int
	Channel     string
	Content     string
	DisplayName string
	IsAction    bool
	Timestamp   time.Time
	User        string
}

// Notice is a server notice. An empty Channel means the notice is server-wide.
type Notice struct {
	Channel string
	ID      string
	Message string
}

// Host reports a channel starting or stopping hosting another channel.
// BeingHosted is empty when IsStarting is false.
type Host struct {
	BeingHosted string
	Hosting     string
	IsStarting  bool
	Viewers     int
}

// RoomModeChange reports a change to one room mode, e.g. slow mode
type RoomModeChange struct {
	Channel   string
	Mode      string
	Parameter int
}

// ClearKind identifies what a moderation clear removed
type ClearKind int

const (
	ClearUnknown ClearKind = iota
	ClearAll
	ClearSingleMessage
	ClearTimeout
	ClearBan
)

// String returns the name of the clear kind
func (k ClearKind) String() string {
	switch k {
	case ClearAll:
		return "all"
	case ClearSingleMessage:
		return "single-message"
	case ClearTimeout:
		return "timeout"
	case ClearBan:
		return "ban"
	default:
		return "unknown"
	}
}

// Clear reports a moderation action removing chat content.
// Optional fields are left at their zero value when absent.
type Clear struct {
	Channel          string
	DurationSeconds  int
	Kind             ClearKind
	OffendingContent string
	Reason           string
	Timestamp        time.Time
	User             string
}

// SubKind identifies the flavor of a subscription announcement
type SubKind int

const (
	SubUnknown SubKind = iota
	SubNew
	SubRenewal
	SubGiftedSingle
	SubGiftedMystery
)

// String returns the name of the sub kind
func (k SubKind) String() string {
	switch k {
	case SubNew:
		return "new"
	case SubRenewal:
		return "renewal"
	case SubGiftedSingle:
		return "gifted-single"
	case SubGiftedMystery:
		return "gifted-mystery"
	default:
		return "unknown"
	}
}

// Sub is a subscription announcement.
// Months, SenderCount, MassGiftCount and RecipientDisplayName are zero when absent.
type Sub struct {
	Channel              string
	Kind                 SubKind
	MassGiftCount        int
	Months               int
	PlanName             string
	RecipientDisplayName string
	SenderCount          int
	SystemMessage        string
	Timestamp            time.Time
	User                 string
	UserMessage          string
}

// Raid announces another channel raiding this one
type Raid struct {
	Channel       string
	RaiderName    string
	SystemMessage string
	Timestamp     time.Time
	ViewerCount   int
}

// Ritual announces a chat ritual, e.g. a new chatter
type Ritual struct {
	Channel       string
	RitualName    string
	SystemMessage string
	Timestamp     time.Time
	User          string
}

func (Doom) isEvent()           {}
func (LoggedIn) isEvent()       {}
func (LoggedOut) isEvent()      {}
func (Membership) isEvent()     {}
func (Message) isEvent()        {}
func (Notice) isEvent()         {}
func (Host) isEvent()           {}
func (RoomModeChange) isEvent() {}
func (Clear) isEvent()          {}
func (Sub) isEvent()            {}
func (Raid) isEvent()           {}
func (Ritual) isEvent()         {}

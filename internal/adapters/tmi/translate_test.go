package tmi

import (
	"testing"
	"time"

	twitch "github.com/gempir/go-twitch-irc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lurkerbot/lurker/internal/domain"
)

var fallbackTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func translateLine(t *testing.T, line string) []domain.Event {
	t.Helper()
	return translate(twitch.ParseMessage(line), fallbackTime)
}

func TestTranslate_PrivateMessage(t *testing.T) {
	events := translateLine(t, "@bits=50;display-name=Bob;id=abc;tmi-sent-ts=1700000000000;user-id=1 "+
		":bob!bob@bob.tmi.twitch.tv PRIVMSG #alpha :cheer50")

	require.Len(t, events, 1)
	msg, ok := events[0].(domain.Message)
	require.True(t, ok)
	assert.Equal(t, 50, msg.Bits)
	assert.Equal(t, "#alpha", msg.Channel)
	assert.Equal(t, "cheer50", msg.Content)
	assert.Equal(t, "Bob", msg.DisplayName)
	assert.Equal(t, "bob", msg.User)
	assert.False(t, msg.IsAction)
	assert.True(t, msg.Timestamp.Equal(time.UnixMilli(1700000000000)))
}

func TestTranslate_Action(t *testing.T) {
	events := translateLine(t, "@display-name=Bob :bob!bob@bob.tmi.twitch.tv PRIVMSG #alpha :\x01ACTION waves\x01")

	require.Len(t, events, 1)
	msg := events[0].(domain.Message)
	assert.True(t, msg.IsAction)
	assert.Equal(t, "waves", msg.Content)
}

func TestTranslate_Membership(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected domain.Membership
	}{
		{
			name:     "join",
			line:     ":bob!bob@bob.tmi.twitch.tv JOIN #alpha",
			expected: domain.Membership{Channel: "#alpha", Joined: true, User: "bob"},
		},
		{
			name:     "part",
			line:     ":bob!bob@bob.tmi.twitch.tv PART #alpha",
			expected: domain.Membership{Channel: "#alpha", User: "bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := translateLine(t, tt.line)

			require.Len(t, events, 1)
			assert.Equal(t, tt.expected, events[0])
		})
	}
}

func TestTranslate_Notice(t *testing.T) {
	tests := []struct {
		name            string
		line            string
		expectedChannel string
		expectedID      string
	}{
		{
			name:            "server wide",
			line:            ":tmi.twitch.tv NOTICE * :Login authentication failed",
			expectedChannel: "",
		},
		{
			name:            "channel",
			line:            "@msg-id=slow_on :tmi.twitch.tv NOTICE #alpha :This room is now in slow mode.",
			expectedChannel: "#alpha",
			expectedID:      "slow_on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := translateLine(t, tt.line)

			require.Len(t, events, 1)
			notice := events[0].(domain.Notice)
			assert.Equal(t, tt.expectedChannel, notice.Channel)
			assert.Equal(t, tt.expectedID, notice.ID)
			assert.NotEmpty(t, notice.Message)
		})
	}
}

func TestTranslate_ClearChat(t *testing.T) {
	tests := []struct {
		name             string
		line             string
		expectedKind     domain.ClearKind
		expectedUser     string
		expectedDuration int
		expectedReason   string
	}{
		{
			name:         "whole channel",
			line:         "@room-id=1 :tmi.twitch.tv CLEARCHAT #alpha",
			expectedKind: domain.ClearAll,
		},
		{
			name:             "timeout",
			line:             "@ban-duration=600;ban-reason=rude;room-id=1;target-user-id=2 :tmi.twitch.tv CLEARCHAT #alpha :bob",
			expectedKind:     domain.ClearTimeout,
			expectedUser:     "bob",
			expectedDuration: 600,
			expectedReason:   "rude",
		},
		{
			name:         "ban",
			line:         "@room-id=1;target-user-id=2 :tmi.twitch.tv CLEARCHAT #alpha :bob",
			expectedKind: domain.ClearBan,
			expectedUser: "bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := translateLine(t, tt.line)

			require.Len(t, events, 1)
			clr := events[0].(domain.Clear)
			assert.Equal(t, "#alpha", clr.Channel)
			assert.Equal(t, tt.expectedKind, clr.Kind)
			assert.Equal(t, tt.expectedUser, clr.User)
			assert.Equal(t, tt.expectedDuration, clr.DurationSeconds)
			assert.Equal(t, tt.expectedReason, clr.Reason)
		})
	}
}

func TestTranslate_ClearMessage(t *testing.T) {
	tests := []struct {
		name              string
		line              string
		expectedTimestamp time.Time
	}{
		{
			name:              "server timestamp",
			line:              "@login=bob;target-msg-id=abc;tmi-sent-ts=1700000000000 :tmi.twitch.tv CLEARMSG #alpha :spam",
			expectedTimestamp: time.UnixMilli(1700000000000),
		},
		{
			name:              "no timestamp falls back",
			line:              "@login=bob;target-msg-id=abc :tmi.twitch.tv CLEARMSG #alpha :spam",
			expectedTimestamp: fallbackTime,
		},
		{
			name:              "malformed timestamp falls back",
			line:              "@login=bob;target-msg-id=abc;tmi-sent-ts=soon :tmi.twitch.tv CLEARMSG #alpha :spam",
			expectedTimestamp: fallbackTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := translateLine(t, tt.line)

			require.Len(t, events, 1)
			clr, ok := events[0].(domain.Clear)
			require.True(t, ok)
			assert.Equal(t, "#alpha", clr.Channel)
			assert.Equal(t, domain.ClearSingleMessage, clr.Kind)
			assert.Equal(t, "spam", clr.OffendingContent)
			assert.Equal(t, "bob", clr.User)
			assert.True(t, clr.Timestamp.Equal(tt.expectedTimestamp), "got %s", clr.Timestamp)
		})
	}
}

func TestTranslate_RoomStateEmitsOneEventPerModeSorted(t *testing.T) {
	events := translateLine(t, "@slow=30;emote-only=0;room-id=1 :tmi.twitch.tv ROOMSTATE #alpha")

	assert.Equal(t, []domain.Event{
		domain.RoomModeChange{Channel: "#alpha", Mode: "emote-only", Parameter: 0},
		domain.RoomModeChange{Channel: "#alpha", Mode: "slow", Parameter: 30},
	}, events)
}

func TestTranslate_UserNotice(t *testing.T) {
	t.Run("resub", func(t *testing.T) {
		events := translateLine(t, `@display-name=Bob;login=bob;msg-id=resub;msg-param-cumulative-months=3;`+
			`msg-param-sub-plan-name=Prime;system-msg=Bob\ssubscribed :tmi.twitch.tv USERNOTICE #alpha :again`)

		require.Len(t, events, 1)
		sub := events[0].(domain.Sub)
		assert.Equal(t, domain.SubRenewal, sub.Kind)
		assert.Equal(t, "#alpha", sub.Channel)
		assert.Equal(t, 3, sub.Months)
		assert.Equal(t, "Prime", sub.PlanName)
		assert.Equal(t, "Bob", sub.User)
		assert.Equal(t, "Bob subscribed", sub.SystemMessage)
		assert.Equal(t, "again", sub.UserMessage)
	})

	t.Run("subgift", func(t *testing.T) {
		events := translateLine(t, `@display-name=Bob;login=bob;msg-id=subgift;msg-param-recipient-display-name=Carol;`+
			`msg-param-sender-count=5;msg-param-sub-plan-name=Tier\s1 :tmi.twitch.tv USERNOTICE #alpha`)

		sub := events[0].(domain.Sub)
		assert.Equal(t, domain.SubGiftedSingle, sub.Kind)
		assert.Equal(t, "Carol", sub.RecipientDisplayName)
		assert.Equal(t, 5, sub.SenderCount)
	})

	t.Run("submysterygift", func(t *testing.T) {
		events := translateLine(t, `@display-name=Bob;login=bob;msg-id=submysterygift;msg-param-mass-gift-count=10;`+
			`msg-param-sender-count=25 :tmi.twitch.tv USERNOTICE #alpha`)

		sub := events[0].(domain.Sub)
		assert.Equal(t, domain.SubGiftedMystery, sub.Kind)
		assert.Equal(t, 10, sub.MassGiftCount)
		assert.Equal(t, 25, sub.SenderCount)
	})

	t.Run("raid", func(t *testing.T) {
		events := translateLine(t, `@display-name=Beta;login=beta;msg-id=raid;msg-param-displayName=Beta;`+
			`msg-param-viewerCount=42;system-msg=raiding :tmi.twitch.tv USERNOTICE #alpha`)

		raid := events[0].(domain.Raid)
		assert.Equal(t, "#alpha", raid.Channel)
		assert.Equal(t, "Beta", raid.RaiderName)
		assert.Equal(t, 42, raid.ViewerCount)
		assert.Equal(t, "raiding", raid.SystemMessage)
	})

	t.Run("ritual", func(t *testing.T) {
		events := translateLine(t, `@display-name=Bob;login=bob;msg-id=ritual;msg-param-ritual-name=new_chatter;`+
			`system-msg=hi :tmi.twitch.tv USERNOTICE #alpha :HeyGuys`)

		ritual := events[0].(domain.Ritual)
		assert.Equal(t, "new_chatter", ritual.RitualName)
		assert.Equal(t, "Bob", ritual.User)
	})

	t.Run("unrecognized msg-id", func(t *testing.T) {
		events := translateLine(t, `@display-name=Bob;login=bob;msg-id=bitsbadgetier :tmi.twitch.tv USERNOTICE #alpha`)

		sub := events[0].(domain.Sub)
		assert.Equal(t, domain.SubUnknown, sub.Kind)
		assert.Equal(t, "#alpha", sub.Channel)
	})
}

func TestTranslate_ReconnectIsDoom(t *testing.T) {
	events := translateLine(t, ":tmi.twitch.tv RECONNECT")

	assert.Equal(t, []domain.Event{domain.Doom{}}, events)
}

func TestTranslate_IgnoresUninterestingLines(t *testing.T) {
	assert.Empty(t, translateLine(t, ":tmi.twitch.tv CAP * ACK :twitch.tv/tags"))
}

func TestParseHostTarget(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.Host
		ok       bool
	}{
		{
			name:     "start",
			raw:      ":tmi.twitch.tv HOSTTARGET #alpha :beta 12",
			expected: domain.Host{BeingHosted: "beta", Hosting: "#alpha", IsStarting: true, Viewers: 12},
			ok:       true,
		},
		{
			name:     "stop",
			raw:      ":tmi.twitch.tv HOSTTARGET #alpha :- 0",
			expected: domain.Host{Hosting: "#alpha"},
			ok:       true,
		},
		{
			name:     "start without viewers",
			raw:      ":tmi.twitch.tv HOSTTARGET #alpha :beta",
			expected: domain.Host{BeingHosted: "beta", Hosting: "#alpha", IsStarting: true},
			ok:       true,
		},
		{
			name: "truncated",
			raw:  ":tmi.twitch.tv HOSTTARGET #alpha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, ok := parseHostTarget(tt.raw)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, host)
		})
	}
}

func TestIRCCommand(t *testing.T) {
	tests := map[string]string{
		":tmi.twitch.tv 376 justinfan1 :>":         "376",
		"PING :tmi.twitch.tv":                      "PING",
		"@a=b :bob!bob@bob PRIVMSG #alpha :hello":  "PRIVMSG",
		"@a=b":                                     "",
		"":                                         "",
	}

	for line, expected := range tests {
		assert.Equal(t, expected, ircCommand(line), line)
	}
}

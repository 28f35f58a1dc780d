package tmi

import (
	"sort"
	"strconv"
	"strings"
	"time"

	twitch "github.com/gempir/go-twitch-irc/v4"

	"github.com/lurkerbot/lurker/internal/domain"
)

// translate turns one parsed protocol message into the events it announces.
// Messages with no meaning for a passive observer yield nothing.
func translate(message twitch.Message, now time.Time) []domain.Event {
	switch m := message.(type) {
	case *twitch.PrivateMessage:
		return []domain.Event{domain.Message{
			Bits:        m.Bits,
			Channel:     channelName(m.Channel),
			Content:     m.Message,
			DisplayName: m.User.DisplayName,
			IsAction:    m.Action,
			Timestamp:   orNow(m.Time, now),
			User:        m.User.Name,
		}}
	case *twitch.UserJoinMessage:
		return []domain.Event{domain.Membership{Channel: channelName(m.Channel), Joined: true, User: m.User}}
	case *twitch.UserPartMessage:
		return []domain.Event{domain.Membership{Channel: channelName(m.Channel), User: m.User}}
	case *twitch.NoticeMessage:
		return []domain.Event{translateNotice(m)}
	case *twitch.ClearChatMessage:
		return []domain.Event{translateClearChat(m, now)}
	case *twitch.ClearMessage:
		return []domain.Event{domain.Clear{
			Channel:          channelName(m.Channel),
			Kind:             domain.ClearSingleMessage,
			OffendingContent: m.Message,
			Timestamp:        sentTime(m.Tags, now),
			User:             m.Login,
		}}
	case *twitch.RoomStateMessage:
		return translateRoomState(m)
	case *twitch.UserNoticeMessage:
		return []domain.Event{translateUserNotice(m, now)}
	case *twitch.ReconnectMessage:
		return []domain.Event{domain.Doom{}}
	case *twitch.RawMessage:
		if m.RawType == "HOSTTARGET" {
			if host, ok := parseHostTarget(m.Raw); ok {
				return []domain.Event{host}
			}
		}
	}
	return nil
}

func translateNotice(m *twitch.NoticeMessage) domain.Notice {
	channel := strings.TrimPrefix(m.Channel, "#")
	if channel == "*" {
		channel = ""
	}
	return domain.Notice{
		Channel: channelName(channel),
		ID:      m.MsgID,
		Message: m.Message,
	}
}

func translateClearChat(m *twitch.ClearChatMessage, now time.Time) domain.Clear {
	event := domain.Clear{
		Channel:   channelName(m.Channel),
		Timestamp: orNow(m.Time, now),
		User:      m.TargetUsername,
	}
	switch {
	case m.TargetUsername == "":
		event.Kind = domain.ClearAll
	case m.BanDuration > 0:
		event.Kind = domain.ClearTimeout
		event.DurationSeconds = m.BanDuration
		event.Reason = m.Tags["ban-reason"]
	default:
		event.Kind = domain.ClearBan
		event.Reason = m.Tags["ban-reason"]
	}
	return event
}

func translateRoomState(m *twitch.RoomStateMessage) []domain.Event {
	modes := make([]string, 0, len(m.State))
	for mode := range m.State {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	events := make([]domain.Event, 0, len(modes))
	for _, mode := range modes {
		events = append(events, domain.RoomModeChange{
			Channel:   channelName(m.Channel),
			Mode:      mode,
			Parameter: m.State[mode],
		})
	}
	return events
}

func translateUserNotice(m *twitch.UserNoticeMessage, now time.Time) domain.Event {
	channel := channelName(m.Channel)
	timestamp := orNow(m.Time, now)
	user := m.User.DisplayName
	if user == "" {
		user = m.User.Name
	}

	switch m.MsgID {
	case "raid":
		return domain.Raid{
			Channel:       channel,
			RaiderName:    m.MsgParams["msg-param-displayName"],
			SystemMessage: m.SystemMsg,
			Timestamp:     timestamp,
			ViewerCount:   paramInt(m.MsgParams, "msg-param-viewerCount"),
		}
	case "ritual":
		return domain.Ritual{
			Channel:       channel,
			RitualName:    m.MsgParams["msg-param-ritual-name"],
			SystemMessage: m.SystemMsg,
			Timestamp:     timestamp,
			User:          user,
		}
	}

	sub := domain.Sub{
		Channel:       channel,
		PlanName:      m.MsgParams["msg-param-sub-plan-name"],
		SystemMessage: m.SystemMsg,
		Timestamp:     timestamp,
		User:          user,
		UserMessage:   m.Message,
	}
	switch m.MsgID {
	case "sub":
		sub.Kind = domain.SubNew
	case "resub":
		sub.Kind = domain.SubRenewal
		sub.Months = paramInt(m.MsgParams, "msg-param-cumulative-months")
		if sub.Months == 0 {
			sub.Months = paramInt(m.MsgParams, "msg-param-months")
		}
	case "subgift":
		sub.Kind = domain.SubGiftedSingle
		sub.RecipientDisplayName = m.MsgParams["msg-param-recipient-display-name"]
		sub.SenderCount = paramInt(m.MsgParams, "msg-param-sender-count")
	case "submysterygift":
		sub.Kind = domain.SubGiftedMystery
		sub.MassGiftCount = paramInt(m.MsgParams, "msg-param-mass-gift-count")
		sub.SenderCount = paramInt(m.MsgParams, "msg-param-sender-count")
	default:
		sub.Kind = domain.SubUnknown
	}
	return sub
}

// parseHostTarget reads "HOSTTARGET #hosting :<target|-> [viewers]"
func parseHostTarget(raw string) (domain.Host, bool) {
	idx := strings.Index(raw, "HOSTTARGET ")
	if idx < 0 {
		return domain.Host{}, false
	}
	fields := strings.Fields(strings.Replace(raw[idx+len("HOSTTARGET "):], ":", "", 1))
	if len(fields) < 2 {
		return domain.Host{}, false
	}

	host := domain.Host{
		Hosting:    channelName(fields[0]),
		IsStarting: fields[1] != "-",
	}
	if host.IsStarting {
		host.BeingHosted = fields[1]
	}
	if len(fields) > 2 {
		host.Viewers, _ = strconv.Atoi(fields[2])
	}
	return host, true
}

// ircCommand extracts the command word from a raw line, skipping tags and prefix
func ircCommand(line string) string {
	rest := line
	for _, marker := range []byte{'@', ':'} {
		if len(rest) > 0 && rest[0] == marker {
			i := strings.IndexByte(rest, ' ')
			if i < 0 {
				return ""
			}
			rest = strings.TrimLeft(rest[i+1:], " ")
		}
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func channelName(name string) string {
	if name == "" {
		return ""
	}
	return "#" + strings.TrimPrefix(name, "#")
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

// sentTime reads the tmi-sent-ts tag, for messages the library leaves untimed
func sentTime(tags map[string]string, now time.Time) time.Time {
	ms, err := strconv.ParseInt(tags["tmi-sent-ts"], 10, 64)
	if err != nil || ms <= 0 {
		return now
	}
	return time.UnixMilli(ms)
}

func paramInt(params map[string]string, key string) int {
	n, _ := strconv.Atoi(params[key])
	return n
}

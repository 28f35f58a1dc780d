package services

import (
	"fmt"
	"time"

	"github.com/lurkerbot/lurker/internal/domain"
)

// FormatEvent maps an event to the level and text of its diagnostic record
func FormatEvent(event domain.Event) (domain.Level, string) {
	switch e := event.(type) {
	case domain.Doom:
		return domain.LevelSignal, "** SERVER DISCONNECT IMMINENT **"
	case domain.LoggedIn:
		return domain.LevelActivity, "Logged in."
	case domain.LoggedOut:
		return domain.LevelActivity, "Logged out."
	case domain.Membership:
		return formatMembership(e)
	case domain.Message:
		return formatMessage(e)
	case domain.Notice:
		return formatNotice(e)
	case domain.Host:
		return formatHost(e)
	case domain.RoomModeChange:
		return domain.LevelActivity, fmt.Sprintf("[%s] Room mode %s: %d", e.Channel, e.Mode, e.Parameter)
	case domain.Clear:
		return formatClear(e)
	case domain.Sub:
		return formatSub(e)
	case domain.Raid:
		return domain.LevelActivity, fmt.Sprintf("[%s] RAID from %s (%d viewers): %s",
			e.Channel, e.RaiderName, e.ViewerCount, e.SystemMessage)
	case domain.Ritual:
		return domain.LevelActivity, fmt.Sprintf("[%s] RITUAL %s by %s: %s",
			e.Channel, e.RitualName, e.User, e.SystemMessage)
	default:
		return domain.LevelError, fmt.Sprintf("** Unknown event %T **", event)
	}
}

// FormatTimestamp renders t as HH:MM:SS.mmm in local time
func FormatTimestamp(t time.Time) string {
	return t.Local().Format("15:04:05.000")
}

func formatMembership(m domain.Membership) (domain.Level, string) {
	sign := "-"
	if m.Joined {
		sign = "+"
	}
	return domain.LevelActivity, fmt.Sprintf("[%s] %s%s", m.Channel, sign, m.User)
}

func formatMessage(m domain.Message) (domain.Level, string) {
	name := m.DisplayName
	if name == "" {
		name = m.User
	}

	var body string
	if m.IsAction {
		body = fmt.Sprintf("** %s %s **", name, m.Content)
	} else {
		body = fmt.Sprintf("%s: %s", name, m.Content)
	}

	level := domain.LevelActivity
	if m.Bits > 0 {
		level++
		body = fmt.Sprintf("%s (%d bits)", body, m.Bits)
	}

	return level, fmt.Sprintf("[%s %s] %s", FormatTimestamp(m.Timestamp), m.Channel, body)
}

func formatNotice(n domain.Notice) (domain.Level, string) {
	if n.Channel == "" {
		return domain.LevelActivity, fmt.Sprintf("** Server NOTICE %s: %s **", n.ID, n.Message)
	}
	return domain.LevelActivity, fmt.Sprintf("[%s] NOTICE %s: %s", n.Channel, n.ID, n.Message)
}

func formatHost(h domain.Host) (domain.Level, string) {
	if h.IsStarting {
		return domain.LevelActivity, fmt.Sprintf("[%s] Now hosting %s (%d viewers)", h.Hosting, h.BeingHosted, h.Viewers)
	}
	return domain.LevelActivity, fmt.Sprintf("[%s] No longer hosting anyone", h.Hosting)
}

func formatClear(c domain.Clear) (domain.Level, string) {
	switch c.Kind {
	case domain.ClearAll:
		return domain.LevelActivity, fmt.Sprintf("[%s] ** CLEAR CHAT **", c.Channel)
	case domain.ClearSingleMessage:
		return domain.LevelActivity, fmt.Sprintf("[%s] Message from %s has been deleted (was %q)",
			c.Channel, c.User, c.OffendingContent)
	case domain.ClearTimeout:
		return domain.LevelActivity, fmt.Sprintf("[%s] User %s has been timed out for %d seconds%s",
			c.Channel, c.User, c.DurationSeconds, reasonSuffix(c.Reason))
	case domain.ClearBan:
		return domain.LevelActivity, fmt.Sprintf("[%s] User %s has been banned from the channel%s",
			c.Channel, c.User, reasonSuffix(c.Reason))
	default:
		return domain.LevelError, fmt.Sprintf("[%s %s] ** Unknown type of clear announcement **",
			FormatTimestamp(c.Timestamp), c.Channel)
	}
}

func reasonSuffix(reason string) string {
	if reason == "" {
		return ""
	}
	return "; reason: " + reason
}

func formatSub(s domain.Sub) (domain.Level, string) {
	switch s.Kind {
	case domain.SubNew:
		return domain.LevelActivity, fmt.Sprintf("[%s] SUB (new: %s) %s: %s [%s]",
			s.Channel, s.PlanName, s.User, s.SystemMessage, s.UserMessage)
	case domain.SubRenewal:
		return domain.LevelActivity, fmt.Sprintf("[%s] SUB (renew %d: %s) %s: %s [%s]",
			s.Channel, s.Months, s.PlanName, s.User, s.SystemMessage, s.UserMessage)
	case domain.SubGiftedSingle:
		return domain.LevelActivity, fmt.Sprintf("[%s] SUB (gift from %s [%d sent total]: %s) %s: %s [%s]",
			s.Channel, s.User, s.SenderCount, s.PlanName, s.RecipientDisplayName, s.SystemMessage, s.UserMessage)
	case domain.SubGiftedMystery:
		return domain.LevelActivity, fmt.Sprintf("[%s] SUB (mystery gift to %d users from %s [%d sent total]) %s [%s]",
			s.Channel, s.MassGiftCount, s.User, s.SenderCount, s.SystemMessage, s.UserMessage)
	default:
		return domain.LevelError, fmt.Sprintf("[%s %s] ** Unknown type of sub announcement **",
			FormatTimestamp(s.Timestamp), s.Channel)
	}
}

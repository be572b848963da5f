package notify

import (
	"fmt"
	"time"

	"mythic-notifier/internal/formatting"
	"mythic-notifier/internal/metrics"
	"mythic-notifier/internal/schedule"
	"mythic-notifier/internal/storage"
)

// Notifier delivers one dungeon-summary DM per invocation: exactly one
// outbound message on every successful path, none when a step fails.
type Notifier struct {
	session DiscordSession
	client  ProfileClient
	now     func() time.Time
}

func NewNotifier(session DiscordSession, client ProfileClient) *Notifier {
	return &Notifier{
		session: session,
		client:  client,
		now:     time.Now,
	}
}

// Notify fetches the character's recent runs, filters them against the
// current weekly reset boundary and DMs the user a summary. Transport
// failures are not retried; the error surfaces to the scheduled job, which
// logs it and waits for the next firing.
func (n *Notifier) Notify(userID string, ch storage.Character) error {
	channel, err := n.session.UserChannelCreate(userID)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("user_error").Inc()
		return fmt.Errorf("resolve DM channel for user %s: %w", userID, err)
	}

	profile, err := n.client.GetProfile(ch.Server, ch.Name)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("fetch_error").Inc()
		return fmt.Errorf("fetch profile %s: %w", ch.Key(), err)
	}

	var msg string
	if profile.HasRecentRuns() {
		runs := schedule.RunsAfter(profile.MythicPlusRecentRuns, schedule.LastReset(n.now()))
		if len(runs) > 0 {
			msg = formatting.MsgRunsCompleted(ch.Name, ch.Server, len(runs))
		} else {
			msg = formatting.MsgNoRuns(ch.Name, ch.Server)
		}
	} else {
		msg = formatting.MsgNoData(ch.Name, ch.Server)
	}

	if _, err := n.session.ChannelMessageSend(channel.ID, msg); err != nil {
		metrics.NotificationsSent.WithLabelValues("send_error").Inc()
		return fmt.Errorf("send DM to user %s: %w", userID, err)
	}

	metrics.NotificationsSent.WithLabelValues("ok").Inc()
	return nil
}

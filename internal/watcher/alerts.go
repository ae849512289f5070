package watcher

import (
	"fmt"
	"time"
)

// trafficSpikeThreshold is how many new events in one cycle count as a
// spike worth flagging.
const trafficSpikeThreshold = 50

// Compare detects notable changes between two watch states and returns alerts.
func Compare(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	// New visitor sessions appeared.
	newSessions := 0
	for id := range curr.Sessions {
		if !prev.Sessions[id] {
			newSessions++
		}
	}
	if newSessions > 0 {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "New visitors",
			Message: fmt.Sprintf("%d new session(s), %d total in the journal tail", newSessions, len(curr.Sessions)),
			Time:    now,
		})
	}

	// Someone took the resume.
	if curr.ResumeDownloads > prev.ResumeDownloads {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Resume downloaded",
			Message: fmt.Sprintf("%d download(s) this cycle", curr.ResumeDownloads-prev.ResumeDownloads),
			Time:    now,
		})
	}

	// Someone followed through to LinkedIn.
	if curr.LinkedInVisits > prev.LinkedInVisits {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "LinkedIn opened",
			Message: fmt.Sprintf("%d visit(s) this cycle", curr.LinkedInVisits-prev.LinkedInVisits),
			Time:    now,
		})
	}

	// A visitor read essentially the whole page.
	if curr.DeepScrolls > prev.DeepScrolls {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Deep read",
			Message: fmt.Sprintf("%d visitor scroll(s) past 90%% depth", curr.DeepScrolls-prev.DeepScrolls),
			Time:    now,
		})
	}

	// Another call to action was dismissed. Dismissals are permanent, so a
	// growing set shrinks what can ever be shown again.
	if curr.Dismissals > prev.Dismissals {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Call to action dismissed",
			Message: fmt.Sprintf("%d of the fixed options are now permanently hidden", curr.Dismissals),
			Time:    now,
		})
	}

	// Event volume spiked this cycle.
	if currNew := curr.EventCount - prev.EventCount; currNew > trafficSpikeThreshold {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Traffic spike",
			Message: fmt.Sprintf("%d new events in one cycle", currNew),
			Time:    now,
		})
	}

	// A brand-new event type showed up, which usually means a frontend
	// change landed.
	for eventType, count := range curr.EventsByType {
		if _, existed := prev.EventsByType[eventType]; !existed && count > 0 {
			alerts = append(alerts, Alert{
				Level:   "info",
				Title:   fmt.Sprintf("New event type: %s", eventType),
				Message: fmt.Sprintf("First appearance with %d occurrence(s)", count),
				Time:    now,
			})
		}
	}

	return alerts
}

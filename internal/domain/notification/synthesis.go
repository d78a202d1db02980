package notification

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultTitle  = "Maintenance update"
	fallbackActor = "Someone"
	fallbackEvent = "update"
	fallbackTitle = "a maintenance ticket"
)

var titles = map[string]string{
	"REQUESTED":        "New maintenance request",
	"ACCEPTED":         "Maintenance request accepted",
	"REASSIGNED":       "Maintenance ticket reassigned",
	"ONGOING":          "Maintenance in progress",
	"FOR_VERIFICATION": "Maintenance awaiting verification",
	"COMPLETED":        "Maintenance completed",
	"CANCELLED":        "Maintenance request cancelled",
	"REMARK_ADDED":     "New remark on maintenance ticket",
}

// Title maps an event type to its headline. Unknown types get a generic title.
func Title(eventType string) string {
	if t, ok := titles[strings.ToUpper(strings.TrimSpace(eventType))]; ok {
		return t
	}
	return defaultTitle
}

// Message renders "{actor} sent a {event} in {ticket}.", substituting
// fallbacks for blank parts.
func Message(eventType, actorName, ticketTitle string) string {
	actor := strings.TrimSpace(actorName)
	if actor == "" {
		actor = fallbackActor
	}
	event := strings.TrimSpace(eventType)
	if event == "" {
		event = fallbackEvent
	} else {
		event = cases.Lower(language.English).String(event)
	}
	title := strings.TrimSpace(ticketTitle)
	if title == "" {
		title = fallbackTitle
	}
	return actor + " sent a " + event + " in " + title + "."
}

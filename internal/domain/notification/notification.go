// Package notification projects the maintenance event log into a per-account
// notification feed. Nothing here is stored except read markers: titles and
// messages are recomputed from events on every read.
package notification

import (
	"errors"
	"strings"
	"time"
)

// Type names a notification source.
type Type string

const (
	TypeMaintenance Type = "maintenance"
	TypeSensor      Type = "sensor"
	TypeCollection  Type = "collection"
)

// ErrUnsupportedType is returned for feeds this service does not project.
var ErrUnsupportedType = errors.New("unsupported notification type")

// ParseType accepts only the feeds backed by an event log in this service.
// A blank type selects the maintenance feed.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t == "" || t == TypeMaintenance {
		return TypeMaintenance, nil
	}
	return "", ErrUnsupportedType
}

func (t Type) String() string {
	return string(t)
}

// Item is one feed entry, keyed by the id of the event it was derived from.
type Item struct {
	ID          uint
	Type        Type
	TicketID    uint
	EventType   string
	TicketTitle string
	ActorName   string
	CreatedAt   time.Time
	ReadAt      *time.Time
}

// Read reports whether the viewing account has a read marker for the item.
func (i *Item) Read() bool {
	return i.ReadAt != nil
}

// Title returns the synthesized headline.
func (i *Item) Title() string {
	return Title(i.EventType)
}

// Message returns the synthesized body.
func (i *Item) Message() string {
	return Message(i.EventType, i.ActorName, i.TicketTitle)
}

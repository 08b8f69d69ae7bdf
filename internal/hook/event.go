// Package hook implements the notification hook pipeline: parse the event
// from stdin, decide whether to speak, and map every outcome to an exit code.
package hook

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// EventNotification is the only hook event kind that triggers speech.
const EventNotification = "Notification"

var (
	// ErrBadJSON means stdin was not valid JSON.
	ErrBadJSON = errors.New("hook input is not valid JSON")
	// ErrNotObject means the top-level JSON value was not an object.
	ErrNotObject = errors.New("hook input is not a JSON object")
	// ErrBadMessage means a Notification carried no message string.
	ErrBadMessage = errors.New("notification has no message string")
)

// Event is the validated hook payload. Message is populated (and trimmed)
// only for Notification events; for any other kind the rest of the payload
// is irrelevant and never inspected.
type Event struct {
	Name    string
	Message string
}

func (e Event) IsNotification() bool { return e.Name == EventNotification }

// Parse validates a raw hook payload. Hosts fire the same hook for many
// event kinds, so an unrecognized hook_event_name is not an error;
// malformed input is.
func Parse(data []byte) (Event, error) {
	if !gjson.ValidBytes(data) {
		return Event{}, ErrBadJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Event{}, ErrNotObject
	}

	var ev Event
	if name := root.Get("hook_event_name"); name.Type == gjson.String {
		ev.Name = name.String()
	}
	if !ev.IsNotification() {
		return ev, nil
	}

	msg := root.Get("message")
	if msg.Type != gjson.String {
		return Event{}, ErrBadMessage
	}
	ev.Message = strings.TrimSpace(msg.String())
	return ev, nil
}

package stream

import "fmt"

// Event is the data form of one Handler call.
//
// Only the field matching Type is meaningful: Key for EventKey, String
// for EventString and so on.
type Event struct {
	Type EventType

	Key    string
	String string
	Int32  int32
	Int64  int64
	Double float64
	Bool   bool
}

// IsValueStart returns true if this event starts a value (as opposed to a
// key or an end marker).
func (e *Event) IsValueStart() bool {
	return e.Type.IsValueStart()
}

// Emit makes the Handler call described by e.
func (e *Event) Emit(h Handler) error {
	switch e.Type {
	case EventNull:
		return h.Null()
	case EventBool:
		return h.Bool(e.Bool)
	case EventInt32:
		return h.Int32(e.Int32)
	case EventInt64:
		return h.Int64(e.Int64)
	case EventDouble:
		return h.Double(e.Double)
	case EventString:
		return h.String(e.String)
	case EventStartObject:
		return h.StartObject()
	case EventKey:
		return h.Key(e.Key)
	case EventEndObject:
		return h.EndObject()
	case EventStartArray:
		return h.StartArray()
	case EventEndArray:
		return h.EndArray()
	default:
		return fmt.Errorf("unknown event type %d", int(e.Type))
	}
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventNull EventType = iota
	EventBool
	EventInt32
	EventInt64
	EventDouble
	EventString
	EventStartObject
	EventKey
	EventEndObject
	EventStartArray
	EventEndArray
)

func (t EventType) String() string {
	switch t {
	case EventNull:
		return "Null"
	case EventBool:
		return "Bool"
	case EventInt32:
		return "Int32"
	case EventInt64:
		return "Int64"
	case EventDouble:
		return "Double"
	case EventString:
		return "String"
	case EventStartObject:
		return "StartObject"
	case EventKey:
		return "Key"
	case EventEndObject:
		return "EndObject"
	case EventStartArray:
		return "StartArray"
	case EventEndArray:
		return "EndArray"
	default:
		return "Unknown"
	}
}

// IsValueStart is true for scalars and the two start events.
func (t EventType) IsValueStart() bool {
	switch t {
	case EventKey, EventEndObject, EventEndArray:
		return false
	default:
		return t >= EventNull && t <= EventEndArray
	}
}

func (t EventType) IsEnd() bool {
	return t == EventEndObject || t == EventEndArray
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"Null":        EventNull,
		"Bool":        EventBool,
		"Int32":       EventInt32,
		"Int64":       EventInt64,
		"Double":      EventDouble,
		"String":      EventString,
		"StartObject": EventStartObject,
		"Key":         EventKey,
		"EndObject":   EventEndObject,
		"StartArray":  EventStartArray,
		"EndArray":    EventEndArray,
	}[k]
	if !ok {
		return fmt.Errorf("unknown event type %q", k)
	}
	*t = pt
	return nil
}

package stream

// Recorder is a Handler that keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) add(e Event) error {
	r.Events = append(r.Events, e)
	return nil
}

func (r *Recorder) Null() error            { return r.add(Event{Type: EventNull}) }
func (r *Recorder) Bool(b bool) error      { return r.add(Event{Type: EventBool, Bool: b}) }
func (r *Recorder) Int32(i int32) error    { return r.add(Event{Type: EventInt32, Int32: i}) }
func (r *Recorder) Int64(i int64) error    { return r.add(Event{Type: EventInt64, Int64: i}) }
func (r *Recorder) Double(f float64) error { return r.add(Event{Type: EventDouble, Double: f}) }
func (r *Recorder) String(s string) error  { return r.add(Event{Type: EventString, String: s}) }
func (r *Recorder) StartObject() error     { return r.add(Event{Type: EventStartObject}) }
func (r *Recorder) Key(k string) error     { return r.add(Event{Type: EventKey, Key: k}) }
func (r *Recorder) EndObject() error       { return r.add(Event{Type: EventEndObject}) }
func (r *Recorder) StartArray() error      { return r.add(Event{Type: EventStartArray}) }
func (r *Recorder) EndArray() error        { return r.add(Event{Type: EventEndArray}) }

// Reset discards recorded events, keeping the storage.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Replay emits events to h in order, stopping at the first error.
func Replay(events []Event, h Handler) error {
	for i := range events {
		if err := events[i].Emit(h); err != nil {
			return err
		}
	}
	return nil
}

package stream

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-kit/log"
)

func sample() []Event {
	// {"a": [true, null, 1, 2, 0.5, "s"]}
	return []Event{
		{Type: EventStartObject},
		{Type: EventKey, Key: "a"},
		{Type: EventStartArray},
		{Type: EventBool, Bool: true},
		{Type: EventNull},
		{Type: EventInt32, Int32: 1},
		{Type: EventInt64, Int64: 2},
		{Type: EventDouble, Double: 0.5},
		{Type: EventString, String: "s"},
		{Type: EventEndArray},
		{Type: EventEndObject},
	}
}

func TestRecordReplay(t *testing.T) {
	evs := sample()
	rec := &Recorder{}
	if err := Replay(evs, rec); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rec.Events, evs) {
		t.Errorf("recorded %v, want %v", rec.Events, evs)
	}
	rec.Reset()
	if len(rec.Events) != 0 {
		t.Errorf("reset left %d events", len(rec.Events))
	}
}

type stopAt struct {
	Forward
	n int
}

func (s *stopAt) Bool(b bool) error {
	s.n++
	return ErrStop
}

func TestReplayStops(t *testing.T) {
	rec := &Recorder{}
	h := &stopAt{Forward: Forward{Next: rec}}
	err := Replay(sample(), h)
	if !errors.Is(err, ErrStop) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
	if len(rec.Events) != 3 {
		t.Errorf("expected 3 forwarded events, got %d", len(rec.Events))
	}
	if h.n != 1 {
		t.Errorf("expected one stop call, got %d", h.n)
	}
}

func TestTee(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	if err := Replay(sample(), Tee(a, b)); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Events, b.Events) || len(a.Events) != len(sample()) {
		t.Errorf("tee mismatch: %v %v", a.Events, b.Events)
	}

	c := &Recorder{}
	err := Replay(sample(), Tee(&stopAt{Forward: Forward{Next: &Recorder{}}}, c))
	if !errors.Is(err, ErrStop) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
	if len(c.Events) != 3 {
		t.Errorf("second handler should not see the stopping event, got %d events", len(c.Events))
	}
}

func TestEventTypeText(t *testing.T) {
	for ty := EventNull; ty <= EventEndArray; ty++ {
		d, err := ty.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got EventType
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != ty {
			t.Errorf("%s: round trip gave %s", ty, got)
		}
	}
	var ty EventType
	if err := ty.UnmarshalText([]byte("Float")); err == nil {
		t.Error("expected error for unknown event type")
	}
}

func TestIsValueStart(t *testing.T) {
	for _, e := range sample() {
		want := e.Type != EventKey && e.Type != EventEndArray && e.Type != EventEndObject
		if e.IsValueStart() != want {
			t.Errorf("%s: IsValueStart %v", e.Type, !want)
		}
	}
}

func TestTrace(t *testing.T) {
	buf := &bytes.Buffer{}
	rec := &Recorder{}
	tr := NewTrace(log.NewLogfmtLogger(buf), rec)
	if err := Replay(sample(), tr); err != nil {
		t.Fatal(err)
	}
	if len(rec.Events) != len(sample()) {
		t.Errorf("trace forwarded %d events", len(rec.Events))
	}
	out := buf.String()
	for _, want := range []string{"event=StartObject", "path=a[5]", "value=s", "event=EndObject"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}

	// trace alone
	buf.Reset()
	if err := Replay(sample(), NewTrace(log.NewLogfmtLogger(buf), nil)); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != len(sample()) {
		t.Errorf("expected one line per event:\n%s", buf.String())
	}
}

package stream

import (
	"strconv"
	"strings"
)

// State provides minimal stack/state/path management.
//
// It tracks the open objects and arrays of a single root value and
// rejects events that cannot occur at the current position. Writers
// consult it before emitting to decide separators.
type State struct {
	stack []item
	done  bool
}

type kind uint8

const (
	obj kind = iota + 1
	arr
)

type item struct {
	kind   kind
	n      int
	key    string
	hasKey bool
}

// NewState creates a new State for tracking structure state.
func NewState() *State {
	return &State{}
}

func (s *State) pop() {
	n := len(s.stack)
	s.stack = s.stack[:n-1]
	if n == 1 {
		s.done = true
	}
}

func (s *State) current() *item {
	n := len(s.stack)
	return &s.stack[n-1]
}

// value records the start of a value at the current position.
func (s *State) value() error {
	if len(s.stack) == 0 {
		if s.done {
			return s.errorf(ErrRootNotSingle)
		}
		return nil
	}
	cur := s.current()
	if cur.kind == obj {
		if !cur.hasKey {
			return s.errorf(ErrMissingKey)
		}
		cur.hasKey = false
	}
	cur.n++
	return nil
}

func (s *State) errorf(err error) error {
	return &Error{Err: err, Path: s.CurrentPath()}
}

// ProcessEvent processes an event and updates state/path tracking.
// Call this for each event in order. On error the state is unchanged.
func (s *State) ProcessEvent(event *Event) error {
	return s.Process(event.Type, event.Key)
}

// Process is ProcessEvent without constructing an Event. key is only
// used for EventKey.
func (s *State) Process(t EventType, key string) error {
	switch t {
	case EventStartObject, EventStartArray:
		if err := s.value(); err != nil {
			return err
		}
		k := obj
		if t == EventStartArray {
			k = arr
		}
		s.stack = append(s.stack, item{kind: k})

	case EventEndObject, EventEndArray:
		if len(s.stack) == 0 {
			return s.errorf(ErrDepth)
		}
		cur := s.current()
		if (t == EventEndObject) != (cur.kind == obj) {
			return s.errorf(ErrMismatch)
		}
		if cur.hasKey {
			return s.errorf(ErrKeyNoValue)
		}
		s.pop()

	case EventKey:
		if len(s.stack) == 0 || s.current().kind != obj {
			return s.errorf(ErrKeyNotInObject)
		}
		cur := s.current()
		if cur.hasKey {
			return s.errorf(ErrKeyAfterKey)
		}
		cur.hasKey = true
		cur.key = key

	default:
		if err := s.value(); err != nil {
			return err
		}
		if len(s.stack) == 0 {
			s.done = true
		}
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Count returns the number of values started so far in the innermost
// open object or array, or 0 at top level.
func (s *State) Count() int {
	if len(s.stack) == 0 {
		return 0
	}
	return s.current().n
}

// HasKey reports whether the innermost object has a key awaiting its
// value.
func (s *State) HasKey() bool {
	if len(s.stack) == 0 {
		return false
	}
	return s.current().hasKey
}

// Done reports whether a complete root value has been processed.
func (s *State) Done() bool {
	return s.done
}

// Reset empties the state so another root value may follow.
func (s *State) Reset() {
	s.stack = s.stack[:0]
	s.done = false
}

// CurrentPath returns the current kinded path (e.g., "", "key", "key[0]").
//
// Object frames contribute their latest key, array frames the index of
// the latest element. Frames with neither contribute nothing.
func (s *State) CurrentPath() string {
	var b strings.Builder
	for i := range s.stack {
		it := &s.stack[i]
		switch it.kind {
		case obj:
			if it.n == 0 && !it.hasKey {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(it.key)
		case arr:
			if it.n == 0 {
				continue
			}
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(it.n - 1))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// IsInObject returns true if currently inside an object.
func (s *State) IsInObject() bool {
	return len(s.stack) != 0 && s.current().kind == obj
}

// IsInArray returns true if currently inside an array.
func (s *State) IsInArray() bool {
	return len(s.stack) != 0 && s.current().kind == arr
}

// CurrentKey returns the current object key (if in object).
func (s *State) CurrentKey() (string, bool) {
	if !s.IsInObject() {
		return "", false
	}
	cur := s.current()
	if cur.n == 0 && !cur.hasKey {
		return "", false
	}
	return cur.key, true
}

// CurrentIndex returns the index of the latest array element (if in array).
func (s *State) CurrentIndex() (int, bool) {
	if !s.IsInArray() {
		return 0, false
	}
	cur := s.current()
	if cur.n == 0 {
		return 0, false
	}
	return cur.n - 1, true
}

package dom

import (
	"errors"
	"fmt"

	"github.com/signadot/tinyjson/stream"
)

var ErrContract = errors.New("document contract violation")

// ContractError is the panic value of a Document receiving an event that
// cannot occur at its position.
type ContractError struct {
	Event stream.EventType
	Msg   string
}

func (e *ContractError) Unwrap() error {
	return ErrContract
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrContract, e.Event, e.Msg)
}

package iso7816

import (
	"fmt"
)

// SESSION & PROTOCOL LOGIC:
// The Session acts as a high-level driver over the physical connection.
// It implements the automatic handling of ISO 7816-3 transport behaviors that
// are exposed to the application layer in T=0 protocols:
//
// 1. "61 XX" (Response Available):
//    The card indicates that XX bytes are waiting. The session sends a
//    GET RESPONSE command to retrieve them.
//
// 2. "6C XX" (Wrong Length):
//    The card indicates that the expected length (Le) was incorrect and
//    suggests XX. The session re-sends the original command with Le = XX.
//
// Each follow-up is performed at most ONCE per exchange. A card that answers
// the corrected command with another dynamic status gets that status returned
// to the caller unresolved; SIM identity files never need more than one step.
//
// A Session wraps a single exclusive card channel. The card protocol has no
// pipelining, so a Session must not be shared between goroutines.

// Transmitter abstracts the physical card connection.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// Session manages the high-level communication with the card.
type Session struct {
	card Transmitter
}

// NewSession creates a new Session over an already-connected card channel.
func NewSession(card Transmitter) *Session {
	return &Session{card: card}
}

// Exchange transmits a command and resolves transport follow-ups (61xx, 6Cxx).
// The returned Trace holds every transaction performed to fulfill the request;
// its final transaction carries the effective outcome.
func (s *Session) Exchange(cmd *CommandAPDU) (Trace, error) {
	tx, err := s.transmitOne(cmd)
	if err != nil {
		return nil, err
	}

	trace := Trace{tx}

	sw := tx.Response.Status
	var followUp *CommandAPDU

	switch {
	case sw.SW1() == 0x61:
		// More data available: fetch it on the same channel.
		followUp = NewCommandAPDU(cmd.Cla, INS_GET_RESPONSE, 0x00, 0x00, nil, int(sw.SW2()))

	case sw.IsWrongLength():
		// Reissue the original command with the corrected Le.
		// Clone to avoid mutating the caller's command.
		corrected := *cmd
		corrected.Ne = int(sw.SW2())
		followUp = &corrected
	}

	if followUp == nil {
		return trace, nil
	}

	next, err := s.transmitOne(followUp)
	if err != nil {
		return trace, err
	}

	return append(trace, next), nil
}

// transmitOne performs a single command/response round trip.
func (s *Session) transmitOne(cmd *CommandAPDU) (Transaction, error) {
	rawCmd, err := cmd.Bytes()
	if err != nil {
		return Transaction{}, fmt.Errorf("encoding error: %w", err)
	}

	rawResp, err := s.card.Transmit(rawCmd)
	if err != nil {
		return Transaction{}, fmt.Errorf("transmission error: %w", err)
	}

	resp, err := ParseResponseAPDU(rawResp)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{Command: cmd, Response: resp}, nil
}

package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/gregLibert/sim-reader/pkg/iso7816"
)

// Outcome classifies a selection attempt. Callers branch on the
// success/failure split only; the raw status word is kept for diagnostics.
type Outcome int

const (
	// SelectFailed: non-success status word, short response, or transport
	// failure. The file is not selected.
	SelectFailed Outcome = iota

	// SelectOK: status 0x9000.
	SelectOK

	// SelectWarning: card-specific status in the 0x6XXX range. The file is
	// nonetheless selected and usable; legacy SIM profiles answer this way
	// routinely.
	SelectWarning
)

func (o Outcome) String() string {
	switch o {
	case SelectOK:
		return "success"
	case SelectWarning:
		return "success (warning state)"
	default:
		return "failed"
	}
}

// Strategy identifies which selection method reached the file.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyLegacy
	StrategyPath
)

func (s Strategy) String() string {
	switch s {
	case StrategyLegacy:
		return "legacy"
	case StrategyPath:
		return "path"
	default:
		return "none"
	}
}

// SelectionResult is the outcome of a selection attempt. On success the
// targeted file is the card's current file, ready for a binary read.
type SelectionResult struct {
	Outcome  Outcome
	Strategy Strategy
	SW       iso7816.StatusWord
	Err      error // transport or encoding failure, nil otherwise
}

// Selected reports whether the file is now current (success or warning state).
func (r SelectionResult) Selected() bool {
	return r.Outcome != SelectFailed
}

// classify maps a status word to an Outcome: exactly 0x9000 is a clean
// success, anything in the 0x6XXX family is the usable warning state, and
// everything else is a failure.
func classify(sw iso7816.StatusWord) Outcome {
	switch {
	case sw == iso7816.SW_NO_ERROR:
		return SelectOK
	case sw.InWarningFamily():
		return SelectWarning
	default:
		return SelectFailed
	}
}

// Selector selects files on the card, probing the legacy flat strategy
// before the absolute-path strategy.
type Selector struct {
	session *iso7816.Session
}

// NewSelector creates a Selector over an established session.
func NewSelector(session *iso7816.Session) *Selector {
	return &Selector{session: session}
}

// SelectID attempts a legacy select-by-identifier.
func (s *Selector) SelectID(id iso7816.FileID) SelectionResult {
	res := s.attempt(iso7816.SelectFileID(id), StrategyLegacy)
	logrus.Debugf("select %s legacy: %s", id, describeResult(res))
	return res
}

// SelectPath attempts a select by absolute path from the Master File.
func (s *Selector) SelectPath(path Path) SelectionResult {
	res := s.attempt(iso7816.SelectPath(path), StrategyPath)
	logrus.Debugf("select %v path: %s", path, describeResult(res))
	return res
}

// Select resolves a FileRef, trying legacy selection first and falling back
// to the absolute path. The returned result carries the winning strategy.
func (s *Selector) Select(ref FileRef) SelectionResult {
	if res := s.SelectID(ref.ID); res.Selected() {
		return res
	}
	return s.SelectPath(ref.Path)
}

func (s *Selector) attempt(cmd *iso7816.CommandAPDU, strategy Strategy) SelectionResult {
	trace, err := s.session.Exchange(cmd)
	if err != nil {
		return SelectionResult{Outcome: SelectFailed, Strategy: strategy, Err: err}
	}

	sw := trace.Last().Response.Status
	res := SelectionResult{
		Outcome:  classify(sw),
		Strategy: strategy,
		SW:       sw,
	}
	if !res.Selected() {
		// No winning strategy to report on failure.
		res.Strategy = StrategyNone
	}
	return res
}

func describeResult(res SelectionResult) string {
	if res.Err != nil {
		return "transport error: " + res.Err.Error()
	}
	return res.Outcome.String() + " " + res.SW.Verbose()
}

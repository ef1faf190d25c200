package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gregLibert/sim-reader/pkg/iso7816"
)

// maxRecordLen bounds the payload accepted from a single binary read.
// Observed card responses stay well below this.
const maxRecordLen = 1024

// RawRecord is the payload of a successful binary read, paired with the
// length originally requested (the two differ when the card corrected the
// length through a 6C XX status).
type RawRecord struct {
	Data      []byte
	Requested int
}

// Len returns the actual payload length.
func (r RawRecord) Len() int {
	return len(r.Data)
}

// BinaryReader reads the content of the currently selected transparent file.
// It is only valid immediately after a successful selection.
type BinaryReader struct {
	session *iso7816.Session
}

// NewBinaryReader creates a BinaryReader over an established session.
func NewBinaryReader(session *iso7816.Session) *BinaryReader {
	return &BinaryReader{session: session}
}

// ReadBinary reads up to maxLength bytes from offset 0 of the current file.
//
// A '6C XX' answer (wrong length) is resolved by a single reissue with the
// corrected length; that correction is the normal path on real cards, which
// commonly reject the initial guess. No further retries are performed: any
// other non-success status, and any transport error, fails the read.
func (r *BinaryReader) ReadBinary(maxLength int) (RawRecord, error) {
	if maxLength < 1 || maxLength > 255 {
		return RawRecord{}, fmt.Errorf("%w: requested length %d out of range 1..255", ErrReadFailed, maxLength)
	}

	trace, err := r.session.Exchange(iso7816.ReadBinary(0, maxLength))
	if err != nil {
		return RawRecord{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	final := trace.Last().Response
	if final.Status != iso7816.SW_NO_ERROR {
		return RawRecord{}, fmt.Errorf("%w: %s", ErrReadFailed, final.Status.Verbose())
	}

	if len(final.Data) > maxRecordLen {
		return RawRecord{}, fmt.Errorf("%w: %d byte payload exceeds record bound", ErrReadFailed, len(final.Data))
	}

	logrus.Debugf("read binary: %d bytes (%d requested, %d round trips)", len(final.Data), maxLength, len(trace))

	return RawRecord{Data: final.Data, Requested: maxLength}, nil
}

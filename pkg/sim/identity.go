package sim

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"

	"github.com/gregLibert/sim-reader/pkg/iso7816"
)

// Per-field read lengths requested before the card's 6C correction kicks in.
// The exact guess barely matters; the card answers with the real file length.
const (
	identityReadLen = 20
	spnReadLen      = 64
)

// maxSPNLen caps the rendered service provider name (TS 51.011 allots the
// file 17 bytes, but operator cards have been seen with longer bodies).
const maxSPNLen = 63

// SimData aggregates the identity fields read from a card. A nil field means
// "not available": the file was missing, unreadable, or undecodable. Fields
// are populated independently and at most once per run.
type SimData struct {
	IMSI   *string `json:"imsi"`
	ICCID  *string `json:"iccid"`
	MSISDN *string `json:"msisdn"`
	SPN    *string `json:"spn"`
}

// Card drives identity extraction over a single exclusive card channel.
// Every operation reselects its file before reading, so operations can run
// in any order, but never concurrently.
type Card struct {
	session  *iso7816.Session
	selector *Selector
	reader   *BinaryReader
}

// NewCard creates a Card over an already-connected channel.
func NewCard(channel iso7816.Transmitter) *Card {
	session := iso7816.NewSession(channel)
	return &Card{
		session:  session,
		selector: NewSelector(session),
		reader:   NewBinaryReader(session),
	}
}

// Selector exposes the card's file selector (used by the catalog sweep).
func (c *Card) Selector() *Selector {
	return c.selector
}

// Identity reads all four identity fields. Decoder failures are independent:
// a field that cannot be extracted stays nil without affecting the others.
func (c *Card) Identity() SimData {
	var data SimData

	if v, err := c.ICCID(); err == nil {
		data.ICCID = &v
	} else {
		logrus.Debugf("ICCID not available: %v", err)
	}

	if v, err := c.IMSI(); err == nil {
		data.IMSI = &v
	} else {
		logrus.Debugf("IMSI not available: %v", err)
	}

	if v, err := c.MSISDN(); err == nil {
		data.MSISDN = &v
	} else {
		logrus.Debugf("MSISDN not available: %v", err)
	}

	if v, err := c.SPN(); err == nil {
		data.SPN = &v
	} else {
		logrus.Debugf("SPN not available: %v", err)
	}

	return data
}

// ICCID reads and decodes the card serial number from EF_ICCID.
func (c *Card) ICCID() (string, error) {
	data, err := c.fetch(ICCIDRef, identityReadLen)
	if err != nil {
		return "", err
	}
	return DecodeICCID(data)
}

// IMSI reads and decodes the subscriber identity from EF_IMSI.
func (c *Card) IMSI() (string, error) {
	data, err := c.fetch(IMSIRef, identityReadLen)
	if err != nil {
		return "", err
	}
	return DecodeIMSI(data)
}

// MSISDN reads and decodes the subscriber phone number from EF_MSISDN.
func (c *Card) MSISDN() (string, error) {
	data, err := c.fetch(MSISDNRef, identityReadLen)
	if err != nil {
		return "", err
	}
	return DecodeMSISDN(data)
}

// SPN reads and decodes the service provider name from EF_SPN.
func (c *Card) SPN() (string, error) {
	data, err := c.fetch(SPNRef, spnReadLen)
	if err != nil {
		return "", err
	}
	return DecodeSPN(data)
}

// fetch runs the shared select+read phase of every decoder.
func (c *Card) fetch(ref FileRef, readLen int) ([]byte, error) {
	res := c.selector.Select(ref)
	if !res.Selected() {
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSelectionFailed, ref.Name, res.Err)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrSelectionFailed, ref.Name, res.SW.Verbose())
	}

	rec, err := c.reader.ReadBinary(readLen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref.Name, err)
	}
	return rec.Data, nil
}

// DecodeICCID renders an EF_ICCID payload as swapped-nibble decimal digits,
// truncated at 19 digits. The filler nibble that commonly occupies the final
// position falls outside the cap and is excluded.
func DecodeICCID(data []byte) (string, error) {
	if len(data) < 1 {
		return "", fmt.Errorf("%w: empty ICCID payload", ErrDecodeSkipped)
	}
	return DecodeSwappedBCD(data, 19), nil
}

// DecodeIMSI renders an EF_IMSI payload as swapped-nibble decimal digits,
// capped at 15 digits.
//
// Some card variants prepend an explicit byte count before the BCD payload,
// others do not. A first byte that is a plausible length indicator (at most
// the remaining length and below 0x80) is skipped; the heuristic can
// misclassify a genuine BCD nibble on short malformed inputs, a trade-off
// deployed readers share.
func DecodeIMSI(data []byte) (string, error) {
	if len(data) < 2 {
		return "", fmt.Errorf("%w: IMSI payload of %d bytes", ErrDecodeSkipped, len(data))
	}

	start := 0
	if int(data[0]) <= len(data)-1 && data[0] < 0x80 {
		start = 1
	}

	return DecodeSwappedBCD(data[start:], 15), nil
}

// DecodeMSISDN renders an EF_MSISDN dialing number. Byte 0 holds the number
// length, byte 1 the type-of-number/numbering-plan field; the number itself
// starts at offset 2 and is rendered as straight hex digit pairs, not
// swapped BCD.
func DecodeMSISDN(data []byte) (string, error) {
	if len(data) <= 2 {
		return "", fmt.Errorf("%w: MSISDN payload of %d bytes", ErrDecodeSkipped, len(data))
	}

	numLen := int(data[0])
	if numLen == 0 || numLen >= len(data)-2 {
		return "", fmt.Errorf("%w: dialing number length %d does not fit payload", ErrDecodeSkipped, numLen)
	}

	return fmt.Sprintf("%X", data[2:2+numLen]), nil
}

// DecodeSPN renders an EF_SPN payload. Byte 0 is a display-condition flag
// and is discarded; trailing 0xFF padding is stripped. A body opening with
// 0x80 is UCS2 (UTF-16BE) per TS 102.221 Annex A, anything else is copied
// as display characters (ASCII/GSM-7 profile) capped at 63 bytes.
func DecodeSPN(data []byte) (string, error) {
	if len(data) < 2 {
		return "", fmt.Errorf("%w: SPN payload of %d bytes", ErrDecodeSkipped, len(data))
	}

	body := bytes.TrimRight(data[1:], "\xFF")
	if len(body) == 0 {
		return "", fmt.Errorf("%w: SPN body is all padding", ErrDecodeSkipped)
	}

	if body[0] == 0x80 {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		name, err := decoder.Bytes(body[1:])
		if err != nil {
			return "", fmt.Errorf("%w: UCS2 SPN: %v", ErrDecodeSkipped, err)
		}
		return string(name), nil
	}

	if len(body) > maxSPNLen {
		body = body[:maxSPNLen]
	}
	return string(body), nil
}

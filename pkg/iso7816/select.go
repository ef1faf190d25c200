package iso7816

import "fmt"

// SELECT COMMAND LOGIC (ISO 7816-4):
// The SELECT command (INS 'A4') opens a file (MF, DF, or EF).
//
// P1 (Selection Method): how the file is targeted.
// - 0x00: by 2-byte file identifier, relative to the current DF.
// - 0x08: by absolute path from the Master File.
//
// P2 (Selection Control): what the card should return about the file.
// - 0x04: File Control Parameters (FCP template, tag '62').
// - 0x0C: no response data.
//
// Cards differ in which selection method they honor for nested elementary
// files: the legacy SIM profile resolves a bare file identifier from
// anywhere, while strict USIM implementations require the absolute path.
// Both constructors are provided so callers can probe the two in order.

// FileID is a 2-byte ISO 7816 file identifier (e.g., 0x3F00 for the MF).
type FileID uint16

// Bytes returns the big-endian wire form of the identifier.
func (id FileID) Bytes() []byte {
	return []byte{byte(id >> 8), byte(id)}
}

func (id FileID) String() string {
	return fmt.Sprintf("%04X", uint16(id))
}

// SelectionMethod defines how the file is targeted (P1).
type SelectionMethod byte

const (
	SelectByFileID   SelectionMethod = 0x00
	SelectPathFromMF SelectionMethod = 0x08
)

// SelectionControl defines what data the card returns (P2).
type SelectionControl byte

const (
	ReturnFCP    SelectionControl = 0x04
	ReturnNoData SelectionControl = 0x0C
)

// NewSelectCommand creates a generic SELECT command.
//
// Le is always absent: with ReturnNoData there is nothing to fetch, and with
// ReturnFCP a T=0 card answers '61 XX', which the Session resolves with a
// GET RESPONSE.
func NewSelectCommand(method SelectionMethod, ctrl SelectionControl, data []byte) *CommandAPDU {
	return NewCommandAPDU(ClaISO, INS_SELECT, byte(method), byte(ctrl), data, 0)
}

// SelectFileID creates a SELECT targeting a file by its 2-byte identifier,
// requesting no response data: 00 A4 00 0C 02 <hi> <lo>.
func SelectFileID(id FileID) *CommandAPDU {
	return NewSelectCommand(SelectByFileID, ReturnNoData, id.Bytes())
}

// SelectPath creates a SELECT carrying an absolute path from the Master
// File, requesting no response data: 00 A4 08 0C <len> <path bytes...>.
func SelectPath(path []FileID) *CommandAPDU {
	data := make([]byte, 0, len(path)*2)
	for _, id := range path {
		data = append(data, id.Bytes()...)
	}
	return NewSelectCommand(SelectPathFromMF, ReturnNoData, data)
}

// SelectFileFCP creates a SELECT by identifier that asks the card to return
// the File Control Parameters of the selected file: 00 A4 00 04 02 <hi> <lo>.
func SelectFileFCP(id FileID) *CommandAPDU {
	return NewSelectCommand(SelectByFileID, ReturnFCP, id.Bytes())
}

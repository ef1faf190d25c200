package sim

import (
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/sim-reader/pkg/bits"
	"github.com/gregLibert/sim-reader/pkg/iso7816"
)

// FILE CONTROL PARAMETERS (FCP) - Tag '62':
// When a SELECT requests FCP, the card answers with a BER-TLV template
// describing the selected file. The inspect surface decodes the subset that
// matters when sizing reads and telling file types apart:
//   - '80': file size (number of data bytes, EFs only)
//   - '82': file descriptor (structure and sharing bits)
//   - '83': file identifier
//   - '8A': life cycle status

// FileInfo is the decoded subset of a file's FCP template.
type FileInfo struct {
	ID         iso7816.FileID
	Descriptor byte
	Size       int
	LifeCycle  byte
}

// Directory reports whether the file descriptor marks a DF/ADF.
func (fi *FileInfo) Directory() bool {
	return bits.GetRange(fi.Descriptor, 6, 4) == 0b111
}

// Structure names the EF structure encoded in descriptor bits 3-1.
func (fi *FileInfo) Structure() string {
	if fi.Directory() {
		return "dedicated file"
	}
	switch bits.GetRange(fi.Descriptor, 3, 1) {
	case 0b001:
		return "transparent"
	case 0b010:
		return "linear fixed"
	case 0b110:
		return "cyclic"
	default:
		return "unknown"
	}
}

// Shareable reports bit 7 of the file descriptor.
func (fi *FileInfo) Shareable() bool {
	return bits.IsSet(fi.Descriptor, 7)
}

func (fi *FileInfo) String() string {
	return fmt.Sprintf("file %s | %s | %d bytes | life cycle %02X",
		fi.ID, fi.Structure(), fi.Size, fi.LifeCycle)
}

// ParseFCP decodes the FCP template returned by a SELECT with FCP requested.
func ParseFCP(data []byte) (*FileInfo, error) {
	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("BER-TLV decode failed: %w", err)
	}

	template := findTemplate(packets)
	if template == nil {
		return nil, fmt.Errorf("no FCP template (tag 62) in %d-byte response", len(data))
	}

	info := &FileInfo{}
	for _, p := range template {
		switch strings.ToUpper(p.Tag) {
		case "80":
			for _, b := range p.Value {
				info.Size = info.Size<<8 | int(b)
			}
		case "82":
			if len(p.Value) > 0 {
				info.Descriptor = p.Value[0]
			}
		case "83":
			if len(p.Value) == 2 {
				info.ID = iso7816.FileID(uint16(p.Value[0])<<8 | uint16(p.Value[1]))
			}
		case "8A":
			if len(p.Value) > 0 {
				info.LifeCycle = p.Value[0]
			}
		}
	}
	return info, nil
}

// findTemplate locates the children of the '62' template, whether the card
// returned it alone or nested under an FCI wrapper.
func findTemplate(packets []bertlv.TLV) []bertlv.TLV {
	for _, p := range packets {
		if strings.EqualFold(p.Tag, "62") {
			return p.TLVs
		}
		if strings.EqualFold(p.Tag, "6F") {
			if nested := findTemplate(p.TLVs); nested != nil {
				return nested
			}
		}
	}
	return nil
}

// Inspect selects a file with FCP requested and returns its decoded file
// control parameters. Unlike the identity decoders it uses legacy selection
// only; it is a diagnostic surface for files reachable by flat addressing.
func (c *Card) Inspect(id iso7816.FileID) (*FileInfo, error) {
	trace, err := c.session.Exchange(iso7816.SelectFileFCP(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSelectionFailed, id, err)
	}

	last := trace.Last().Response
	if classify(last.Status) == SelectFailed {
		return nil, fmt.Errorf("%w: %s: %s", ErrSelectionFailed, id, last.Status.Verbose())
	}

	if len(last.Data) == 0 {
		return nil, fmt.Errorf("%w: %s returned no FCP data", ErrSelectionFailed, id)
	}

	return ParseFCP(last.Data)
}

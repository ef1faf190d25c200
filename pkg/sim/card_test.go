package sim

import (
	"bytes"

	"github.com/gregLibert/sim-reader/pkg/iso7816"
)

// transmitFunc adapts a function to the Transmitter interface.
type transmitFunc func(cmd []byte) ([]byte, error)

func (f transmitFunc) Transmit(cmd []byte) ([]byte, error) {
	return f(cmd)
}

// fakeSIM simulates the card side of the file-access protocol: a file tree
// with a "currently selected file" cursor, legacy and path selection, and
// the 6C XX wrong-length answer on reads whose Le misses the file size.
type fakeSIM struct {
	files       map[iso7816.FileID][]byte // transparent EF contents
	dirs        map[iso7816.FileID]bool   // selectable MF/DF nodes
	pathOnly    map[iso7816.FileID]bool   // EFs that reject legacy selection
	warnSelects bool                      // answer selects with 62 83 instead of 90 00

	current    iso7816.FileID
	hasCurrent bool
	pending    []byte // response parked behind 61 XX
}

func newFakeSIM() *fakeSIM {
	return &fakeSIM{
		files:    make(map[iso7816.FileID][]byte),
		dirs:     map[iso7816.FileID]bool{MF: true, DFGsm: true, DFTelecom: true},
		pathOnly: make(map[iso7816.FileID]bool),
	}
}

func sw(sw1, sw2 byte) []byte {
	return []byte{sw1, sw2}
}

func (f *fakeSIM) selectOK() []byte {
	if f.warnSelects {
		return sw(0x62, 0x83)
	}
	return sw(0x90, 0x00)
}

func (f *fakeSIM) Transmit(cmd []byte) ([]byte, error) {
	if len(cmd) < 4 || cmd[0] != 0x00 {
		return sw(0x6E, 0x00), nil
	}

	switch iso7816.InsCode(cmd[1]) {
	case iso7816.INS_SELECT:
		return f.handleSelect(cmd), nil
	case iso7816.INS_READ_BINARY:
		return f.handleReadBinary(cmd), nil
	case iso7816.INS_GET_RESPONSE:
		if f.pending == nil {
			return sw(0x6F, 0x00), nil
		}
		resp := append(bytes.Clone(f.pending), 0x90, 0x00)
		f.pending = nil
		return resp, nil
	default:
		return sw(0x6D, 0x00), nil
	}
}

func (f *fakeSIM) handleSelect(cmd []byte) []byte {
	if len(cmd) < 5 {
		return sw(0x67, 0x00)
	}
	data := cmd[5 : 5+int(cmd[4])]

	var id iso7816.FileID
	switch cmd[2] { // P1
	case 0x00: // by identifier
		if len(data) != 2 {
			return sw(0x6A, 0x86)
		}
		id = iso7816.FileID(uint16(data[0])<<8 | uint16(data[1]))
		if f.pathOnly[id] {
			return sw(0x6A, 0x82)
		}
	case 0x08: // by path from MF
		if len(data) < 2 || len(data)%2 != 0 {
			return sw(0x6A, 0x86)
		}
		id = iso7816.FileID(uint16(data[len(data)-2])<<8 | uint16(data[len(data)-1]))
	default:
		return sw(0x6A, 0x86)
	}

	content, isFile := f.files[id]
	if !isFile && !f.dirs[id] {
		return sw(0x6A, 0x82)
	}

	if isFile {
		f.current = id
		f.hasCurrent = true
	}

	if cmd[3] == 0x04 && isFile { // P2: return FCP
		f.pending = buildFCP(id, len(content))
		return sw(0x61, byte(len(f.pending)))
	}

	return f.selectOK()
}

func (f *fakeSIM) handleReadBinary(cmd []byte) []byte {
	if !f.hasCurrent {
		return sw(0x69, 0x86) // no current EF
	}
	content := f.files[f.current]

	le := 256
	if len(cmd) == 5 && cmd[4] != 0x00 {
		le = int(cmd[4])
	}

	if le != len(content) {
		return sw(0x6C, byte(len(content)))
	}
	return append(bytes.Clone(content), 0x90, 0x00)
}

// buildFCP synthesizes a minimal FCP template: transparent shareable EF,
// file size, file identifier.
func buildFCP(id iso7816.FileID, size int) []byte {
	return []byte{
		0x62, 0x0C,
		0x82, 0x02, 0x41, 0x21,
		0x83, 0x02, byte(id >> 8), byte(id),
		0x80, 0x02, byte(size >> 8), byte(size),
	}
}

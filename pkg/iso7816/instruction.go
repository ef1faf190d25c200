package iso7816

import "fmt"

// Instruction Byte (INS) Logic according to ISO/IEC 7816-4.
//
// The INS byte identifies the specific command to be performed by the card.
// INS values where the upper nibble is '6' or '9' (0x6X or 0x9X) are invalid:
// these ranges are reserved for Status Words (SW1) and transport layer
// control procedures (ISO/IEC 7816-3).

// InsCode is a typed representation of the instruction byte.
type InsCode byte

// Instruction (INS) codes used when navigating a SIM/USIM file system.
const (
	INS_VERIFY       InsCode = 0x20
	INS_SELECT       InsCode = 0xA4
	INS_READ_BINARY  InsCode = 0xB0
	INS_READ_RECORD  InsCode = 0xB2
	INS_GET_RESPONSE InsCode = 0xC0
	INS_GET_DATA     InsCode = 0xCA
)

// Valid reports whether the INS value is usable in a command header.
// '6X' and '9X' values are rejected as reserved by ISO 7816-3.
func (i InsCode) Valid() bool {
	highNibble := byte(i) & 0xF0
	return highNibble != 0x60 && highNibble != 0x90
}

func (i InsCode) String() string {
	switch i {
	case INS_VERIFY:
		return "VERIFY"
	case INS_SELECT:
		return "SELECT"
	case INS_READ_BINARY:
		return "READ BINARY"
	case INS_READ_RECORD:
		return "READ RECORD"
	case INS_GET_RESPONSE:
		return "GET RESPONSE"
	case INS_GET_DATA:
		return "GET DATA"
	default:
		return fmt.Sprintf("INS(0x%02X)", byte(i))
	}
}

package iso7816

// READ BINARY COMMAND LOGIC (ISO 7816-4):
// The READ BINARY command (INS 'B0') reads the content of the current
// transparent Elementary File.
//
// P1-P2: 15-bit offset into the file, big endian. If bit 8 of P1 is set the
// command switches to Short File Identifier addressing, which this package
// does not use; offsets are masked accordingly.
//
// Le: number of bytes to read. A card that disagrees with the requested
// length answers '6C XX' and the Session reissues the command with Le = XX.

// ReadBinary creates a READ BINARY command for the current EF:
// 00 B0 <off_hi> <off_lo> <len>.
func ReadBinary(offset uint16, length int) *CommandAPDU {
	offset &= 0x7FFF
	return NewCommandAPDU(ClaISO, INS_READ_BINARY, byte(offset>>8), byte(offset), nil, length)
}

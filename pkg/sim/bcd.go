package sim

import "fmt"

// Telecom BCD puts two decimal digits in every byte, low nibble first
// (swapped-nibble order). ICCID and IMSI payloads use this encoding, with a
// 0xF filler nibble closing an odd-length digit string.

// DecodeSwappedBCD renders data as swapped-nibble decimal digits, stopping
// once maxDigits have been emitted even if bytes remain. Each byte B
// contributes '0'+(B&0x0F) then '0'+(B>>4); nibble values above 9 are
// emitted the same way, matching the tolerant behavior of deployed readers.
func DecodeSwappedBCD(data []byte, maxDigits int) string {
	digits := make([]byte, 0, maxDigits)

	for _, b := range data {
		if len(digits) >= maxDigits {
			break
		}
		digits = append(digits, '0'+(b&0x0F))

		if len(digits) >= maxDigits {
			break
		}
		digits = append(digits, '0'+((b>>4)&0x0F))
	}

	return string(digits)
}

// EncodeSwappedBCD is the inverse of DecodeSwappedBCD for even-length digit
// strings: consecutive digit pairs become one byte each, first digit in the
// low nibble.
func EncodeSwappedBCD(digits string) ([]byte, error) {
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("odd digit count %d cannot be packed", len(digits))
	}

	out := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		lo := digits[i] - '0'
		hi := digits[i+1] - '0'
		if lo > 0x0F || hi > 0x0F {
			return nil, fmt.Errorf("character %q at %d is not a BCD digit", digits[i], i)
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

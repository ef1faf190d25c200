package bits

import "testing"

func TestBit(t *testing.T) {
	tests := []struct {
		n    uint
		want byte
	}{
		{1, 0b0000_0001},
		{4, 0b0000_1000},
		{8, 0b1000_0000},
		{0, 0}, // out of range
		{9, 0}, // out of range
	}

	for _, tt := range tests {
		if got := Bit(tt.n); got != tt.want {
			t.Errorf("Bit(%d) = %08b, want %08b", tt.n, got, tt.want)
		}
	}
}

func TestIsSet(t *testing.T) {
	const b = 0b1010_0100

	tests := []struct {
		n    uint
		want bool
	}{
		{1, false},
		{3, true},
		{6, true},
		{8, true},
		{7, false},
	}

	for _, tt := range tests {
		if got := IsSet(b, tt.n); got != tt.want {
			t.Errorf("IsSet(%08b, %d) = %v, want %v", b, tt.n, got, tt.want)
		}
	}
}

func TestGetRange(t *testing.T) {
	tests := []struct {
		name      string
		b         byte
		high, low uint
		want      byte
	}{
		{"Middle bits", 0b0000_1100, 4, 3, 0b11},
		{"Single bit", 0b0100_0000, 7, 7, 1},
		{"Full byte", 0xA5, 8, 1, 0xA5},
		{"High nibble", 0x6C, 8, 5, 0x06},
		{"Inverted range", 0xFF, 2, 5, 0},
		{"Out of bounds", 0xFF, 9, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetRange(tt.b, tt.high, tt.low); got != tt.want {
				t.Errorf("GetRange(%08b, %d, %d) = %d, want %d", tt.b, tt.high, tt.low, got, tt.want)
			}
		})
	}
}

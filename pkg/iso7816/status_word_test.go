package iso7816

import (
	"strings"
	"testing"
)

func TestStatusWord_Classification(t *testing.T) {
	tests := []struct {
		sw        StatusWord
		isSuccess bool
		isWarning bool
		isError   bool
	}{
		{SW_NO_ERROR, true, false, false},
		{NewStatusWord(0x61, 0x10), true, false, false}, // Bytes Available
		{SW_WARN_EOF_REACHED, false, true, false},
		{NewStatusWord(0x63, 0xC2), false, true, false}, // Counter
		{SW_ERR_WRONG_LENGTH, false, false, true},
		{SW_ERR_FILE_NOT_FOUND, false, false, true},
	}

	for _, tt := range tests {
		if got := tt.sw.IsSuccess(); got != tt.isSuccess {
			t.Errorf("SW %04X IsSuccess = %v, want %v", uint16(tt.sw), got, tt.isSuccess)
		}
		if got := tt.sw.IsWarning(); got != tt.isWarning {
			t.Errorf("SW %04X IsWarning = %v, want %v", uint16(tt.sw), got, tt.isWarning)
		}
		if got := tt.sw.IsError(); got != tt.isError {
			t.Errorf("SW %04X IsError = %v, want %v", uint16(tt.sw), got, tt.isError)
		}
	}
}

func TestStatusWord_WarningFamily(t *testing.T) {
	tests := []struct {
		sw   StatusWord
		want bool
	}{
		{NewStatusWord(0x62, 0x83), true},
		{NewStatusWord(0x69, 0x82), true},
		{NewStatusWord(0x6C, 0x0A), true}, // whole 0x6XXX range counts
		{SW_NO_ERROR, false},
		{NewStatusWord(0x91, 0x00), false}, // proactive SIM status is not 6xxx
	}

	for _, tt := range tests {
		if got := tt.sw.InWarningFamily(); got != tt.want {
			t.Errorf("SW %04X InWarningFamily = %v, want %v", uint16(tt.sw), got, tt.want)
		}
	}
}

func TestStatusWord_WrongLength(t *testing.T) {
	if !NewStatusWord(0x6C, 0x0A).IsWrongLength() {
		t.Error("6C0A should classify as wrong length")
	}
	if NewStatusWord(0x67, 0x00).IsWrongLength() {
		t.Error("6700 carries no corrected length")
	}
	if got := NewStatusWord(0x6C, 0x0A).SW2(); got != 0x0A {
		t.Errorf("SW2 = %02X, want 0A", got)
	}
}

func TestStatusWord_Counter(t *testing.T) {
	tests := []struct {
		sw        StatusWord
		isCounter bool
	}{
		{NewStatusWord(0x63, 0xC0), true},  // Counter 0
		{NewStatusWord(0x63, 0xCF), true},  // Counter 15
		{NewStatusWord(0x63, 0x00), false}, // Not a counter
		{NewStatusWord(0x63, 0x81), false}, // File filled
	}

	for _, tt := range tests {
		if got := tt.sw.IsCounter(); got != tt.isCounter {
			t.Errorf("SW %04X IsCounter = %v, want %v", uint16(tt.sw), got, tt.isCounter)
		}
	}
}

func TestStatusWord_Verbose(t *testing.T) {
	tests := []struct {
		sw       StatusWord
		contains string
	}{
		{NewStatusWord(0x63, 0xC3), "counter = 3"},
		{NewStatusWord(0x61, 0x20), "32 bytes available"},
		{NewStatusWord(0x6C, 0x05), "correct Le is 5"},
		{SW_ERR_FILE_NOT_FOUND, "File not found"},
		{NewStatusWord(0x69, 0x99), "Command not allowed"}, // generic fallback
	}

	for _, tt := range tests {
		got := tt.sw.Verbose()
		if !strings.Contains(got, tt.contains) {
			t.Errorf("Verbose(%04X) = %q; want containing %q", uint16(tt.sw), got, tt.contains)
		}
	}
}

package sim

import (
	"testing"

	"github.com/gregLibert/sim-reader/pkg/iso7816"
	"github.com/gregLibert/sim-reader/pkg/tlv"
)

func TestCatalogShape(t *testing.T) {
	entries := Catalog()
	if len(entries) != 57 {
		t.Fatalf("catalog holds %d entries, expected 57", len(entries))
	}

	if entries[0].ID != EFICCID {
		t.Errorf("first entry is %s, expected EF_ICCID", entries[0].ID)
	}

	seenMF := false
	for _, e := range entries {
		if e.Name == "" || e.Description == "" {
			t.Errorf("entry %s is missing its name or description", e.ID)
		}
		if e.ID == MF {
			seenMF = true
		}
	}
	if !seenMF {
		t.Error("catalog does not list the master file")
	}
}

func TestCatalogEntryTransparent(t *testing.T) {
	testCases := []struct {
		id       iso7816.FileID
		expected bool
	}{
		{EFICCID, true},
		{EFIMSI, true},
		{DFGsm, false},
		{DFTelecom, false},
	}
	for _, tc := range testCases {
		e := CatalogEntry{ID: tc.id}
		if got := e.Transparent(); got != tc.expected {
			t.Errorf("Transparent(%s) = %v, expected %v", tc.id, got, tc.expected)
		}
	}
}

// sweepCard answers legacy selects for a fixed set of identifiers and fails
// everything else. It counts commands so tests can assert probe volume.
func sweepCard(t *testing.T, reachable map[iso7816.FileID]bool, probes *int) transmitFunc {
	return func(cmd []byte) ([]byte, error) {
		*probes++
		expected := tlv.Hex("00 A4 00 0C 02")
		if len(cmd) != 7 || string(cmd[:5]) != string(expected) {
			t.Fatalf("exploration must use legacy selection only, got % X", cmd)
		}
		id := iso7816.FileID(uint16(cmd[5])<<8 | uint16(cmd[6]))
		if reachable[id] {
			return tlv.Hex("90 00"), nil
		}
		return tlv.Hex("6A 82"), nil
	}
}

func TestExplore(t *testing.T) {
	probes := 0
	card := NewCard(sweepCard(t, map[iso7816.FileID]bool{
		EFICCID: true,
		EFIMSI:  true,
	}, &probes))

	found := map[iso7816.FileID]bool{}
	total := 0
	for entry, ok := range card.Explore() {
		total++
		if ok {
			found[entry.ID] = true
		}
	}

	if total != 57 {
		t.Errorf("sweep yielded %d entries, expected all 57", total)
	}
	if probes != 57 {
		t.Errorf("sweep sent %d probes, expected one per entry", probes)
	}
	if len(found) != 2 || !found[EFICCID] || !found[EFIMSI] {
		t.Errorf("reachable set = %v, expected exactly EF_ICCID and EF_IMSI", found)
	}
}

func TestExploreRestartsAndStopsEarly(t *testing.T) {
	probes := 0
	card := NewCard(sweepCard(t, map[iso7816.FileID]bool{EFICCID: true}, &probes))

	sweep := card.Explore()

	// An abandoned iteration probes only what it consumed.
	for range sweep {
		break
	}
	if probes != 1 {
		t.Fatalf("early break left %d probes, expected 1", probes)
	}

	// Ranging again restarts from the first entry.
	count := 0
	for range sweep {
		count++
	}
	if count != 57 {
		t.Errorf("second pass yielded %d entries, expected 57", count)
	}
	if probes != 58 {
		t.Errorf("total probes = %d, expected 58", probes)
	}
}

package sim

import (
	"iter"

	"github.com/gregLibert/sim-reader/pkg/iso7816"
)

// CatalogEntry names a well-known SIM/USIM file. The catalog is static data
// fixed at process start; entries carry no further lifecycle.
type CatalogEntry struct {
	ID          iso7816.FileID
	Name        string
	Description string
}

// Transparent reports the coarse file-class guess the exploration report
// uses: identifiers below the 0x7FXX directory range are shown as
// transparent files, the rest as dedicated files.
func (e CatalogEntry) Transparent() bool {
	return byte(e.ID>>8) < 0x7F
}

// Catalog returns the well-known file table in its fixed order.
// The returned slice is shared and must not be modified.
func Catalog() []CatalogEntry {
	return catalog[:]
}

// Explore probes every catalog entry with legacy selection only and yields
// each entry with its reachability. The sweep intentionally tests
// flat-addressing reachability, not full accessibility, so there is no path
// fallback; both clean success and the warning state count as reachable.
//
// The sequence is lazy and restartable: ranging over it again re-probes the
// card from the first entry.
func (c *Card) Explore() iter.Seq2[CatalogEntry, bool] {
	return func(yield func(CatalogEntry, bool) bool) {
		for _, entry := range catalog {
			if !yield(entry, c.selector.SelectID(entry.ID).Selected()) {
				return
			}
		}
	}
}

// Well-known SIM/USIM files checked by the exploration sweep.
var catalog = [...]CatalogEntry{
	{0x2FE2, "EF_ICCID", "SIM Card Serial Number"},
	{0x2F05, "EF_PL", "Preferred Languages"},
	{0x2F06, "EF_ICCID", "ICCID (alternative location)"},
	{0x3F00, "MF", "Master File"},
	{0x7F20, "DF_GSM", "GSM Directory"},
	{0x7F10, "DF_TELECOM", "Telecom Directory"},
	{0x6F07, "EF_IMSI", "International Mobile Subscriber Identity"},
	{0x6F46, "EF_SPN", "Service Provider Name"},
	{0x6F3A, "EF_ADN", "Abbreviated Dialing Numbers (Contacts)"},
	{0x6F3B, "EF_FDN", "Fixed Dialing Numbers"},
	{0x6F3C, "EF_SMS", "SMS Messages"},
	{0x6F49, "EF_SDN", "Service Dialing Numbers"},
	{0x6F44, "EF_LDN", "Last Dialed Numbers"},
	{0x6F40, "EF_MSISDN", "Subscriber Phone Number"},
	{0x6F45, "EF_EXT1", "Extension 1"},
	{0x6F47, "EF_SMSR", "SMS Status Reports"},
	{0x6F74, "EF_PLMNwAcT", "PLMN Selector"},
	{0x6F78, "EF_ACC", "Access Control Class"},
	{0x6F7B, "EF_FPLMN", "Forbidden PLMNs"},
	{0x6F7E, "EF_LOCI", "Location Information"},
	{0x6FAD, "EF_AD", "Administrative Data"},
	{0x6FAE, "EF_PHASE", "Phase Identification"},
	{0x6FB1, "EF_VGCS", "Voice Group Call Service"},
	{0x6FB2, "EF_VGCSS", "VGCS Status"},
	{0x6FB3, "EF_VBS", "Voice Broadcast Service"},
	{0x6FB4, "EF_VBSS", "VBS Status"},
	{0x6FB5, "EF_eMLPP", "enhanced Multi Level Precedence"},
	{0x6FB6, "EF_AAeM", "Automatic Answer for eMLPP"},
	{0x6FB7, "EF_ECC", "Emergency Call Codes"},
	{0x6F20, "EF_CK", "Ciphering Key"},
	{0x6F21, "EF_IMSI", "IMSI (alternative location)"},
	{0x6F22, "EF_Kc", "Ciphering Key (GPRS)"},
	{0x6F23, "EF_PUNCT", "Punctuation"},
	{0x6F24, "EF_SME", "Short Message Entity"},
	{0x6F25, "EF_SMSP", "Short Message Service Parameters"},
	{0x6F26, "EF_SMSS", "SMS Status"},
	{0x6F30, "EF_LP", "Language Preference"},
	{0x6F31, "EF_PLMNsel", "PLMN Selector"},
	{0x6F32, "EF_FPLMNsel", "Forbidden PLMN Selector"},
	{0x6F33, "EF_PLMNwAcT", "PLMN with Access Technology"},
	{0x6F35, "EF_OPLMNwAcT", "Operator PLMN with Access Technology"},
	{0x6F36, "EF_HPLMNwAcT", "HPLMN with Access Technology"},
	{0x6F37, "EF_CPBCCH", "CPBCCH Information"},
	{0x6F38, "EF_INVSCAN", "Inquiry Scan"},
	{0x6F39, "EF_PNN", "PLMN Network Name"},
	{0x6F3E, "EF_OPL", "Operator PLMN List"},
	{0x6F41, "EF_EXT2", "Extension 2"},
	{0x6F42, "EF_EXT3", "Extension 3"},
	{0x6F43, "EF_EXT4", "Extension 4"},
	{0x6F48, "EF_SUME", "Setup Menu Elements"},
	{0x6F4A, "EF_EXT5", "Extension 5"},
	{0x6F4B, "EF_EXT6", "Extension 6"},
	{0x6F4C, "EF_MMI", "Man Machine Interface"},
	{0x6F4D, "EF_MMSN", "MMS Notification"},
	{0x6F4E, "EF_MMSICP", "MMS ICP"},
	{0x6F4F, "EF_MMSUP", "MMS User Preferences"},
	{0x6F50, "EF_MMSUCP", "MMS User Connectivity Preferences"},
}

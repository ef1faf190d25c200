package sim

import "github.com/gregLibert/sim-reader/pkg/iso7816"

// SIM/USIM file tree nodes referenced by the identity decoders
// (GSM TS 11.11 / 3GPP TS 31.102 identifiers).
const (
	MF        iso7816.FileID = 0x3F00 // Master File
	DFGsm     iso7816.FileID = 0x7F20 // GSM Directory
	DFTelecom iso7816.FileID = 0x7F10 // Telecom Directory

	EFICCID  iso7816.FileID = 0x2FE2 // SIM Card Serial Number
	EFIMSI   iso7816.FileID = 0x6F07 // International Mobile Subscriber Identity
	EFMSISDN iso7816.FileID = 0x6F40 // Subscriber Phone Number
	EFSPN    iso7816.FileID = 0x6F46 // Service Provider Name
)

// Path is an ordered sequence of file identifiers starting at the Master File.
type Path []iso7816.FileID

// FileRef names a card file both ways it can be addressed: by its bare
// 2-byte identifier (legacy flat selection) and by its absolute path
// (strict USIM selection). A FileRef is immutable once constructed.
type FileRef struct {
	Name string
	ID   iso7816.FileID
	Path Path
}

// References for the four identity files.
var (
	ICCIDRef  = FileRef{Name: "EF_ICCID", ID: EFICCID, Path: Path{MF, EFICCID}}
	IMSIRef   = FileRef{Name: "EF_IMSI", ID: EFIMSI, Path: Path{MF, DFGsm, EFIMSI}}
	MSISDNRef = FileRef{Name: "EF_MSISDN", ID: EFMSISDN, Path: Path{MF, DFTelecom, EFMSISDN}}
	SPNRef    = FileRef{Name: "EF_SPN", ID: EFSPN, Path: Path{MF, DFGsm, EFSPN}}
)

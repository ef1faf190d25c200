/*
Package sim extracts identity data from SIM/USIM cards by walking the card
file system over an ISO 7816-4 session.

# File access

Identity fields live in transparent elementary files (EF_ICCID, EF_IMSI,
EF_MSISDN, EF_SPN). Cards disagree on how those files are reached: the
legacy SIM profile selects any file by its bare 2-byte identifier, while
strict USIM implementations only honor an absolute path from the Master
File. The Selector probes both strategies in that order, legacy first
because it is the shorter command.

# Decoding

Successful reads go through field-specific byte rules: swapped-nibble BCD
for ICCID and IMSI (with an optional length prefix on IMSI), straight hex
digit pairs for MSISDN, and display text for SPN. A failure at any stage of
select, read, or decode leaves the corresponding SimData field absent and
never affects the other fields.

# Usage

	card := sim.NewCard(channel) // channel is anything with Transmit()
	data := card.Identity()
	if data.ICCID != nil {
	    fmt.Println(*data.ICCID)
	}

A Card owns the "currently selected file" cursor of its underlying channel:
every decoder reselects before reading, and a Card must not be used from
multiple goroutines.
*/
package sim

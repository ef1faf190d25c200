/*
Package iso7816 implements the APDU plumbing needed to navigate a SIM/USIM
card file system according to the ISO/IEC 7816-4 standard.

# Fundamentals

The communication with a smart card is strictly synchronous:
 1. The Host sends a Command APDU (Header + Optional Body).
 2. The Card processes it and returns a Response APDU (Optional Body + Trailer SW1/SW2).

# Status Words

Every response ends with a 2-byte Status Word (SW).
  - 0x9000: Success (OK).
  - 0x61XX: Success, but response data is still available (XX bytes).
  - 0x6CXX: Error, wrong length expectation (XX is the correct length).
  - Other: Various warning and error conditions.

# Transport auto-handling

The Session type drives a physical connection (anything with a Transmit
method) and resolves the two T=0 transport behaviors that would otherwise
leak into the application layer: it answers '61 XX' with a GET RESPONSE and
'6C XX' with a single corrected reissue of the original command. Each
follow-up happens at most once per exchange; the full conversation is
returned as a Trace.

# Usage Example

	session := iso7816.NewSession(card)

	trace, err := session.Exchange(iso7816.SelectFileID(0x2FE2))
	if err != nil {
	    log.Fatal(err)
	}

	if trace.IsSuccess() {
	    trace, err = session.Exchange(iso7816.ReadBinary(0, 10))
	    // ...
	}
*/
package iso7816

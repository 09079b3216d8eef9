package keyfile

import "encoding/binary"

// Database container signatures. Each container format starts with two
// little-endian 32-bit words; the first word is shared across all versions.
const (
	sigWord1 = 0x9AA2D903

	// sigWord2Legacy marks the 1.x database format.
	sigWord2Legacy = 0xB54BFB65

	// sigWord2PreRelease marks 2.x pre-release databases.
	sigWord2PreRelease = 0xB54BFB66

	// sigWord2Current marks the current 2.x database format.
	sigWord2Current = 0xB54BFB67
)

// signatureSize is the number of leading bytes inspected.
const signatureSize = 8

// isDatabaseFile reports whether data starts with a known database container
// signature. The check is advisory: with fewer than 8 bytes it reports false
// and the caller proceeds to format parsing.
func isDatabaseFile(data []byte) bool {
	if len(data) < signatureSize {
		return false
	}

	w1 := binary.LittleEndian.Uint32(data[0:4])
	w2 := binary.LittleEndian.Uint32(data[4:8])

	if w1 != sigWord1 {
		return false
	}
	switch w2 {
	case sigWord2Current, sigWord2PreRelease, sigWord2Legacy:
		return true
	}
	return false
}

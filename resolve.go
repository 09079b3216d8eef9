package keyfile

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/awnumar/memguard"
)

const (
	// keySize is the resolved key length in bytes.
	keySize = 32

	// hexKeySize is the length of a hex-encoded key file.
	hexKeySize = 64
)

// resolveFormat labels which parser produced the key.
type resolveFormat string

const (
	formatXML    resolveFormat = "xml"
	formatBinary resolveFormat = "binary"
	formatHex    resolveFormat = "hex"
	formatHash   resolveFormat = "hash"
)

// resolveKey runs the format chain over raw: XML document, then verbatim
// 32-byte binary, then 64-character hex text, then the SHA-256 hash of the
// whole buffer. The hash fallback means resolution always succeeds for
// non-empty input; an arbitrary legacy key file is still usable, just weaker.
//
// raw must be non-empty. The returned slice is freshly allocated and owned by
// the caller, who is responsible for wiping it. Transient buffers from failed
// parse attempts are wiped before returning.
func resolveKey(raw []byte) ([]byte, resolveFormat) {
	if key, ok := parseXMLKey(raw); ok {
		return key, formatXML
	}

	switch len(raw) {
	case keySize:
		key := make([]byte, keySize)
		copy(key, raw)
		return key, formatBinary
	case hexKeySize:
		key := make([]byte, keySize)
		if _, err := hex.Decode(key, raw); err == nil {
			return key, formatHex
		}
		// 64 bytes of non-hex content is not rejected; it falls through
		// to the hash fallback like any other unstructured file.
		memguard.WipeBytes(key)
	}

	sum := sha256.Sum256(raw)
	key := make([]byte, keySize)
	copy(key, sum[:])
	memguard.WipeBytes(sum[:])
	return key, formatHash
}

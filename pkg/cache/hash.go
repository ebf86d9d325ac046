package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash fingerprints deck sources and rendered artifacts.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "<kind>:<digest>" where digest covers every part in
// order. Parts are JSON-encoded one per line, so map keys in key options
// (image fingerprints) are sorted and the digest is stable across runs.
func hashKey(kind string, parts ...any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		if err := enc.Encode(p); err != nil {
			// Key options are plain structs; an unencodable part still
			// yields a distinct key.
			h.Write([]byte(err.Error()))
		}
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

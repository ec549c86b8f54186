package core

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint accumulates simulation state into a 64-bit xxhash.
// Values are written in a fixed binary layout so equal states hash equally.
type Fingerprint struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewFingerprint returns an empty fingerprint.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{d: xxhash.New()}
}

// Uint64 adds v.
func (f *Fingerprint) Uint64(v uint64) *Fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])
	return f
}

// Int adds v.
func (f *Fingerprint) Int(v int) *Fingerprint {
	return f.Uint64(uint64(v)) //#nosec G115 -- hash input
}

// Float adds the bit pattern of v.
func (f *Fingerprint) Float(v float64) *Fingerprint {
	return f.Uint64(math.Float64bits(v))
}

// Bool adds b as 0 or 1.
func (f *Fingerprint) Bool(b bool) *Fingerprint {
	if b {
		return f.Uint64(1)
	}
	return f.Uint64(0)
}

// String adds s followed by its length.
func (f *Fingerprint) String(s string) *Fingerprint {
	_, _ = f.d.WriteString(s)
	return f.Int(len(s))
}

// Sum64 returns the hash of everything added so far.
func (f *Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}

// Package hashutil provides non-cryptographic hashing helpers for the
// collection types in this module.
package hashutil

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/zeebo/xxh3"
)

// Hash returns a stable xxhash of an arbitrary value or struct. Two values
// that compare equal always hash equal. Not suitable for cryptographic use.
func Hash(v any) (uint64, error) {
	opts := &hashstructure.HashOptions{
		Hasher: xxh3.New(),
	}
	return hashstructure.Hash(v, hashstructure.FormatV2, opts)
}

// MustHash returns the stable xxhash of an arbitrary value or struct,
// or 0 for values that cannot be hashed (e.g. functions).
func MustHash(v any) uint64 {
	hash, err := Hash(v)
	if err != nil {
		hash = 0
	}
	return hash
}

// Digest accumulates typed values into a single 64-bit hash.
type Digest struct {
	xxhash.Digest
}

// NewDigest returns a Digest ready for writes.
func NewDigest() *Digest {
	var d Digest
	d.Reset()
	return &d
}

// WriteStringWithLen writes the string's length, then its contents.
func (d *Digest) WriteStringWithLen(s string) {
	d.WriteInt64(int64(len(s)))
	d.WriteString(s)
}

// WriteBool writes a single byte, 1 or 0.
func (d *Digest) WriteBool(b bool) {
	if b {
		d.Write([]byte{1})
	} else {
		d.Write([]byte{0})
	}
}

// WriteUint64 writes a uint64 in little-endian order.
func (d *Digest) WriteUint64(t uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], t)
	d.Write(buf[:])
}

// WriteInt64 writes an int64 in little-endian order.
func (d *Digest) WriteInt64(t int64) {
	d.WriteUint64(uint64(t))
}

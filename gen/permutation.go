package gen

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
)

// TableSize is the number of random bytes drawn for a permutation table.
const TableSize = 256

// Permutation is a hash table from small integers to pseudo-random bytes.
// The second half repeats the first, so lookups of the form
// perm[i + perm[j]] with i, j in [0,255] and small corner offsets never need
// another wrap.
//
// Entries are independent random bytes, not a shuffle of 0..255; repeated
// values are expected.
type Permutation [2 * TableSize]uint8

// PermutationFrom builds a table from exactly TableSize base bytes. It
// panics on any other length.
func PermutationFrom(base []byte) Permutation {
	if len(base) != TableSize {
		panic(fmt.Sprintf("gen: permutation base has %d bytes, want %d", len(base), TableSize))
	}
	var p Permutation
	for i := range p {
		p[i] = base[i&(TableSize-1)]
	}
	return p
}

// ReadPermutation draws TableSize bytes from r and builds a table from them.
// A source that fails or runs dry before TableSize bytes is an error.
func ReadPermutation(r io.Reader) (Permutation, error) {
	var base [TableSize]byte
	if _, err := io.ReadFull(r, base[:]); err != nil {
		return Permutation{}, fmt.Errorf("read permutation table: %w", err)
	}
	return PermutationFrom(base[:]), nil
}

// Valid reports whether the upper half of p mirrors the lower half.
func (p *Permutation) Valid() bool {
	for i := TableSize; i < len(p); i++ {
		if p[i] != p[i-TableSize] {
			return false
		}
	}
	return true
}

func (p *Permutation) mustBeValid() {
	if !p.Valid() {
		panic("gen: permutation table halves differ")
	}
}

// DefaultSource returns a fresh ChaCha8 stream keyed from the operating
// system's entropy source. Every call returns an independent generator.
func DefaultSource() io.Reader {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("gen: read system entropy: %v", err))
	}
	return rand.NewChaCha8(seed)
}

// SeededSource returns a deterministic ChaCha8 stream for seed. The same
// seed always produces the same bytes.
func SeededSource(seed uint64) io.Reader {
	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], seed)
	}
	return rand.NewChaCha8(key)
}

func defaultPermutation() Permutation {
	p, err := ReadPermutation(DefaultSource())
	if err != nil {
		// ChaCha8 never fails or runs dry.
		panic(err)
	}
	return p
}

func seededPermutation(seed uint64) Permutation {
	p, err := ReadPermutation(SeededSource(seed))
	if err != nil {
		panic(err)
	}
	return p
}

package gen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind names a generator type.
type Kind string

const (
	KindCheckerboard Kind = "checkerboard"
	KindPerlin       Kind = "perlin"
	KindSimplex      Kind = "simplex"
	KindClassic      Kind = "classic"
	KindOpenSimplex  Kind = "opensimplex"
)

// ErrUnknownKind is returned for generator names that are not registered.
var ErrUnknownKind = errors.New("unknown generator kind")

var kindAliases = map[string]Kind{
	"checker":         KindCheckerboard,
	"improved":        KindPerlin,
	"improved_perlin": KindPerlin,
	"improvedperlin":  KindPerlin,
	"classic_perlin":  KindClassic,
	"open_simplex":    KindOpenSimplex,
}

// Kinds lists every generator kind in display order.
func Kinds() []Kind {
	return []Kind{KindCheckerboard, KindPerlin, KindSimplex, KindClassic, KindOpenSimplex}
}

// ParseKind resolves a case-insensitive generator name or alias.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// New builds a generator of the given kind. A zero seed draws the table from
// system entropy; any other seed is deterministic.
func New(kind Kind, seed int64) (NoiseGen, error) {
	switch kind {
	case KindCheckerboard:
		return NewCheckerboard(), nil
	case KindPerlin:
		if seed == 0 {
			return NewPerlin(), nil
		}
		return NewPerlinSeeded(uint64(seed)), nil
	case KindSimplex:
		if seed == 0 {
			return NewSimplex(), nil
		}
		return NewSimplexSeeded(uint64(seed)), nil
	case KindClassic:
		return NewClassic(randomSeed(seed)), nil
	case KindOpenSimplex:
		return NewOpenSimplex(randomSeed(seed)), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// randomSeed replaces a zero seed with one read from system entropy.
func randomSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	var b [8]byte
	if _, err := io.ReadFull(DefaultSource(), b[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

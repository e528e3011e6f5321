package sample

// Package sample is the module's randomness oracle. Every consumer of
// randomness (toxic-waste sampling, uniform field elements, irreducible
// polynomial search) draws through a Source, so nothing reaches for
// process-global state and deterministic replays are a seed away.

import (
	"encoding/binary"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// Source yields uniform draws. Implementations must return values that are
// uniform in [0, q) for every q >= 1.
type Source interface {
	Uniform(q uint64) uint64
}

type readerSource struct {
	r io.Reader
}

// NewSource returns a cryptographically secure Source.
func NewSource() (Source, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, err
	}
	return &readerSource{r: prng}, nil
}

// NewKeyedSource returns a deterministic Source expanded from key. Two
// sources with the same key produce the same stream.
func NewKeyedSource(key []byte) (Source, error) {
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		return nil, err
	}
	return &readerSource{r: prng}, nil
}

// NewShakeSource returns a deterministic Source backed by SHAKE-256 over
// seed. Unlike NewKeyedSource it cannot fail, which keeps fixtures terse.
func NewShakeSource(seed []byte) Source {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)
	return &readerSource{r: h}
}

// FromReader wraps an arbitrary byte stream as a Source.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

// Uniform draws a uniform value in [0, q) by 64-bit rejection sampling, so
// the result carries no modulo bias.
func (s *readerSource) Uniform(q uint64) uint64 {
	if q == 0 {
		panic("sample: uniform draw from empty range")
	}
	if q == 1 {
		return 0
	}
	limit := (^uint64(0) / q) * q
	for {
		x := s.next()
		if x < limit {
			return x % q
		}
	}
}

func (s *readerSource) next() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

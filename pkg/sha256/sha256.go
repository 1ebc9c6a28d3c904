// Copyright 2026 ar-crypto Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sha256 implements the SHA-256 hash algorithm as defined in FIPS 180-4.
//
// The padding, message schedule and 64-round compression function are
// implemented here directly; nothing is delegated to crypto/sha256. The
// package exposes a one-shot API only.
package sha256

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the SHA-256 block size in bytes.
	BlockSize = 64
)

// maxMessageBytes is the largest whole-byte message length whose bit count
// still fits the 64-bit length field of the padding block.
const maxMessageBytes = 1<<61 - 1

// ErrInputTooLarge reports a message whose bit length cannot be represented
// in the 64-bit length field mandated by FIPS 180-4.
var ErrInputTooLarge = errors.New("sha256: message exceeds 2^64-1 bits")

// initH is the initial hash value H(0): the fractional parts of the square
// roots of the first eight primes (FIPS 180-4 section 5.3.3).
var initH = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// roundK holds the round constants: the fractional parts of the cube roots of
// the first 64 primes (FIPS 180-4 section 4.2.2).
var roundK = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Sum256 returns the SHA-256 digest of msg.
//
// The only failure mode is ErrInputTooLarge; every representable input,
// including the empty message, hashes successfully.
func Sum256(msg []byte) ([Size]byte, error) {
	var digest [Size]byte

	if err := checkMessageSize(uint64(len(msg))); err != nil {
		return digest, err
	}

	h := initH
	padded := pad(msg)
	for i := 0; i < len(padded); i += BlockSize {
		compress(&h, padded[i:i+BlockSize])
	}

	for i, word := range h {
		binary.BigEndian.PutUint32(digest[i*4:], word)
	}
	return digest, nil
}

// checkMessageSize rejects messages whose bit length overflows the 64-bit
// padding length field.
func checkMessageSize(n uint64) error {
	if n > maxMessageBytes {
		return ErrInputTooLarge
	}
	return nil
}

// pad extends msg per FIPS 180-4 section 5.1.1: a single 0x80 byte, the
// minimum number of zero bytes so that the running length is congruent to
// 56 mod 64, then the message bit length as a 64-bit big-endian integer.
// The result length is always a positive multiple of BlockSize.
func pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8

	padded := make([]byte, 0, len(msg)+BlockSize+8)
	padded = append(padded, msg...)
	padded = append(padded, 0x80)
	for len(padded)%BlockSize != 56 {
		padded = append(padded, 0x00)
	}
	return binary.BigEndian.AppendUint64(padded, bitLen)
}

// compress folds one 64-byte block into the hash state h
// (FIPS 180-4 section 6.2.2). All arithmetic wraps mod 2^32.
func compress(h *[8]uint32, block []byte) {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(block[t*4:])
	}
	for t := 16; t < 64; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for t := 0; t < 64; t++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + roundK[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// rotr is the circular right rotation of a 32-bit word.
func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// The six logical functions of FIPS 180-4 section 4.1.2. Shifts are logical
// (zero-fill), rotations circular.

func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ x>>3
}

func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ x>>10
}

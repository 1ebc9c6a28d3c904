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

// Package hmac implements the keyed-hash message authentication code HMAC
// as defined in FIPS 198-1, fixed to SHA-256.
//
// The full 256-bit MAC is always returned; callers that need a truncated
// tag must slice it themselves and accept the reduced security margin.
// Callers verifying a MAC must compare it in constant time.
package hmac

import (
	"github.com/eshikafe/ar-crypto/pkg/sha256"
)

const (
	// BlockSize is the SHA-256 block size the key is normalized to, in bytes.
	BlockSize = sha256.BlockSize

	// Size is the length of the MAC in bytes.
	Size = sha256.Size
)

// Inner and outer padding bytes, repeated to BlockSize and XORed with the
// normalized key (FIPS 198-1 table 1).
const (
	ipad = 0x36
	opad = 0x5c
)

// Sum256 computes HMAC-SHA-256(key, msg):
//
//	H((K0 XOR opad) || H((K0 XOR ipad) || msg))
//
// Any key length is accepted, including empty. The only failure mode is
// sha256.ErrInputTooLarge, propagated from hashing an over-long message or
// key. The key block and XORed buffers are wiped before returning.
func Sum256(key, msg []byte) ([Size]byte, error) {
	var mac [Size]byte

	k0, err := normalizeKey(key)
	if err != nil {
		return mac, err
	}
	defer clear(k0)

	inner := make([]byte, BlockSize+len(msg))
	for i, b := range k0 {
		inner[i] = b ^ ipad
	}
	copy(inner[BlockSize:], msg)
	innerSum, err := sha256.Sum256(inner)
	clear(inner[:BlockSize])
	if err != nil {
		return mac, err
	}

	outer := make([]byte, BlockSize+Size)
	for i, b := range k0 {
		outer[i] = b ^ opad
	}
	copy(outer[BlockSize:], innerSum[:])
	defer clear(outer[:BlockSize])

	return sha256.Sum256(outer)
}

// normalizeKey derives the BlockSize-byte key block K0 of FIPS 198-1
// steps 1-3: the key itself when exactly block-sized, its digest when
// longer, right-padded with zero bytes either way. The caller owns wiping
// the returned block.
func normalizeKey(key []byte) ([]byte, error) {
	k0 := make([]byte, BlockSize)

	if len(key) > BlockSize {
		sum, err := sha256.Sum256(key)
		if err != nil {
			return nil, err
		}
		copy(k0, sum[:])
		return k0, nil
	}

	copy(k0, key)
	return k0, nil
}

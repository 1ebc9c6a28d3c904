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

package sha256

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckMessageSize exercises the 64-bit length-field guard directly;
// a slice of the offending size cannot be allocated in a test.
func TestCheckMessageSize(t *testing.T) {
	assert.NoError(t, checkMessageSize(0))
	assert.NoError(t, checkMessageSize(uint64(maxMessageBytes)))
	assert.ErrorIs(t, checkMessageSize(uint64(maxMessageBytes)+1), ErrInputTooLarge)
}

// TestPad checks the padding invariants at the 448-mod-512 boundary lengths
func TestPad(t *testing.T) {
	tests := []struct {
		messageLen int
		paddedLen  int
	}{
		{0, 64},
		{1, 64},
		{55, 64},  // last length that fits one block
		{56, 128}, // length field no longer fits, second block
		{63, 128},
		{64, 128},
		{119, 128},
		{120, 192},
	}

	for _, tt := range tests {
		msg := make([]byte, tt.messageLen)
		for i := range msg {
			msg[i] = 0xa5
		}

		padded := pad(msg)
		require.Len(t, padded, tt.paddedLen, "message length %d", tt.messageLen)

		// 0x80 marker directly after the message
		assert.Equal(t, byte(0x80), padded[tt.messageLen])

		// zero fill between marker and length field
		for i := tt.messageLen + 1; i < len(padded)-8; i++ {
			assert.Zerof(t, padded[i], "byte %d for message length %d", i, tt.messageLen)
		}

		// 64-bit big-endian bit length at the end
		bitLen := binary.BigEndian.Uint64(padded[len(padded)-8:])
		assert.Equal(t, uint64(tt.messageLen)*8, bitLen)
	}
}

// TestLogicalFunctions pins the FIPS 180-4 section 4.1.2 bit operations
func TestLogicalFunctions(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), rotr(1, 1))
	assert.Equal(t, uint32(1), rotr(0x80000000, 31))
	assert.Equal(t, uint32(0xf0f0f0f0), ch(0xffffffff, 0xf0f0f0f0, 0x0f0f0f0f))
	assert.Equal(t, uint32(0x0f0f0f0f), ch(0, 0xf0f0f0f0, 0x0f0f0f0f))
	assert.Equal(t, uint32(0xffff0000), maj(0xffff0000, 0xffff00ff, 0xff000000))
}

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

package hmac

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshikafe/ar-crypto/pkg/sha256"
)

// TestNormalizeKey covers the three FIPS 198-1 key cases
func TestNormalizeKey(t *testing.T) {
	t.Run("block-sized key used as is", func(t *testing.T) {
		key := bytes.Repeat([]byte{0x42}, BlockSize)
		k0, err := normalizeKey(key)
		require.NoError(t, err)
		assert.Equal(t, key, k0)
	})

	t.Run("short key right-padded with zeros", func(t *testing.T) {
		key := []byte{1, 2, 3}
		k0, err := normalizeKey(key)
		require.NoError(t, err)
		require.Len(t, k0, BlockSize)
		assert.Equal(t, key, k0[:3])
		assert.Equal(t, make([]byte, BlockSize-3), k0[3:])
	})

	t.Run("long key hashed then right-padded", func(t *testing.T) {
		key := bytes.Repeat([]byte{0x42}, BlockSize+1)
		k0, err := normalizeKey(key)
		require.NoError(t, err)
		require.Len(t, k0, BlockSize)

		sum, err := sha256.Sum256(key)
		require.NoError(t, err)
		assert.Equal(t, sum[:], k0[:sha256.Size])
		assert.Equal(t, make([]byte, BlockSize-sha256.Size), k0[sha256.Size:])
	})
}

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

package cryptoengine

import (
	"encoding/hex"
	"testing"
)

func TestSHA256_Digest(t *testing.T) {
	provider := NewSHA256Provider()

	digest, err := provider.Digest([]byte("abc"))
	if err != nil {
		t.Fatalf("Digest failed: %v", err)
	}
	if len(digest) != provider.Size() {
		t.Errorf("Expected digest size %d, got %d", provider.Size(), len(digest))
	}

	expected := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if hex.EncodeToString(digest) != expected {
		t.Errorf("Expected digest %s, got %s", expected, hex.EncodeToString(digest))
	}
}

func TestSHA256_EmptyMessage(t *testing.T) {
	provider := NewSHA256Provider()

	digest, err := provider.Digest(nil)
	if err != nil {
		t.Fatalf("Digest failed: %v", err)
	}

	expected := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if hex.EncodeToString(digest) != expected {
		t.Errorf("Expected digest %s, got %s", expected, hex.EncodeToString(digest))
	}
}

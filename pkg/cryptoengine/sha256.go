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
	"github.com/eshikafe/ar-crypto/pkg/sha256"
)

// SHA256Provider implements the SHA-256 digest
type SHA256Provider struct{}

// NewSHA256Provider creates a new SHA-256 provider
func NewSHA256Provider() *SHA256Provider {
	return &SHA256Provider{}
}

// Algorithm returns the algorithm name
func (p *SHA256Provider) Algorithm() string {
	return "SHA-256"
}

// Size returns the digest size in bytes
func (p *SHA256Provider) Size() int {
	return sha256.Size
}

// Digest computes the SHA-256 hash of data
func (p *SHA256Provider) Digest(data []byte) ([]byte, error) {
	sum, err := sha256.Sum256(data)
	if err != nil {
		return nil, err
	}
	return sum[:], nil
}

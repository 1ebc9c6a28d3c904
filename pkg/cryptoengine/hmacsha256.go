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
	"crypto/subtle"

	"github.com/eshikafe/ar-crypto/pkg/hmac"
)

// HMACSHA256Provider implements HMAC-SHA-256
type HMACSHA256Provider struct{}

// NewHMACSHA256Provider creates a new HMAC-SHA-256 provider
func NewHMACSHA256Provider() *HMACSHA256Provider {
	return &HMACSHA256Provider{}
}

// Algorithm returns the algorithm name
func (p *HMACSHA256Provider) Algorithm() string {
	return "HMAC-SHA-256"
}

// KeySize returns the recommended key size (SHA-256 block size is 64 bytes)
func (p *HMACSHA256Provider) KeySize() int {
	return hmac.BlockSize // 64 bytes
}

// HMAC computes HMAC-SHA-256 of data
func (p *HMACSHA256Provider) HMAC(key, data []byte) ([]byte, error) {
	mac, err := hmac.Sum256(key, data)
	if err != nil {
		return nil, err
	}
	return mac[:], nil
}

// VerifyHMAC verifies an HMAC-SHA-256 in constant time
func (p *HMACSHA256Provider) VerifyHMAC(key, data, mac []byte) (bool, error) {
	expected, err := p.HMAC(key, data)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(expected, mac) == 1, nil
}

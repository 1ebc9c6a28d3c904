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
	"context"
)

// Engine defines the interface for digest and MAC operations
type Engine interface {
	// Digest computes a hash of data using the given algorithm
	Digest(ctx context.Context, algorithm string, data []byte) ([]byte, error)

	// HMAC computes a MAC of data using the given key and algorithm
	HMAC(ctx context.Context, key []byte, algorithm string, data []byte) ([]byte, error)

	// VerifyHMAC verifies a MAC in constant time
	VerifyHMAC(ctx context.Context, key []byte, algorithm string, data []byte, mac []byte) (bool, error)
}

// DigestProvider represents a hash algorithm provider
type DigestProvider interface {
	// Algorithm returns the algorithm name
	Algorithm() string

	// Size returns the digest size in bytes
	Size() int

	// Digest computes the hash of data
	Digest(data []byte) ([]byte, error)
}

// HMACProvider represents an HMAC algorithm provider
type HMACProvider interface {
	// Algorithm returns the algorithm name
	Algorithm() string

	// KeySize returns the recommended key size in bytes
	KeySize() int

	// HMAC computes the MAC of data
	HMAC(key []byte, data []byte) ([]byte, error)

	// VerifyHMAC verifies a MAC in constant time
	VerifyHMAC(key []byte, data []byte, mac []byte) (bool, error)
}

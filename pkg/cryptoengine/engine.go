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

// Package cryptoengine exposes the SHA-256 and HMAC-SHA-256 primitives of
// this module behind a provider registry. Providers hold no mutable state,
// so a single engine may be shared across goroutines without locking.
package cryptoengine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eshikafe/ar-crypto/internal/metrics"
	"github.com/eshikafe/ar-crypto/pkg/logging"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// CryptoEngine implements the Engine interface
type CryptoEngine struct {
	digestProviders map[string]DigestProvider
	hmacProviders   map[string]HMACProvider
	logger          *logging.Logger
}

// NewEngine creates a new crypto engine with a no-op logger
func NewEngine() *CryptoEngine {
	return NewEngineWithLogger(logging.NewNop())
}

// NewEngineWithLogger creates a new crypto engine that logs operation
// metadata through the given logger. Key material is never logged.
func NewEngineWithLogger(logger *logging.Logger) *CryptoEngine {
	if logger == nil {
		logger = logging.NewNop()
	}

	engine := &CryptoEngine{
		digestProviders: make(map[string]DigestProvider),
		hmacProviders:   make(map[string]HMACProvider),
		logger:          logger,
	}

	// Register default providers
	engine.RegisterDigestProvider(NewSHA256Provider())
	engine.RegisterHMACProvider(NewHMACSHA256Provider())

	return engine
}

// RegisterDigestProvider registers a new digest provider
func (e *CryptoEngine) RegisterDigestProvider(provider DigestProvider) {
	e.digestProviders[provider.Algorithm()] = provider
}

// RegisterHMACProvider registers a new HMAC provider
func (e *CryptoEngine) RegisterHMACProvider(provider HMACProvider) {
	e.hmacProviders[provider.Algorithm()] = provider
}

// Digest computes a hash of data using the given algorithm
//
//nolint:revive // ctx parameter is required by Engine interface
func (e *CryptoEngine) Digest(ctx context.Context, algorithm string, data []byte) ([]byte, error) {
	start := time.Now()

	provider, ok := e.digestProviders[algorithm]
	if !ok {
		metrics.RecordOperation("digest", statusError, time.Since(start).Seconds(), len(data))
		return nil, fmt.Errorf("unknown digest algorithm: %s", algorithm)
	}

	sum, err := provider.Digest(data)
	metrics.RecordOperation("digest", operationStatus(err), time.Since(start).Seconds(), len(data))
	if err != nil {
		return nil, fmt.Errorf("digest failed: %w", err)
	}

	e.logger.Debug("digest computed",
		zap.String("algorithm", algorithm),
		zap.Int("message_bytes", len(data)),
	)
	return sum, nil
}

// HMAC computes a MAC of data using the given key and algorithm
//
//nolint:revive // ctx parameter is required by Engine interface
func (e *CryptoEngine) HMAC(ctx context.Context, key []byte, algorithm string, data []byte) ([]byte, error) {
	start := time.Now()

	provider, ok := e.hmacProviders[algorithm]
	if !ok {
		metrics.RecordOperation("hmac", statusError, time.Since(start).Seconds(), len(data))
		return nil, fmt.Errorf("unknown HMAC algorithm: %s", algorithm)
	}

	mac, err := provider.HMAC(key, data)
	metrics.RecordOperation("hmac", operationStatus(err), time.Since(start).Seconds(), len(data))
	if err != nil {
		return nil, fmt.Errorf("HMAC failed: %w", err)
	}

	e.logger.Debug("MAC computed",
		zap.String("algorithm", algorithm),
		zap.Int("message_bytes", len(data)),
	)
	return mac, nil
}

// VerifyHMAC verifies a MAC in constant time
//
//nolint:revive,gocritic // ctx parameter is required by Engine interface; paramTypeCombine would reduce readability
func (e *CryptoEngine) VerifyHMAC(
	ctx context.Context,
	key []byte,
	algorithm string,
	data []byte,
	mac []byte,
) (bool, error) {
	start := time.Now()

	provider, ok := e.hmacProviders[algorithm]
	if !ok {
		metrics.RecordOperation("verify_hmac", statusError, time.Since(start).Seconds(), len(data))
		return false, fmt.Errorf("unknown HMAC algorithm: %s", algorithm)
	}

	valid, err := provider.VerifyHMAC(key, data, mac)
	metrics.RecordOperation("verify_hmac", operationStatus(err), time.Since(start).Seconds(), len(data))
	if err != nil {
		return false, fmt.Errorf("HMAC verification failed: %w", err)
	}

	e.logger.Debug("MAC verified",
		zap.String("algorithm", algorithm),
		zap.Bool("valid", valid),
	)
	return valid, nil
}

func operationStatus(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

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

// Package metrics provides Prometheus metrics for digest and MAC operations.
//
// Labels are restricted to operation name and status; nothing derived from
// key or message content is ever recorded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationDuration tracks the duration of operations in seconds
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arcrypto_operation_duration_seconds",
			Help:    "Duration of digest and MAC operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	// OperationTotal tracks the total number of operations
	OperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcrypto_operations_total",
			Help: "Total number of digest and MAC operations",
		},
		[]string{"operation", "status"},
	)

	// MessageBytes tracks the size distribution of hashed messages
	MessageBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arcrypto_message_bytes",
			Help:    "Size of hashed messages in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 10),
		},
		[]string{"operation"},
	)
)

// RecordOperation records one operation with its duration, status and input size
func RecordOperation(operation, status string, duration float64, messageBytes int) {
	OperationDuration.WithLabelValues(operation, status).Observe(duration)
	OperationTotal.WithLabelValues(operation, status).Inc()
	MessageBytes.WithLabelValues(operation).Observe(float64(messageBytes))
}

// Package metrics defines and registers all custom Prometheus metrics for the
// LearnHub API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry on package init via
// promauto; HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "learnhub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the token authenticator.
// Label:
//   - reason: "missing" (no token) or "invalid" (verification failed)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by bearer token verification.",
	},
	[]string{"reason"},
)

// RoleGateDecisionsTotal counts role gate outcomes.
// Label:
//   - result: "allowed", "forbidden", "unknown_subject" or "no_claims"
var RoleGateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_gate_decisions_total",
		Help:      "Total number of role gate decisions, by result.",
	},
	[]string{"result"},
)

// ErrorResponsesTotal counts error envelopes written by the central handler.
var ErrorResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "error_responses_total",
		Help:      "Total number of error responses, by HTTP status.",
	},
	[]string{"status"},
)

// PasswordHashDuration measures bcrypt work including time queued on the pool.
// Label:
//   - op: "hash" or "compare"
var PasswordHashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// WorkerPoolQueueDepth tracks jobs waiting for a free worker.
var WorkerPoolQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "worker_pool_queue_depth",
		Help:      "Current number of jobs waiting in the CPU worker pool.",
	},
)

// ── Media and mail metrics ────────────────────────────────────────────────────

// UploadsTotal counts object storage uploads.
// Labels:
//   - folder: "topics", "articles", "courses" or "videos"
//   - result: "ok" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of media uploads, by folder and result.",
	},
	[]string{"folder", "result"},
)

// UploadBytes observes the size of uploaded files.
var UploadBytes = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_size_bytes",
		Help:      "Size of uploaded media files.",
		Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 8), // 64KiB .. ~1GiB
	},
	[]string{"folder"},
)

// EmailsTotal counts verification e-mails.
// Labels:
//   - mode: "smtp" or "simulated"
//   - result: "ok" or "error"
var EmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_total",
		Help:      "Total number of verification e-mails, by delivery mode and result.",
	},
	[]string{"mode", "result"},
)

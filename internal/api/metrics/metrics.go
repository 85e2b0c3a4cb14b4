// Package metrics defines and registers all custom Prometheus metrics for the
// location verification service. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "locver"

// ── Verification gate metrics ─────────────────────────────────────────────────

// VerificationsTotal counts hard-gate verifications by outcome.
// Labels:
//   - outcome: "verified" or "rejected"
//   - reason: the gate failure reason, or "none" when verified
var VerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_total",
		Help:      "Total number of hard-gate location verifications, by outcome and reason.",
	},
	[]string{"outcome", "reason"},
)

// ── Anti-spoofing metrics ─────────────────────────────────────────────────────

// ValidationsTotal counts full anti-spoofing validations by verdict.
// Label:
//   - verdict: "valid" (score below threshold) or "suspect"
var ValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validations_total",
		Help:      "Total number of anti-spoofing validations, by verdict.",
	},
	[]string{"verdict"},
)

// RiskFlagsTotal counts heuristic flags raised, by flag type.
var RiskFlagsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "risk_flags_total",
		Help:      "Total number of risk flags raised, by flag.",
	},
	[]string{"flag"},
)

// RiskScore observes the composite risk score distribution.
var RiskScore = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "risk_score",
		Help:      "Distribution of composite anti-spoofing risk scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0,10,…,100
	},
)

// ── IP lookup metrics ─────────────────────────────────────────────────────────

// IPLookupDuration measures the latency of the coarse IP geolocation lookup.
// Label:
//   - result: "hit" (resolved), "miss" (lookup failed / skipped)
var IPLookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ip_lookup_duration_seconds",
		Help:      "Duration of IP geolocation lookups, by result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit records waiting in each worker
// channel of the async audit dispatcher.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

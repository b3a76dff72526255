// Package metrics defines and registers the custom Prometheus metrics for
// the content API. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "content"

// ── Fallback metrics ──────────────────────────────────────────────────────────

// ContentFallbackTotal counts responses served from the static fallback
// dataset instead of the live store.
// Label:
//   - endpoint: "categories", "articles" or "article"
var ContentFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallback_total",
		Help:      "Total number of responses served from the static fallback dataset.",
	},
	[]string{"endpoint"},
)

// ── Newsletter metrics ────────────────────────────────────────────────────────

// NewsletterSignupsTotal counts signup attempts.
// Label:
//   - result: "subscribed", "duplicate" or "error"
var NewsletterSignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "newsletter_signups_total",
		Help:      "Total number of newsletter signup attempts, by result.",
	},
	[]string{"result"},
)

// ── Page-view pipeline metrics ────────────────────────────────────────────────

// ViewsProcessedTotal counts page views persisted by the dispatcher workers.
var ViewsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_processed_total",
		Help:      "Total number of page views successfully persisted.",
	},
)

// ViewsErrorsTotal counts page views that failed to persist.
var ViewsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_errors_total",
		Help:      "Total number of page views that failed to persist.",
	},
)

// ViewsQueueDepth tracks the number of views waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var ViewsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "views_queue_depth",
		Help:      "Current number of page views pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TradeMetrics holds the prometheus instruments of the trade core.
// A nil *TradeMetrics is valid and records nothing.
type TradeMetrics struct {
	TransactionsCreatedTotal   prometheus.Counter
	TransactionsCompletedTotal prometheus.Counter
	TransactionsCancelledTotal prometheus.Counter

	TransactionsCreatedAmountTotal   prometheus.Counter
	TransactionsCompletedAmountTotal prometheus.Counter
	PlatformFeeTotal                 prometheus.Counter

	DisputesOpenedTotal   prometheus.Counter
	DisputesResolvedTotal *prometheus.CounterVec

	MatchRequestsTotal    *prometheus.CounterVec
	MatchCandidatesFound  prometheus.Histogram
	WebhookRejectedTotal  prometheus.Counter
	RequestDuration       *prometheus.HistogramVec
}

func NewTradeMetrics() *TradeMetrics {
	return &TradeMetrics{
		TransactionsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_transactions_created_total",
			Help: "Total number of transactions initiated",
		}),
		TransactionsCompletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_transactions_completed_total",
			Help: "Total number of transactions released to the seller",
		}),
		TransactionsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_transactions_cancelled_total",
			Help: "Total number of transactions cancelled before escrow",
		}),
		TransactionsCreatedAmountTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_transactions_created_amount_total",
			Help: "Total amount of initiated transactions",
		}),
		TransactionsCompletedAmountTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_transactions_completed_amount_total",
			Help: "Total amount of released transactions",
		}),
		PlatformFeeTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_platform_fee_total",
			Help: "Total platform fees of released transactions",
		}),
		DisputesOpenedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_disputes_opened_total",
			Help: "Total number of disputes opened",
		}),
		DisputesResolvedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_disputes_resolved_total",
			Help: "Total number of disputes resolved, by outcome",
		}, []string{"outcome"}),
		MatchRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_match_requests_total",
			Help: "Total number of match searches, by direction",
		}, []string{"direction"}),
		MatchCandidatesFound: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "trade_match_candidates_found",
			Help:    "Number of candidates returned per match search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		WebhookRejectedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trade_webhook_rejected_total",
			Help: "Total number of webhook payloads rejected on signature",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trade_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *TradeMetrics) RecordTransactionCreated(amount float64) {
	if m == nil {
		return
	}
	m.TransactionsCreatedTotal.Inc()
	m.TransactionsCreatedAmountTotal.Add(amount)
}

func (m *TradeMetrics) RecordTransactionCompleted(amount, fee float64) {
	if m == nil {
		return
	}
	m.TransactionsCompletedTotal.Inc()
	m.TransactionsCompletedAmountTotal.Add(amount)
	m.PlatformFeeTotal.Add(fee)
}

func (m *TradeMetrics) RecordTransactionCancelled(amount float64) {
	if m == nil {
		return
	}
	m.TransactionsCancelledTotal.Inc()
}

func (m *TradeMetrics) RecordDisputeOpened() {
	if m == nil {
		return
	}
	m.DisputesOpenedTotal.Inc()
}

func (m *TradeMetrics) RecordDisputeResolved(refunded bool) {
	if m == nil {
		return
	}
	outcome := "released"
	if refunded {
		outcome = "refunded"
	}
	m.DisputesResolvedTotal.WithLabelValues(outcome).Inc()
}

func (m *TradeMetrics) RecordMatchSearch(direction string, candidates int) {
	if m == nil {
		return
	}
	m.MatchRequestsTotal.WithLabelValues(direction).Inc()
	m.MatchCandidatesFound.Observe(float64(candidates))
}

func (m *TradeMetrics) RecordWebhookRejected() {
	if m == nil {
		return
	}
	m.WebhookRejectedTotal.Inc()
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lostfound"

// Recorder is what usecases and infrastructure report into.
type Recorder interface {
	EmbeddingGenerated(backend string)
	EmbeddingFailed(backend string)
	MatchCandidates(n int)
	MatchesInserted(n int)
	MatchPairSkipped(reason string)
	PipelineRun(d time.Duration, err error)
	ClaimSubmitted()
	ClaimDecided(status string)
	NotificationSent(typ string)
	NotificationFailed(typ string)
}

type Collector struct {
	embeddings    *prometheus.CounterVec
	candidates    prometheus.Counter
	inserted      prometheus.Counter
	skippedPairs  *prometheus.CounterVec
	pipelineRuns  *prometheus.CounterVec
	pipelineTime  prometheus.Histogram
	claimsCreated prometheus.Counter
	claimsDecided *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		embeddings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "embeddings_total",
			Help:      "Embedding computations by backend and result.",
		}, []string{"backend", "result"}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_candidates_total",
			Help:      "Candidate matches emitted by the generator.",
		}),
		inserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_inserted_total",
			Help:      "Match rows persisted.",
		}),
		skippedPairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_pairs_skipped_total",
			Help:      "Items skipped during a scan because of unreadable embeddings.",
		}, []string{"reason"}),
		pipelineRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matching_runs_total",
			Help:      "Matching pipeline runs by result.",
		}, []string{"result"}),
		pipelineTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "matching_run_duration_seconds",
			Help:      "Matching pipeline duration.",
			Buckets:   prometheus.DefBuckets,
		}),
		claimsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_submitted_total",
			Help:      "Claims submitted.",
		}),
		claimsDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_decided_total",
			Help:      "Claims moved out of Pending, by resulting status.",
		}, []string{"status"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by type and result.",
		}, []string{"type", "result"}),
	}
	reg.MustRegister(
		c.embeddings, c.candidates, c.inserted, c.skippedPairs,
		c.pipelineRuns, c.pipelineTime, c.claimsCreated, c.claimsDecided, c.notifications,
	)
	return c
}

func (c *Collector) EmbeddingGenerated(backend string) {
	c.embeddings.WithLabelValues(backend, "ok").Inc()
}

func (c *Collector) EmbeddingFailed(backend string) {
	c.embeddings.WithLabelValues(backend, "error").Inc()
}

func (c *Collector) MatchCandidates(n int) { c.candidates.Add(float64(n)) }

func (c *Collector) MatchesInserted(n int) { c.inserted.Add(float64(n)) }

func (c *Collector) MatchPairSkipped(reason string) {
	c.skippedPairs.WithLabelValues(reason).Inc()
}

func (c *Collector) PipelineRun(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.pipelineRuns.WithLabelValues(result).Inc()
	c.pipelineTime.Observe(d.Seconds())
}

func (c *Collector) ClaimSubmitted() { c.claimsCreated.Inc() }

func (c *Collector) ClaimDecided(status string) {
	c.claimsDecided.WithLabelValues(status).Inc()
}

func (c *Collector) NotificationSent(typ string) {
	c.notifications.WithLabelValues(typ, "ok").Inc()
}

func (c *Collector) NotificationFailed(typ string) {
	c.notifications.WithLabelValues(typ, "error").Inc()
}

// Handler serves the registry for scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything; used when metrics are not wired.
type Nop struct{}

func (Nop) EmbeddingGenerated(string) {}
func (Nop) EmbeddingFailed(string) {}
func (Nop) MatchCandidates(int) {}
func (Nop) MatchesInserted(int) {}
func (Nop) MatchPairSkipped(string) {}
func (Nop) PipelineRun(time.Duration, error) {}
func (Nop) ClaimSubmitted() {}
func (Nop) ClaimDecided(string) {}
func (Nop) NotificationSent(string) {}
func (Nop) NotificationFailed(string) {}

var (
	_ Recorder = (*Collector)(nil)
	_ Recorder = Nop{}
)

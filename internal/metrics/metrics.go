package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"linkstash/internal/db"
)

var (
	usersDesc = prometheus.NewDesc(
		"linkstash_users_total",
		"Total number of registered users",
		nil, nil,
	)
	linksDesc = prometheus.NewDesc(
		"linkstash_links_total",
		"Total number of saved links",
		nil, nil,
	)
	sharesDesc = prometheus.NewDesc(
		"linkstash_shares_total",
		"Total number of share grants",
		nil, nil,
	)

	enrichmentCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkstash_enrichment_requests_total",
			Help: "Content enrichment attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// StoreCollector is a custom Prometheus collector that reads entity
// counts from the database on each scrape.
type StoreCollector struct {
	db *db.DB
}

// Describe sends the metric descriptors to the channel.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- usersDesc
	ch <- linksDesc
	ch <- sharesDesc
}

// Collect queries the database for entity counts and emits them as gauges.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	counts := []struct {
		desc  *prometheus.Desc
		query func(context.Context) (int, error)
	}{
		{usersDesc, c.db.GetUserCount},
		{linksDesc, c.db.GetLinkCount},
		{sharesDesc, c.db.GetShareCount},
	}

	for _, m := range counts {
		count, err := m.query(ctx)
		if err != nil {
			slog.Error("failed to collect store metrics", "error", err)
			continue
		}
		ch <- prometheus.MustNewConstMetric(m.desc, prometheus.GaugeValue, float64(count))
	}
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&StoreCollector{db: database})
		prometheus.MustRegister(enrichmentCounter)
	})
}

// RecordEnrichment records a content enrichment outcome
// ("success", "failure", or "blocked").
func RecordEnrichment(outcome string) {
	enrichmentCounter.WithLabelValues(outcome).Inc()
}

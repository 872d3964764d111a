// Package engine wires normalization, scoring, and sizing into a cached,
// instrumented classifier.
package engine

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/vivarium-match/internal/cache"
	"github.com/couchcryptid/vivarium-match/internal/domain"
	"github.com/couchcryptid/vivarium-match/internal/observability"
)

// Classifier scores plant records against an environment profile catalog.
// Results for records with an ID are memoized.
type Classifier struct {
	catalog *domain.ProfileCatalog
	cache   *cache.LRU
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a classifier. The cache may be nil to disable memoization.
func New(catalog *domain.ProfileCatalog, c *cache.LRU, logger *slog.Logger, metrics *observability.Metrics) *Classifier {
	return &Classifier{
		catalog: catalog,
		cache:   c,
		logger:  logger,
		metrics: metrics,
	}
}

// Classify ranks the qualifying profiles for one plant record. A runtime
// fault anywhere in normalization or scoring degrades to the keyword-only
// fallback classifier instead of propagating, so one malformed record cannot
// take down a batch.
func (c *Classifier) Classify(rec domain.PlantRecord) (result domain.Classification) {
	if rec.ID != "" && c.cache != nil {
		if cached, ok := c.cache.Get(rec.ID); ok {
			c.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return cached
		}
		c.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		c.metrics.ScoringFaults.Inc()
		c.metrics.Fallbacks.WithLabelValues("fault").Inc()
		c.logger.Warn("classification fault, using keyword fallback",
			"plant_id", rec.ID, "plant", rec.Name, "panic", r)
		result = domain.DegradedClassification(rec)
	}()

	timer := prometheus.NewTimer(c.metrics.ClassifyDuration)
	defer timer.ObserveDuration()

	in := domain.Normalize(rec)
	result = domain.ClassifyInputs(in, c.catalog)

	c.metrics.PlantsClassified.Inc()
	if len(result.Profiles) > 0 {
		c.metrics.ProfileAssignments.WithLabelValues(result.Profiles[0].Profile).Inc()
	}
	if result.Fallback {
		c.metrics.Fallbacks.WithLabelValues("below_threshold").Inc()
	}

	c.logger.Debug("plant classified",
		"plant_id", rec.ID, "plant", rec.Name,
		"profiles", result.ProfileNames(), "fallback", result.Fallback)

	if rec.ID != "" && c.cache != nil {
		c.cache.Put(rec.ID, result)
	}
	return result
}

// ClassifyAll classifies a batch of records, index-aligned with the input.
func (c *Classifier) ClassifyAll(recs []domain.PlantRecord) []domain.Classification {
	out := make([]domain.Classification, len(recs))
	for i, rec := range recs {
		out[i] = c.Classify(rec)
	}
	return out
}

// Normalize exposes attribute normalization without scoring.
func (c *Classifier) Normalize(rec domain.PlantRecord) domain.NormalizedInputs {
	return domain.Normalize(rec)
}

// EstimateEnclosure exposes enclosure sizing for one record.
func (c *Classifier) EstimateEnclosure(rec domain.PlantRecord) domain.SizeEstimate {
	return domain.EstimateEnclosure(rec.Size)
}

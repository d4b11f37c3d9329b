package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		turnsTotal,
		extractionFallbacks,
		generationFallbacks,
		handlerFaults,
		priceLookups,
		catalogItems,
		llmCallLatencyMs,
	)
}

var (
	turnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_turns_total",
			Help: "Dialogue turns processed, by the stage the turn ended in.",
		},
		[]string{"stage"},
	)

	extractionFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_extraction_fallbacks_total",
			Help: "Extractions answered by the keyword dictionary instead of the model.",
		},
		[]string{"reason"},
	)

	generationFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_generation_fallbacks_total",
			Help: "Replies rendered from templates after natural generation failed.",
		},
		[]string{"reason"},
	)

	handlerFaults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_handler_faults_total",
			Help: "Stage handler faults converted into error-stage replies.",
		},
		[]string{"stage"},
	)

	priceLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_price_lookups_total",
			Help: "Market price lookups by result (hit/miss/cached/error).",
		},
		[]string{"result"},
	)

	catalogItems = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_catalog_items_total",
			Help: "Catalog items built from confirmed listings.",
		},
	)

	llmCallLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_llm_call_latency_ms",
			Help:    "Model call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"op", "success"},
	)
)

func TurnCompleted(stage string) {
	turnsTotal.WithLabelValues(norm(stage)).Inc()
}

func ExtractionFallback(reason string) {
	extractionFallbacks.WithLabelValues(norm(reason)).Inc()
}

func GenerationFallback(reason string) {
	generationFallbacks.WithLabelValues(norm(reason)).Inc()
}

func HandlerFault(stage string) {
	handlerFaults.WithLabelValues(norm(stage)).Inc()
}

func PriceLookup(result string) {
	priceLookups.WithLabelValues(norm(result)).Inc()
}

func CatalogItemBuilt() {
	catalogItems.Inc()
}

func ObserveLLMCall(op string, started time.Time, success bool) {
	llmCallLatencyMs.WithLabelValues(norm(op), strconv.FormatBool(success)).
		Observe(float64(time.Since(started).Milliseconds()))
}

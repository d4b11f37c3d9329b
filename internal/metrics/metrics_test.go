package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersByLabel(t *testing.T) {
	before := testutil.ToFloat64(turnsTotal.WithLabelValues("greeting"))
	TurnCompleted(" Greeting ")
	assert.Equal(t, before+1, testutil.ToFloat64(turnsTotal.WithLabelValues("greeting")))

	before = testutil.ToFloat64(extractionFallbacks.WithLabelValues("unknown"))
	ExtractionFallback("")
	assert.Equal(t, before+1, testutil.ToFloat64(extractionFallbacks.WithLabelValues("unknown")))

	before = testutil.ToFloat64(catalogItems)
	CatalogItemBuilt()
	assert.Equal(t, before+1, testutil.ToFloat64(catalogItems))
}

func TestObserveLLMCall(t *testing.T) {
	ObserveLLMCall("infer", time.Now(), true)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(llmCallLatencyMs), 1)
}

func TestMustRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		MustRegister()
		MustRegister()
	})
}

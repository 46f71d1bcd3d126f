package genai

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "combat_companion_generations_total",
		Help: "Generation requests by model and result",
	}, []string{"model", "result"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "combat_companion_generation_duration_seconds",
		Help:    "Generation latency by model",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"model"})

	generationTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "combat_companion_generation_tokens_total",
		Help: "Tokens consumed by model and direction",
	}, []string{"model", "direction"})
)

func observeGeneration(model, result string, elapsed time.Duration) {
	generationsTotal.WithLabelValues(model, result).Inc()
	generationDuration.WithLabelValues(model).Observe(elapsed.Seconds())
}

func observeTokens(model string, prompt, completion int) {
	generationTokensTotal.WithLabelValues(model, "prompt").Add(float64(prompt))
	generationTokensTotal.WithLabelValues(model, "completion").Add(float64(completion))
}

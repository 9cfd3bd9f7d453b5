package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var puzzlesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mindgym_puzzles_generated_total",
	Help: "Puzzles served by game and mode.",
}, []string{"game", "mode"})

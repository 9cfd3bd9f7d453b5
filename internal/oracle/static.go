package oracle

import (
	"context"

	"mindgym.dev/mindgym/internal/domain"
	"mindgym.dev/mindgym/internal/rng"
)

// Static serves a built-in word list. It backs practice play and is
// the fallback when the generative service is unreachable or
// unconfigured. Selection is seeded by topic so the same topic always
// yields the same subset.
type Static struct{}

func NewStatic() *Static { return &Static{} }

var builtin = []domain.WordEntry{
	{Answer: "LOGIC", Clue: "Reasoning by the rules"},
	{Answer: "MEMORY", Clue: "What this gym trains"},
	{Answer: "PUZZLE", Clue: "A problem built for fun"},
	{Answer: "BRAIN", Clue: "The organ doing the work"},
	{Answer: "RIDDLE", Clue: "Question with a twist"},
	{Answer: "GRID", Clue: "Rows and columns"},
	{Answer: "CLUE", Clue: "A nudge toward the answer"},
	{Answer: "NEURON", Clue: "Signal-carrying cell"},
	{Answer: "PATTERN", Clue: "Repetition you can predict"},
	{Answer: "FOCUS", Clue: "Attention, narrowed"},
	{Answer: "RECALL", Clue: "Bring back from memory"},
	{Answer: "SOLVE", Clue: "Crack it"},
	{Answer: "ENIGMA", Clue: "Deep mystery"},
	{Answer: "CIPHER", Clue: "Message in disguise"},
	{Answer: "STREAK", Clue: "Days in a row"},
}

func (s *Static) Words(ctx context.Context, topic string, count int) ([]domain.WordEntry, error) {
	if count <= 0 || count > len(builtin) {
		count = len(builtin)
	}
	pool := make([]domain.WordEntry, len(builtin))
	copy(pool, builtin)
	stream := rng.New("words:" + topic)
	stream.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:count], nil
}

// Package searchctl contains the root-parallel iterative-deepening orchestrator.
package searchctl

import (
	"context"
	"time"
)

// NewDeadline derives a context bounded by the search's time budget (spec §6
// AI_SEARCH_TIME_MS), following the same time.AfterFunc-style enforcement as a chess
// engine's per-move time control, simplified here to a single flat budget instead of a
// remaining-clock computation (this game has no chess-clock concept).
func NewDeadline(parent context.Context, budgetMS int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(budgetMS)*time.Millisecond)
}

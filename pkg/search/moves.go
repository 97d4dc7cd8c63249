package search

import (
	"sort"

	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/eval"
)

// OrderedMoves returns the candidate 1- or 2-placement moves legal for k on b at
// turnCount, sorted best-first by heuristic score. See spec §4.3.
func OrderedMoves(b *board.Board, turnCount int, k board.Color, cfg config.Config) []ScoredMove {
	singles := legalSingles(b, k, cfg)

	pawnsToPlace := 2
	if turnCount == 1 {
		pawnsToPlace = 1
	} else if len(singles) < 2 {
		pawnsToPlace = len(singles)
	}
	if pawnsToPlace == 0 {
		return nil
	}
	if pawnsToPlace == 1 {
		sortSinglesDesc(singles)
		return toSingleMoves(singles)
	}

	return orderedDoubles(singles, cfg)
}

type scoredSquare struct {
	Square board.Square
	Score  eval.Score
}

func legalSingles(b *board.Board, k board.Color, cfg config.Config) []scoredSquare {
	var out []scoredSquare
	b.Squares(func(sq board.Square) {
		if !board.IsValidPlacement(b, nil, sq) {
			return
		}
		out = append(out, scoredSquare{Square: sq, Score: scorePlacement(b, sq, k, cfg)})
	})
	return out
}

// scorePlacement applies the step-4 heuristic: a corner penalty, plus a bonus for every
// enemy piece adjacent to the candidate square.
func scorePlacement(b *board.Board, sq board.Square, k board.Color, cfg config.Config) eval.Score {
	var score eval.Score
	if board.RegionOf(sq, b.Size()) == board.Corner {
		score -= eval.Score(cfg.CornerPlacementPenalty)
	}
	for _, nb := range eightNeighbors(sq, b.Size()) {
		if p, ok := b.Get(nb); ok && board.IsEnemy(k, p.Color) {
			score += eval.Score(cfg.ContactBonus)
		}
	}
	return score
}

func eightNeighbors(sq board.Square, n int) []board.Square {
	var out []board.Square
	for _, d := range [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}} {
		cand := board.Square{R: sq.R + d[0], C: sq.C + d[1]}
		if cand.InBounds(n) {
			out = append(out, cand)
		}
	}
	return out
}

func sortSinglesDesc(s []scoredSquare) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Score > s[j].Score })
}

func toSingleMoves(s []scoredSquare) []ScoredMove {
	out := make([]ScoredMove, len(s))
	for i, sq := range s {
		out[i] = ScoredMove{Move: board.Move{{Square: sq.Square}}, Score: sq.Score}
	}
	return out
}

// orderedDoubles implements spec §4.3 steps 6a-6e: pair the top CandidateSinglesLimit
// singles, falling back progressively if no non-near pair is available there.
func orderedDoubles(singles []scoredSquare, cfg config.Config) []ScoredMove {
	sortSinglesDesc(singles)

	limit := cfg.CandidateSinglesLimit
	if limit <= 0 || limit > len(singles) {
		limit = len(singles)
	}
	top := singles[:limit]

	var doubles []ScoredMove
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			if board.Near(top[i].Square, top[j].Square) {
				continue
			}
			doubles = append(doubles, ScoredMove{
				Move:  board.Move{{Square: top[i].Square}, {Square: top[j].Square}},
				Score: top[i].Score + top[j].Score,
			})
		}
	}
	if len(doubles) > 0 {
		sort.SliceStable(doubles, func(i, j int) bool { return doubles[i].Score > doubles[j].Score })
		return doubles
	}

	// Fallback (d): any non-near pair in the full singles set.
	for i := 0; i < len(singles); i++ {
		for j := i + 1; j < len(singles); j++ {
			if board.Near(singles[i].Square, singles[j].Square) {
				continue
			}
			return []ScoredMove{{
				Move:  board.Move{{Square: singles[i].Square}, {Square: singles[j].Square}},
				Score: singles[i].Score + singles[j].Score,
			}}
		}
	}

	// Final fallback (e): the single best singleton as a one-placement move.
	if len(singles) > 0 {
		return []ScoredMove{{Move: board.Move{{Square: singles[0].Square}}, Score: singles[0].Score}}
	}
	return nil
}

// ConversionMoves returns the subset of OrderedMoves that capture at least one enemy
// piece when fully applied, annotated by total conversion count and sorted by that
// count descending. Used by quiescence search. See spec §4.3.
func ConversionMoves(b *board.Board, turnCount int, k board.Color, cfg config.Config) []ScoredMove {
	candidates := OrderedMoves(b, turnCount, k, cfg)

	var out []ScoredMove
	for _, cm := range candidates {
		n := countConversions(b, cm.Move, k)
		if n > 0 {
			out = append(out, ScoredMove{Move: cm.Move, Score: eval.Score(n)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// countConversions reports how many cells change to k's color as a result of applying m,
// excluding the move's own placement squares (which are New regardless of capture).
func countConversions(b *board.Board, m board.Move, k board.Color) int {
	after := board.ApplyMove(b, m, k)
	placed := make(map[board.Square]bool, len(m))
	for _, p := range m {
		placed[p.Square] = true
	}

	count := 0
	after.Squares(func(sq board.Square) {
		if placed[sq] {
			return
		}
		before, beforeOK := b.Get(sq)
		afterP, afterOK := after.Get(sq)
		if !afterOK || afterP.Color != k {
			return
		}
		if !beforeOK || board.IsEnemy(k, before.Color) {
			count++
		}
	})
	return count
}

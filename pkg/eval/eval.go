package eval

import (
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
)

// Unit returns the signed unit for a team: +1 for team 1, -1 for team 2.
func Unit(t board.Team) Score {
	if t == board.Team1 {
		return 1
	}
	return -1
}

// Evaluate returns the static evaluation of b from team 1's perspective, per spec §4.2:
// a terminal win/loss bonus of +/-WinScore, otherwise piece-count advantage, the
// territorial extent bonus of each team's 8-connected same-team components, and a
// penalty for occupying a corner.
func Evaluate(b *board.Board, cfg config.Config) Score {
	if winner, _, ok := board.CheckWinCondition(b); ok {
		if board.TeamOf(winner) == board.Team1 {
			return Score(cfg.WinScore)
		}
		return -Score(cfg.WinScore)
	}

	var pieces [2]int32
	var cornerPenalty [2]int32

	for _, occ := range b.Occupants() {
		t := board.TeamOf(occ.Piece.Color)
		pieces[t]++
		if board.RegionOf(occ.Square, b.Size()) == board.Corner {
			cornerPenalty[t] += cfg.StaticCornerPenalty
		}
	}

	extent := extentBonus(b, cfg)

	pieceAdvantage := Score(pieces[board.Team1]-pieces[board.Team2]) * Score(cfg.PieceValue)
	final := pieceAdvantage +
		(extent[board.Team1] - extent[board.Team2]) -
		Score(cornerPenalty[board.Team1]) + Score(cornerPenalty[board.Team2])
	return final
}

// extentBonus flood-fills 8-connected same-team components and sums extent^2 *
// multiplier per team, where extent is the max of the component's bounding-box height
// and width.
func extentBonus(b *board.Board, cfg config.Config) [2]Score {
	n := b.Size()
	visited := make([]bool, n*n)
	var bonus [2]Score

	idx := func(sq board.Square) int { return sq.R*n + sq.C }

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			start := board.Square{R: r, C: c}
			if visited[idx(start)] {
				continue
			}
			p, ok := b.Get(start)
			if !ok {
				visited[idx(start)] = true
				continue
			}
			team := board.TeamOf(p.Color)

			minR, maxR, minC, maxC := r, r, c, c
			queue := []board.Square{start}
			visited[idx(start)] = true

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]

				if cur.R < minR {
					minR = cur.R
				}
				if cur.R > maxR {
					maxR = cur.R
				}
				if cur.C < minC {
					minC = cur.C
				}
				if cur.C > maxC {
					maxC = cur.C
				}

				for _, d := range [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}} {
					nb := board.Square{R: cur.R + d[0], C: cur.C + d[1]}
					if !nb.InBounds(n) || visited[idx(nb)] {
						continue
					}
					np, ok := b.Get(nb)
					if !ok || board.TeamOf(np.Color) != team {
						continue
					}
					visited[idx(nb)] = true
					queue = append(queue, nb)
				}
			}

			extent := maxR - minR
			if w := maxC - minC; w > extent {
				extent = w
			}
			bonus[team] += Score(int32(extent*extent) * cfg.ExtentBonusMultiplier)
		}
	}
	return bonus
}

package board

// CheckWinCondition tests each color in stable turn order for a connected path of its
// cells (8-connected, corner squares excluded entirely) spanning opposite edges: either
// top row to bottom row, or left column to right column. The first color found to have
// such a path wins; its path is returned as an ordered cell sequence from one edge to
// the other. See spec §4.1.
func CheckWinCondition(b *Board) (Color, []Square, bool) {
	for _, k := range Colors {
		if path, ok := connectingPath(b, k); ok {
			return k, path, true
		}
	}
	return ZeroColor, nil, false
}

func connectingPath(b *Board, k Color) ([]Square, bool) {
	n := b.Size()

	isNode := func(sq Square) bool {
		if RegionOf(sq, n) == Corner {
			return false
		}
		p, ok := b.Get(sq)
		return ok && p.Color == k
	}

	var starts []Square
	var isGoal func(sq Square) bool

	// North/south: top row to bottom row.
	for c := 0; c < n; c++ {
		if sq := (Square{0, c}); isNode(sq) {
			starts = append(starts, sq)
		}
	}
	isGoal = func(sq Square) bool { return sq.R == n-1 }
	if path, ok := bfsPath(b, isNode, starts, isGoal); ok {
		return path, true
	}

	// East/west: left column to right column.
	starts = nil
	for r := 0; r < n; r++ {
		if sq := (Square{r, 0}); isNode(sq) {
			starts = append(starts, sq)
		}
	}
	isGoal = func(sq Square) bool { return sq.C == n-1 }
	if path, ok := bfsPath(b, isNode, starts, isGoal); ok {
		return path, true
	}

	return nil, false
}

func bfsPath(b *Board, isNode func(Square) bool, starts []Square, isGoal func(Square) bool) ([]Square, bool) {
	n := b.Size()
	visited := make(map[Square]bool)
	parent := make(map[Square]Square)

	queue := make([]Square, 0, len(starts))
	for _, s := range starts {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if isGoal(cur) {
			return reconstruct(parent, cur, starts), true
		}

		for _, nb := range neighbors8(cur, n) {
			if visited[nb] || !isNode(nb) {
				continue
			}
			visited[nb] = true
			parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	return nil, false
}

func reconstruct(parent map[Square]Square, goal Square, starts []Square) []Square {
	path := []Square{goal}
	cur := goal
	for {
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse into start->goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

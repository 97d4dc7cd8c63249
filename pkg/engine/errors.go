package engine

import "github.com/tessellate-games/territoryai/pkg/search/searchctl"

// ErrNoLegalMove indicates the root position has no legal move. The caller treats this
// as a draw. See spec §7.
var ErrNoLegalMove = searchctl.ErrNoLegalMove

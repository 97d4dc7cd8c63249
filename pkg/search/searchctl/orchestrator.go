package searchctl

import (
	"context"
	"errors"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/eval"
	"github.com/tessellate-games/territoryai/pkg/search"
	"go.uber.org/atomic"
)

// ErrNoLegalMove indicates root-move generation found nothing to play. Per spec §7, the
// caller treats this as a draw.
var ErrNoLegalMove = errors.New("no legal move")

// defaultWorkerTTEntries bounds each worker's private transposition table. Spec §4.4/§9
// treats the table as an unbounded map refined to a fixed-capacity accelerator; the
// search request carries no hash-size knob, so every worker gets the same modest table.
const defaultWorkerTTEntries = 1 << 16

// Request is a root search request, per spec §6.
type Request struct {
	Board              *board.Board
	CurrentPlayerIndex int
	TurnCount          int
	Config             config.Config

	// DepthLimit, if set, caps the search below Config.AIMaxDepth for this request only
	// (e.g. a caller running a quick analysis pass). Unset means no additional cap.
	DepthLimit lang.Optional[int]
}

// Result is the orchestrator's best-effort outcome of a search, per spec §6's reply
// shape (BestMove/Score/Depth), plus Nodes for diagnostics.
type Result struct {
	BestMove board.Move
	Score    eval.Score
	Depth    int
	Nodes    uint64
}

type jobRequest struct {
	idx, gen    int
	ctx         context.Context
	board       *board.Board
	depth       int
	alpha, beta eval.Score

	playerIndex, turnCount int
}

type jobReply struct {
	idx, gen int
	score    eval.Score
	nodes    uint64
	fault    bool
}

// Orchestrator owns a fixed pool of workers, reused across requests (spec §5). It
// implements iterative deepening with root moves dispatched round-robin across the
// pool, mirroring a slave-pool fan-out over a fixed set of private-state executors.
type Orchestrator struct {
	workers []*search.Worker
	jobCh   []chan jobRequest
	replyCh chan jobReply
	quit    iox.AsyncCloser
	gen     atomic.Int64
	faults  atomic.Int64
}

// NewOrchestrator starts workerCount persistent worker goroutines.
func NewOrchestrator(workerCount int) *Orchestrator {
	if workerCount < 1 {
		workerCount = 1
	}
	o := &Orchestrator{
		workers: make([]*search.Worker, workerCount),
		jobCh:   make([]chan jobRequest, workerCount),
		replyCh: make(chan jobReply, 1024),
		quit:    iox.NewAsyncCloser(),
	}
	for i := range o.workers {
		o.workers[i] = search.NewWorker()
		o.jobCh[i] = make(chan jobRequest)
		go o.runWorker(i)
	}
	return o
}

// Close stops every worker goroutine. The orchestrator must not be used afterwards.
func (o *Orchestrator) Close() {
	o.quit.Close()
}

func (o *Orchestrator) runWorker(i int) {
	w := o.workers[i]
	for {
		select {
		case req := <-o.jobCh[i]:
			o.replyCh <- o.runJob(w, req)
		case <-o.quit.Closed():
			return
		}
	}
}

func (o *Orchestrator) runJob(w *search.Worker, req jobRequest) (reply jobReply) {
	reply.idx, reply.gen = req.idx, req.gen
	defer func() {
		if r := recover(); r != nil {
			reply.fault = true
			reply.score = eval.NegInfScore
		}
	}()

	score, nodes, err := w.Search(req.ctx, req.board, req.depth, req.alpha, req.beta, req.playerIndex, req.turnCount)
	if err != nil && err != search.ErrHalted {
		reply.fault = true
		reply.score = eval.NegInfScore
		return
	}
	reply.score, reply.nodes = score, nodes
	return
}

// Init broadcasts configuration and Zobrist tables to every worker, clearing its
// transposition table and history heuristic. See spec §4.6 step 2.
func (o *Orchestrator) Init(cfg config.Config, zt *board.ZobristTable) {
	for _, w := range o.workers {
		w.Init(cfg, zt, search.NewTranspositionTable(defaultWorkerTTEntries))
	}
}

// Search runs iterative deepening from req.Board, dispatching one job per root move per
// depth, round-robin across the pool, until the time budget elapses or AIMaxDepth is
// reached. It never returns a move evaluated at a depth that did not complete across
// every root move. See spec §4.6, §5, §7.
func (o *Orchestrator) Search(ctx context.Context, req Request) (Result, error) {
	if err := req.Config.Validate(); err != nil {
		return Result{}, err
	}

	side := board.ColorAt(req.CurrentPlayerIndex)
	rootMoves := search.OrderedMoves(req.Board, req.TurnCount, side, req.Config)
	if len(rootMoves) == 0 {
		return Result{}, ErrNoLegalMove
	}

	deadline, cancel := NewDeadline(ctx, req.Config.AISearchTimeMS)
	defer cancel()

	next := (req.CurrentPlayerIndex + 1) % int(board.NumColors)

	best := Result{BestMove: rootMoves[0].Move}

	maxDepth := req.Config.AIMaxDepth
	if limit, ok := req.DepthLimit.V(); ok && limit < maxDepth {
		maxDepth = limit
	}

	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		gen := int(o.gen.Inc())

		for i, rm := range rootMoves {
			child := board.ApplyMove(req.Board, rm.Move, side)
			worker := i % len(o.workers)
			go func(i int, child *board.Board, worker int) {
				defer func() { recover() }() // a panicking send should not crash the pool

				o.jobCh[worker] <- jobRequest{
					idx: i, gen: gen,
					ctx:         deadline,
					board:       child,
					depth:       depth - 1,
					alpha:       eval.NegInfScore,
					beta:        eval.InfScore,
					playerIndex: next,
					turnCount:   req.TurnCount + 1,
				}
			}(i, child, worker)
		}

		results := make([]jobReply, len(rootMoves))
		pending := len(rootMoves)
		timedOut := false

	collect:
		for pending > 0 {
			select {
			case r := <-o.replyCh:
				if r.gen != gen {
					continue collect // stale reply from an abandoned depth; discard
				}
				results[r.idx] = r
				pending--
			case <-deadline.Done():
				timedOut = true
				break collect
			}
		}
		if timedOut || deadline.Err() != nil {
			// Replies from halted jobs carry no full-depth score, so a depth collected after
			// the deadline fired is not used.
			logw.Debugf(ctx, "search timed out mid-depth=%v; returning depth=%v result", depth, best.Depth)
			break
		}

		bestIdx, bestValue, totalNodes, faults := 0, eval.NegInfScore, uint64(0), 0
		for i, r := range results {
			totalNodes += r.nodes
			val := -r.score
			if r.fault {
				faults++
				val = eval.NegInfScore
			}
			if val > bestValue {
				bestValue, bestIdx = val, i
			}
		}
		if faults > 0 {
			o.faults.Add(int64(faults))
			logw.Errorf(ctx, "search depth=%v: %v worker fault(s) resolved with -inf (lifetime total=%v)", depth, faults, o.faults.Load())
		}

		best = Result{BestMove: rootMoves[bestIdx].Move, Score: bestValue, Depth: depth, Nodes: totalNodes}
		logw.Debugf(ctx, "completed depth=%v: %v nodes=%v time=%v", depth, best.BestMove, totalNodes, time.Since(start))

		// Principal-variation reordering: promote the best move to the front.
		rootMoves[0], rootMoves[bestIdx] = rootMoves[bestIdx], rootMoves[0]

		if md, ok := mateDistance(bestValue, req.Config); ok && md <= depth {
			break // forced win found within full-width search; exact result
		}
	}

	return best, nil
}

// mateDistance reports whether the score is a win/loss bound rather than a heuristic
// evaluation. Scores carry no ply count, so a win/loss is always reported at distance 1.
func mateDistance(s eval.Score, cfg config.Config) (int, bool) {
	if s >= eval.Score(cfg.WinScore) || s <= -eval.Score(cfg.WinScore) {
		return 1, true
	}
	return 0, false
}

package astar

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/pathkit/pathcore"
)

// Phase tracks a BudgetedSearch's lifecycle.
type Phase int

const (
	// NotStarted means New was called but Start has not been.
	NotStarted Phase = iota
	// InProgress means the frontier holds unexplored state.
	InProgress
	// Complete means the search reached a terminal state (Found or
	// NotFound); TakeResult is now valid.
	Complete
)

// suspendEvery is how many frontier pops a Step call performs between
// budget checks. A cheap amortized check (spec §4.4: "K=10 is sufficient").
const suspendEvery = 10

// BudgetedSearch is a long-lived, resumable A* search: Step(budget) runs
// the inner loop until either the search terminates or the wall-clock
// budget for that call is exhausted, at which point it suspends and
// returns false. Resuming with another Step call continues from exactly
// where it left off, with the same result as a single blocking Search
// call made without MaxIterations or Timeout. Of the Options, only
// TieBreaking is applied: Step checks neither MaxIterations nor Timeout,
// so the search ends only as Found or NotFound.
type BudgetedSearch[N comparable] struct {
	phase  Phase
	start  N
	goal   N
	cfg    Options
	bestG  map[N]float32
	parent map[N]N
	fr     *frontier[N]
	seq    int

	iterations    int
	nodesExpanded int
	lastPartial   pathcore.PathResult[N]
	final         pathcore.PathResult[N]
}

// NewBudgeted returns a BudgetedSearch in the NotStarted phase.
func NewBudgeted[N comparable](opts ...Option) *BudgetedSearch[N] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BudgetedSearch[N]{phase: NotStarted, cfg: cfg}
}

// Phase reports the search's current lifecycle phase.
func (b *BudgetedSearch[N]) Phase() Phase { return b.phase }

// Start clears all state and seeds the frontier for a new start/goal pair,
// transitioning to InProgress.
func (b *BudgetedSearch[N]) Start(start, goal N, heuristic pathcore.Heuristic[N]) {
	b.start = start
	b.goal = goal
	b.bestG = map[N]float32{start: 0}
	b.parent = map[N]N{}
	b.seq = 0
	b.iterations = 0
	b.nodesExpanded = 0
	b.lastPartial = pathcore.PathResult[N]{}
	b.final = pathcore.PathResult[N]{}

	b.fr = &frontier[N]{tb: b.cfg.TieBreaking}
	heap.Init(b.fr)
	heap.Push(b.fr, &state[N]{node: start, g: 0, f: heuristic.Estimate(start, goal), seq: b.seq})
	b.seq++

	b.phase = InProgress
}

// Step resumes the inner A* loop for up to budget wall-clock time (checked
// every suspendEvery pops), and reports whether the search has terminated.
// If it has not, PartialResult reflects the suspension point; the next
// Step call continues from the same frontier.
func (b *BudgetedSearch[N]) Step(graph pathcore.Graph[N], heuristic pathcore.Heuristic[N], budget time.Duration) bool {
	if b.phase != InProgress {
		return true
	}

	stepStarted := time.Now()
	sinceEntry := 0

	for b.fr.Len() > 0 {
		cur := heap.Pop(b.fr).(*state[N])
		b.iterations++
		sinceEntry++

		if cur.node == b.goal {
			b.final = reconstruct(b.parent, b.start, b.goal, cur.g, b.nodesExpanded, pathcore.Found)
			b.lastPartial = b.final
			b.phase = Complete
			return true
		}

		if known, ok := b.bestG[cur.node]; ok && known < cur.g {
			continue
		}

		if sinceEntry%suspendEvery == 0 && time.Since(stepStarted) > budget {
			// Re-push the node we just popped so the next Step resumes
			// exploring it exactly as if this pop never happened.
			heap.Push(b.fr, cur)
			b.lastPartial = reconstruct(b.parent, b.start, cur.node, cur.g, b.nodesExpanded, pathcore.PartialTimeout)
			return false
		}

		b.nodesExpanded++

		graph.Neighbors(cur.node, func(neighbor N, edgeCost float32) {
			tentativeG := cur.g + edgeCost
			if known, ok := b.bestG[neighbor]; ok && !(tentativeG < known) {
				return
			}
			b.bestG[neighbor] = tentativeG
			b.parent[neighbor] = cur.node
			h := heuristic.Estimate(neighbor, b.goal)
			heap.Push(b.fr, &state[N]{node: neighbor, g: tentativeG, f: tentativeG + h, tieVal: tentativeG, seq: b.seq})
			b.seq++
		})
	}

	b.final = pathcore.PathResult[N]{Status: pathcore.NotFound, NodesExpanded: b.nodesExpanded}
	b.lastPartial = b.final
	b.phase = Complete
	return true
}

// PartialResult returns the best path reconstructed as of the most recent
// suspension or completion.
func (b *BudgetedSearch[N]) PartialResult() pathcore.PathResult[N] {
	return b.lastPartial
}

// TakeResult returns the final PathResult. Valid only once Phase() ==
// Complete; otherwise returns the zero PathResult with Status=NotFound.
func (b *BudgetedSearch[N]) TakeResult() pathcore.PathResult[N] {
	if b.phase != Complete {
		return pathcore.PathResult[N]{Status: pathcore.NotFound}
	}
	return b.final
}

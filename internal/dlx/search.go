package dlx

import "math"

// Tracer observes a Mesh's cover/uncover/step activity as it runs. All
// methods must be safe to call from Step/Next, which run synchronously on
// whichever goroutine drives the Mesh.
type Tracer interface {
	Cover(col int)
	Uncover(col int)
	Step(forward bool, row int)
}

type noopTracer struct{}

func (noopTracer) Cover(int)      {}
func (noopTracer) Uncover(int)    {}
func (noopTracer) Step(bool, int) {}

// chooseColumn applies the S-heuristic: the header row is walked once and
// the column with the fewest remaining candidate rows wins, ties broken by
// first-encountered order. It returns that column's first candidate row.
func (m *Mesh) chooseColumn() (handle, bool) {
	best := invalidHandle
	bestSize := math.MaxInt

	for h := m.at(m.root).right; h != m.root; h = m.at(h).right {
		size := m.columnSize[m.at(h).col]
		if size < bestSize {
			best = h
			bestSize = size
		}
	}

	if best == invalidHandle {
		return invalidHandle, false
	}
	return m.at(best).down, true
}

// IsCompleted reports whether the search stack has been fully drained.
func (m *Mesh) IsCompleted() bool {
	return len(m.stepStack) == 0
}

// PartialSolution returns the row indices chosen along the current search
// path, for observability; it is not a copy of internal state that callers
// should mutate.
func (m *Mesh) PartialSolution() []int {
	return m.partialSolution
}

// Step advances the search engine by exactly one step, returning a freshly
// completed solution if this step finished one, or nil otherwise. Calling
// Step after IsCompleted is a no-op that returns nil, false.
func (m *Mesh) Step() ([]int, bool) {
	if len(m.stepStack) == 0 {
		return nil, false
	}

	top := m.stepStack[len(m.stepStack)-1]
	m.stepStack = m.stepStack[:len(m.stepStack)-1]

	// Sentinel guard: the chosen column was empty, so this branch is
	// infeasible. Discard the step without mutating the mesh.
	if top.node == m.at(top.node).header {
		return nil, false
	}

	if top.backtracking {
		m.stepBackward(top.node)
	} else {
		m.stepForward(top.node)
	}

	if m.at(m.root).right == m.root {
		solution := make([]int, len(m.partialSolution))
		copy(solution, m.partialSolution)
		return solution, true
	}
	return nil, false
}

// Next pulls the engine forward until it produces a solution or the stack
// drains, so callers can range over solutions without caring about the
// step/backtrack boundary in between.
func (m *Mesh) Next() ([]int, bool) {
	for !m.IsCompleted() {
		if solution, ok := m.Step(); ok {
			return solution, true
		}
	}
	return nil, false
}

func (m *Mesh) stepForward(n handle) {
	row := m.at(n).row
	m.partialSolution = append(m.partialSolution, row)
	m.Tracer.Step(true, row)

	for current := n; ; {
		m.cover(current)
		current = m.at(current).right
		if current == n {
			break
		}
	}

	m.stepStack = append(m.stepStack, step{node: n, backtracking: true})

	if next, ok := m.chooseColumn(); ok {
		m.stepStack = append(m.stepStack, step{node: next, backtracking: false})
	}
}

func (m *Mesh) stepBackward(n handle) {
	row := m.at(n).row
	m.partialSolution = m.partialSolution[:len(m.partialSolution)-1]
	m.Tracer.Step(false, row)

	for current := m.at(n).left; ; {
		m.uncover(current)
		if current == n {
			break
		}
		current = m.at(current).left
	}

	if down := m.at(n).down; down != m.at(n).header {
		m.stepStack = append(m.stepStack, step{node: down, backtracking: false})
	}
}

package grid

import (
	"container/list"
	"fmt"
)

// Breach finds the cheapest 8-connected route from start to end when every
// Blocked cell entered costs 1 and every Free cell costs 0. It answers "how
// many wall cells separate the two points" for an unreachable exit.
//
// Returns the route as row-major indices, start and end included, and its
// cost. A blocked start counts toward the cost.
//
// Behavior:
//  1. Validate both points.
//  2. 0–1 BFS from start: free cells go to the front of the deque,
//     blocked cells to the back.
//  3. Stop when end is popped and rebuild the route from predecessors.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for distances and predecessors.
func (m *Mask) Breach(start, end Point) (route []int, cost int, err error) {
	if !m.Contains(start) {
		return nil, 0, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !m.Contains(end) {
		return nil, 0, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}

	n := m.Width * m.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := m.Index(start.X, start.Y), m.Index(end.X, end.Y)
	dist[src] = m.stepCost(src)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := m.Coordinate(u)
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !m.InBounds(vx, vy) {
				continue
			}
			v := m.Index(vx, vy)
			step := m.stepCost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		route = append(route, at)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[dst], nil
}

func (m *Mask) stepCost(i int) int {
	if m.Cells[i] == Free {
		return 0
	}

	return 1
}

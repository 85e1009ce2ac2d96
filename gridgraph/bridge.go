package gridgraph

import "container/list"

// Bridge finds a minimum-cost path of cold cells (value < HotThreshold)
// joining any cell of component srcComp to any cell of component dstComp,
// as identified by ConnectedComponents(). Each cold cell on the path costs 1.
// Returns the sequence of cell-indices (row-major), including the start and
// end hot cells, and the total cost (the width of the cold gap).
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a hot cell  → cost 0
//     • Moving into a cold cell → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessor links.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()

	return gg.bridge(comps, srcComp, dstComp)
}

// bridge is Bridge over a precomputed component list.
func (gg *GridGraph) bridge(comps [][]int, srcComp, dstComp int) ([]int, int, error) {
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	src := comps[srcComp]
	isDst := make([]bool, gg.Width*gg.Height)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range src {
		dist[i] = 0
		dq.PushBack(i)
	}

	offsets := gg.NeighborOffsets()
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if isDst[u] {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.IsHot(vx, vy) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
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
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var rev []int
	for cur := target; cur >= 0; cur = prev[cur] {
		rev = append(rev, cur)
	}
	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, dist[target], nil
}

// LargestGap reports the cold-gap cost between the two largest components
// (ties by scan order). ok is false when fewer than two components exist.
func (gg *GridGraph) LargestGap() (cost int, ok bool, err error) {
	comps := gg.ConnectedComponents()
	if len(comps) < 2 {
		return 0, false, nil
	}
	first, second := 0, 1
	if len(comps[1]) > len(comps[0]) {
		first, second = 1, 0
	}
	for i := 2; i < len(comps); i++ {
		switch {
		case len(comps[i]) > len(comps[first]):
			first, second = i, first
		case len(comps[i]) > len(comps[second]):
			second = i
		}
	}
	_, cost, err = gg.bridge(comps, first, second)
	if err != nil {
		return 0, false, err
	}

	return cost, true, nil
}

package mydi

// analyze runs every structural check over the registered graph and, for
// the parts that are sound, computes a construction order. Seeds are keys
// assumed to be satisfied externally.
//
// Check order: duplicates, nested lazy handles, missing producers, cycles.
// Missing keys count as available during ordering so a single absent
// producer is never additionally reported as a cycle.
func (b *Binder) analyze(seeds []TypeKey, mode NameMode) *Report {
	r := &Report{mode: mode}

	r.Duplicates = append(r.Duplicates, b.duplicates...)

	seenNested := make(map[TypeKey]bool)
	for _, k := range b.order {
		for _, req := range b.entries[k].requires {
			if req.Deferred && req.nested && !seenNested[req.Key] {
				seenNested[req.Key] = true
				r.NestedLazy = append(r.NestedLazy, req.Key)
			}
		}
	}

	available := make(map[TypeKey]bool, len(seeds))
	for _, k := range seeds {
		available[k] = true
	}

	missing := make(map[TypeKey]bool)
	for _, k := range b.order {
		e := b.entries[k]
		for _, req := range e.requires {
			if _, ok := b.entries[req.Key]; ok || available[req.Key] || missing[req.Key] {
				continue
			}
			missing[req.Key] = true
			r.Missing = append(r.Missing, MissingDependency{
				Key:      req.Key,
				Consumer: k,
				Origin:   e.origin,
			})
		}
	}
	for k := range missing {
		available[k] = true
	}

	// Kahn peeling over non-deferred edges. Sweeps walk entries in
	// registration order, which makes the construction order
	// deterministic for any fixed set of registrations.
	resolved := make(map[TypeKey]bool, len(b.order))
	pending := make([]TypeKey, len(b.order))
	copy(pending, b.order)
	for len(pending) > 0 {
		progressed := false
		rest := pending[:0]
		for _, k := range pending {
			ready := true
			for _, req := range b.entries[k].requires {
				if req.Deferred {
					continue
				}
				if !resolved[req.Key] && !available[req.Key] {
					ready = false
					break
				}
			}
			if ready {
				resolved[k] = true
				r.order = append(r.order, k)
				progressed = true
			} else {
				rest = append(rest, k)
			}
		}
		pending = rest
		if !progressed {
			break
		}
	}

	if len(pending) > 0 {
		r.Cycles = b.extractCycles(pending)
	}

	return r
}

// extractCycles reports every strongly connected component of the stuck
// subgraph that actually loops. Entries that are only blocked behind a
// cycle form trivial components and are not reported.
func (b *Binder) extractCycles(stuck []TypeKey) [][]TypeKey {
	inStuck := make(map[TypeKey]bool, len(stuck))
	for _, k := range stuck {
		inStuck[k] = true
	}

	edges := make(map[TypeKey][]TypeKey, len(stuck))
	selfLoop := make(map[TypeKey]bool)
	for _, k := range stuck {
		for _, req := range b.entries[k].requires {
			if req.Deferred || !inStuck[req.Key] {
				continue
			}
			edges[k] = append(edges[k], req.Key)
			if req.Key == k {
				selfLoop[k] = true
			}
		}
	}

	comps := stronglyConnected(stuck, edges)

	regIndex := make(map[TypeKey]int, len(b.order))
	for i, k := range b.order {
		regIndex[k] = i
	}

	var cycles [][]TypeKey
	for _, comp := range comps {
		if len(comp) == 1 && !selfLoop[comp[0]] {
			continue
		}
		cycles = append(cycles, b.orderCycle(comp, regIndex))
	}
	sortCyclesByRegistration(cycles, regIndex)
	return cycles
}

// orderCycle arranges one component as a dependency walk starting from its
// earliest registered key. Simple cycles come out in exact edge order;
// components with interleaved loops list any unreached members last, by
// registration order.
func (b *Binder) orderCycle(comp []TypeKey, regIndex map[TypeKey]int) []TypeKey {
	inComp := make(map[TypeKey]bool, len(comp))
	for _, k := range comp {
		inComp[k] = true
	}

	start := comp[0]
	for _, k := range comp[1:] {
		if regIndex[k] < regIndex[start] {
			start = k
		}
	}

	walk := []TypeKey{start}
	visited := map[TypeKey]bool{start: true}
	cur := start
	for {
		advanced := false
		for _, req := range b.entries[cur].requires {
			if req.Deferred || !inComp[req.Key] || visited[req.Key] {
				continue
			}
			visited[req.Key] = true
			walk = append(walk, req.Key)
			cur = req.Key
			advanced = true
			break
		}
		if !advanced {
			break
		}
	}

	if len(walk) < len(comp) {
		rest := make([]TypeKey, 0, len(comp)-len(walk))
		for _, k := range comp {
			if !visited[k] {
				rest = append(rest, k)
			}
		}
		sortKeysByIndex(rest, regIndex)
		walk = append(walk, rest...)
	}
	return walk
}

// stronglyConnected is Tarjan's algorithm over the stuck subgraph. The
// traversal keeps an explicit frame stack so adversarially deep graphs
// cannot overflow the goroutine stack.
func stronglyConnected(nodes []TypeKey, edges map[TypeKey][]TypeKey) [][]TypeKey {
	index := make(map[TypeKey]int, len(nodes))
	lowlink := make(map[TypeKey]int, len(nodes))
	onStack := make(map[TypeKey]bool, len(nodes))
	var stack []TypeKey
	var comps [][]TypeKey
	next := 0

	type frame struct {
		node TypeKey
		edge int
	}

	for _, root := range nodes {
		if _, seen := index[root]; seen {
			continue
		}

		frames := []frame{{node: root}}
		index[root] = next
		lowlink[root] = next
		next++
		stack = append(stack, root)
		onStack[root] = true

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.edge < len(edges[f.node]) {
				w := edges[f.node][f.edge]
				f.edge++
				if _, seen := index[w]; !seen {
					index[w] = next
					lowlink[w] = next
					next++
					stack = append(stack, w)
					onStack[w] = true
					frames = append(frames, frame{node: w})
				} else if onStack[w] && index[w] < lowlink[f.node] {
					lowlink[f.node] = index[w]
				}
				continue
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[f.node] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[f.node]
				}
			}
			if lowlink[f.node] == index[f.node] {
				var comp []TypeKey
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == f.node {
						break
					}
				}
				comps = append(comps, comp)
			}
		}
	}

	return comps
}

func sortKeysByIndex(keys []TypeKey, regIndex map[TypeKey]int) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && regIndex[keys[j]] < regIndex[keys[j-1]]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}

func sortCyclesByRegistration(cycles [][]TypeKey, regIndex map[TypeKey]int) {
	for i := 1; i < len(cycles); i++ {
		for j := i; j > 0 && regIndex[cycles[j][0]] < regIndex[cycles[j-1][0]]; j-- {
			cycles[j], cycles[j-1] = cycles[j-1], cycles[j]
		}
	}
}

// Build assembles the container: structural analysis, construction in
// dependency order, handle back-fill, freeze. Every registered key is
// materialized exactly once; any structural defect or factory error aborts
// the whole build.
func (b *Binder) Build() (*Injector, error) {
	inj, err := b.build()
	for _, ext := range b.extensions {
		ext.OnBuildEnd(inj, err)
	}
	return inj, err
}

func (b *Binder) build() (*Injector, error) {
	rep := b.analyze(nil, FullNames)
	if err := rep.Err(); err != nil {
		return nil, err
	}

	store := make(map[TypeKey]any, len(rep.order))
	cells := make(map[TypeKey]*lazyCell)
	cellFor := func(target TypeKey) *lazyCell {
		if c, ok := cells[target]; ok {
			return c
		}
		c := &lazyCell{target: target}
		cells[target] = c
		return c
	}

	for _, k := range rep.order {
		e := b.entries[k]
		if e.prebuilt {
			store[k] = e.instance
			continue
		}

		deps := make([]any, len(e.requires))
		for i, req := range e.requires {
			if req.Deferred {
				if req.wrap != nil {
					deps[i] = req.wrap(cellFor(req.Key))
				} else {
					deps[i] = Lazy[any]{cell: cellFor(req.Key)}
				}
				continue
			}
			deps[i] = store[req.Key]
		}

		val, err := b.invoke(e, deps)
		if err != nil {
			rerr := &ResolveError{Key: k, Origin: e.origin, Err: err}
			op := &Operation{Kind: OpResolve, Key: k, Origin: e.origin}
			for _, ext := range b.extensions {
				ext.OnError(rerr, op)
			}
			return nil, rerr
		}
		store[k] = val
	}

	// Back-fill: every handle allocated above is filled exactly once,
	// after the full graph exists.
	for target, cell := range cells {
		val, ok := store[target]
		if !ok {
			// Unreachable after a clean analysis; kept as a hard stop.
			return nil, &MissingDependencyError{Missing: []MissingDependency{{Key: target}}}
		}
		cell.fill(val)
	}

	return &Injector{store: store}, nil
}

// invoke runs a factory through the extension middleware chain. The last
// registered extension wraps closest to the factory.
func (b *Binder) invoke(e *binderEntry, deps []any) (any, error) {
	if len(b.extensions) == 0 {
		return e.factory(deps)
	}

	op := &Operation{Kind: OpResolve, Key: e.key, Origin: e.origin}
	next := func() (any, error) {
		return e.factory(deps)
	}
	for i := len(b.extensions) - 1; i >= 0; i-- {
		ext := b.extensions[i]
		currentNext := next
		next = func() (any, error) {
			return ext.Wrap(currentNext, op)
		}
	}
	return next()
}

package router

// route is one registered (pattern, handler) entry.
type route struct {
	pattern string
	handler HandlerFunc
}

// table is the per-method route table: an insertion-ordered mapping
// from normalized pattern to handler. Re-registering a pattern replaces
// its handler in place without moving the entry, so candidate order is
// always first-registration order.
type table struct {
	index  map[string]int
	routes []route
}

func newTable() *table {
	return &table{index: make(map[string]int)}
}

func (t *table) add(pattern string, h HandlerFunc) {
	if i, ok := t.index[pattern]; ok {
		t.routes[i].handler = h
		return
	}
	t.index[pattern] = len(t.routes)
	t.routes = append(t.routes, route{pattern: pattern, handler: h})
}

// candidates returns the routes in table order. The returned slice is
// the table's backing storage; callers only iterate it.
func (t *table) candidates() []route {
	return t.routes
}

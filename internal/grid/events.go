package grid

// Event is a notification emitted by the grid after a state change.
type Event interface {
	EventType() string
}

// SortedEvent is emitted after a successful sort.
type SortedEvent struct {
	Column    int
	Direction Order
}

// EventType identifies the event.
func (SortedEvent) EventType() string { return "sorted" }

// PaginatedEvent is emitted whenever the visible page changes.
type PaginatedEvent struct {
	Page  int
	Items []*Row
}

// EventType identifies the event.
func (PaginatedEvent) EventType() string { return "paginated" }

// FilteredEvent is emitted after the filter predicate is applied or cleared.
type FilteredEvent struct {
	Query   string
	Column  *int
	Matches int
}

// EventType identifies the event.
func (FilteredEvent) EventType() string { return "filtered" }

// SelectionEvent is emitted whenever the selection state changes.
type SelectionEvent struct {
	Selected int
	Total    int
	Header   HeaderState
}

// EventType identifies the event.
func (SelectionEvent) EventType() string { return "selection" }

// Listener receives grid events synchronously, in emission order, before the
// operation that produced them returns.
type Listener func(Event)

// Subscribe registers a listener and returns a function that removes it.
func (g *Grid) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	g.nextSubID++
	id := g.nextSubID
	g.subscribers[id] = fn
	return func() {
		delete(g.subscribers, id)
	}
}

func (g *Grid) publish(event Event) {
	for _, fn := range g.subscribers {
		fn(event)
	}
}

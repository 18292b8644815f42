package monkey

// Actor is one participant in a simulation.
//
// Everything except the queue and the inspection count is fixed at
// construction.
type Actor struct {
	// Index is the actor's position in the simulation.
	Index int

	Rule      Rule
	Threshold uint64

	// RouteTrue receives values divisible by Threshold; RouteFalse the rest.
	RouteTrue  int
	RouteFalse int

	inspections uint64
	queue       itemQueue
}

// NewActor creates an actor holding items, head first.
func NewActor(index int, items []uint64, rule Rule, threshold uint64, routeTrue, routeFalse int) *Actor {
	return &Actor{
		Index:      index,
		Rule:       rule,
		Threshold:  threshold,
		RouteTrue:  routeTrue,
		RouteFalse: routeFalse,
		queue:      newItemQueue(items),
	}
}

// Inspections returns how many items this actor has processed.
func (a *Actor) Inspections() uint64 {
	return a.inspections
}

// Items returns a copy of the queued items, head first.
func (a *Actor) Items() []uint64 {
	return a.queue.snapshot()
}

// Len returns the number of queued items.
func (a *Actor) Len() int {
	return a.queue.len()
}

// receive appends an item routed from another actor.
func (a *Actor) receive(v uint64) {
	a.queue.push(v)
}

// inspect processes the head item and returns its new value and destination.
func (a *Actor) inspect(divisor, modulus uint64) (uint64, int, error) {
	item, ok := a.queue.pop()
	if !ok {
		return 0, 0, &SimError{
			Code:    ErrCodeEmptyQueue,
			Message: "inspect called on an empty queue",
			Actor:   a.Index,
		}
	}
	a.inspections++

	worry, ok := a.Rule.Apply(item)
	if !ok {
		return 0, 0, &SimError{
			Code:    ErrCodeOverflow,
			Message: "rule " + a.Rule.String() + " overflows uint64",
			Actor:   a.Index,
		}
	}
	worry = (worry / divisor) % modulus

	if worry%a.Threshold == 0 {
		return worry, a.RouteTrue, nil
	}
	return worry, a.RouteFalse, nil
}

// Canonical returns the actor's state for canonical JSON rendering.
func (a *Actor) Canonical() any {
	return map[string]any{
		"index":       a.Index,
		"items":       a.Items(),
		"rule":        a.Rule.String(),
		"threshold":   a.Threshold,
		"route_true":  a.RouteTrue,
		"route_false": a.RouteFalse,
		"inspections": a.inspections,
	}
}

package entity

type OrderStatus string

const (
	StatusPlaced     OrderStatus = "PLACED"
	StatusAccepted   OrderStatus = "ACCEPTED"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusReady      OrderStatus = "READY"
	StatusServed     OrderStatus = "SERVED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// transitions maps each status to the statuses an order may move to next.
// SERVED and CANCELLED are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:     {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusReady, StatusCancelled},
	StatusReady:      {StatusServed, StatusCancelled},
	StatusServed:     {},
	StatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

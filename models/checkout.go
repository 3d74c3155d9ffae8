package models

type CheckoutState string

const (
	StateBrowsing   CheckoutState = "browsing"
	StateCartReview CheckoutState = "cart_review"
	StateConfirming CheckoutState = "confirming"
	StateCompleted  CheckoutState = "completed"
)

type CheckoutEvent string

const (
	EventViewList       CheckoutEvent = "view product list"
	EventViewDetail     CheckoutEvent = "view product detail"
	EventViewCart       CheckoutEvent = "view cart"
	EventAddItem        CheckoutEvent = "add item"
	EventUpdateQuantity CheckoutEvent = "update quantity"
	EventProceed        CheckoutEvent = "proceed"
	EventViewConfirm    CheckoutEvent = "view confirmation"
	EventBack           CheckoutEvent = "back"
	EventPurchase       CheckoutEvent = "confirm purchase"
	EventViewCompletion CheckoutEvent = "view thanks page"
)

// Action labels written to the experiment log.
const (
	ActionSessionStarted   = "session started"
	ActionSessionReset     = "session reset"
	ActionListViewed       = "list viewed"
	ActionDetailViewed     = "detail viewed"
	ActionCartViewed       = "cart viewed"
	ActionAddedToCart      = "added to cart"
	ActionQuantityUpdated  = "quantity updated"
	ActionProceeded        = "proceeded to confirm"
	ActionReturnedToCart   = "returned to cart"
	ActionPurchaseComplete = "purchase completed"
	ActionCompletionViewed = "completion viewed"
)

// Page labels written alongside each action.
const (
	PageStart         = "start"
	PageProductList   = "product_list"
	PageProductDetail = "product_detail"
	PageCart          = "cart"
	PageConfirm       = "confirm"
	PageComplete      = "complete"
)

type transition struct {
	from  []CheckoutState
	to    CheckoutState
	stay  bool
	label string
}

var transitions = map[CheckoutEvent]transition{
	EventViewList:       {from: []CheckoutState{StateBrowsing, StateCartReview, StateCompleted}, to: StateBrowsing, label: ActionListViewed},
	EventViewDetail:     {from: []CheckoutState{StateBrowsing, StateCartReview, StateCompleted}, to: StateBrowsing, label: ActionDetailViewed},
	EventViewCart:       {from: []CheckoutState{StateBrowsing, StateCartReview}, to: StateCartReview, label: ActionCartViewed},
	EventAddItem:        {from: []CheckoutState{StateBrowsing, StateCartReview}, stay: true, label: ActionAddedToCart},
	EventUpdateQuantity: {from: []CheckoutState{StateCartReview}, to: StateCartReview, label: ActionQuantityUpdated},
	EventProceed:        {from: []CheckoutState{StateCartReview}, to: StateConfirming, label: ActionProceeded},
	EventViewConfirm:    {from: []CheckoutState{StateConfirming}, to: StateConfirming},
	EventBack:           {from: []CheckoutState{StateConfirming}, to: StateCartReview, label: ActionReturnedToCart},
	EventPurchase:       {from: []CheckoutState{StateConfirming}, to: StateCompleted, label: ActionPurchaseComplete},
	EventViewCompletion: {from: []CheckoutState{StateCompleted}, to: StateCompleted, label: ActionCompletionViewed},
}

// Transition returns the state reached by applying event in state from.
func Transition(from CheckoutState, event CheckoutEvent) (CheckoutState, error) {
	t, ok := transitions[event]
	if !ok {
		return from, &IllegalTransitionError{From: from, Event: event}
	}
	for _, s := range t.from {
		if s == from {
			if t.stay {
				return from, nil
			}
			return t.to, nil
		}
	}
	return from, &IllegalTransitionError{From: from, Event: event}
}

// ActionLabel is the log label recorded for event. Read-only page views of the
// current state have no label and are not logged.
func ActionLabel(event CheckoutEvent) string {
	return transitions[event].label
}

// Page maps a state to the page a participant in that state belongs on.
func (s CheckoutState) Page() string {
	switch s {
	case StateCartReview:
		return PageCart
	case StateConfirming:
		return PageConfirm
	case StateCompleted:
		return PageComplete
	default:
		return PageProductList
	}
}

func (s CheckoutState) Valid() bool {
	switch s {
	case StateBrowsing, StateCartReview, StateConfirming, StateCompleted:
		return true
	}
	return false
}

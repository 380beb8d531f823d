package republishing

// State é o estado do fluxo de republicação. O fluxo é uma cadeia
// sequencial; Failed é alcançável de qualquer estado não terminal e
// Cancelled só das duas portas de entrada do usuário.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateAwaitingPriceInput
	StateAwaitingConfirmation
	StateCreatingDraft
	StatePricingDraft
	StatePublishing
	StateDeleting
	StateCompleted
	StateFailed
	StateCancelled
)

var stateNames = map[State]string{
	StateIdle:                 "idle",
	StateFetching:             "fetching",
	StateAwaitingPriceInput:   "awaiting_price_input",
	StateAwaitingConfirmation: "awaiting_confirmation",
	StateCreatingDraft:        "creating_draft",
	StatePricingDraft:         "pricing_draft",
	StatePublishing:           "publishing",
	StateDeleting:             "deleting",
	StateCompleted:            "completed",
	StateFailed:               "failed",
	StateCancelled:            "cancelled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal informa se o fluxo chegou a um estado final
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// Nomes das etapas usados na telemetria e no resultado de falha
const (
	StepAuth    = "getAuthToken"
	StepFetch   = "fetchAdData"
	StepPrice   = "promptPrice"
	StepCreate  = "createAdDraft"
	StepPricing = "fetchPricingId"
	StepPublish = "publishAd"
	StepDelete  = "deleteAd"
)

package lbcdomain

// CreateDraftResponse é a resposta do endpoint adsubmit
type CreateDraftResponse struct {
	AdID     int64 `json:"ad_id"`
	ActionID int64 `json:"action_id"`
}

// PricingResponse é a resposta do endpoint de pricing
type PricingResponse struct {
	PricingID string `json:"pricing_id"`
}

// PricingRequest é o corpo do endpoint de pricing
type PricingRequest struct {
	UserJourney   string              `json:"user_journey"`
	PageName      string              `json:"page_name"`
	Classifieds   []PricingClassified `json:"classifieds"`
	IsEditRefused bool                `json:"is_edit_refused"`
}

type PricingClassified struct {
	AdID     int64  `json:"ad_id"`
	Category string `json:"category"`
	ActionID int64  `json:"action_id"`
}

// SubmitRequest é o corpo do endpoint de publicação
type SubmitRequest struct {
	Ads         []SubmitAd `json:"ads"`
	PricingID   string     `json:"pricing_id"`
	UserJourney string     `json:"user_journey"`
}

type SubmitAd struct {
	AdType          string   `json:"ad_type"`
	AdID            int64    `json:"ad_id"`
	Options         []string `json:"options"`
	ActionID        int64    `json:"action_id"`
	TransactionType string   `json:"transaction_type"`
}

// DeleteRequest é o corpo do endpoint de exclusão
type DeleteRequest struct {
	ListIDs []int64 `json:"list_ids"`
}

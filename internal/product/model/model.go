package model

// Record is one entry of the product catalog.
type Record struct {
	ID       string  `json:"product_id"` // 品號
	Name     string  `json:"name"`       // 品名
	Unit     string  `json:"unit"`       // 單位
	Currency string  `json:"currency"`   // 幣別
	Price    float64 `json:"price"`      // not present in the source file, fixed at 0
}

// MatchResult is one ranked candidate for a checked product name.
type MatchResult struct {
	ID            string  `json:"product_id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Currency      string  `json:"currency"`
	Price         float64 `json:"price"`
	Score         float64 `json:"match_score"` // 0..1
	OriginalInput string  `json:"original_input"`
}

// LoadStats reports what a catalog load actually did.
type LoadStats struct {
	Loaded     int `json:"loaded"`
	Skipped    int `json:"skipped"`    // rows with fewer than 4 columns
	Duplicates int `json:"duplicates"` // name collisions (last row wins)
}

type ListResponse struct {
	Products []Record `json:"products"`
	Total    int      `json:"total"`
}

type CheckRequest struct {
	ProductName string `json:"product_name"`
}

type CheckResponse struct {
	ExactMatch       bool          `json:"exact_match"`
	MatchingProducts []MatchResult `json:"matching_products"`
}

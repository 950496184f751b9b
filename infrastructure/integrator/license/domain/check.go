package domain

// CheckRequest é o corpo de POST /check-and-consume
type CheckRequest struct {
	Key           string `json:"key"`
	RequestedRuns int    `json:"requestedRuns"`
}

// CheckResponse cobre sucesso e recusa; campos ausentes ficam nil
type CheckResponse struct {
	Valid            bool    `json:"valid"`
	Message          string  `json:"message,omitempty"`
	Code             string  `json:"code,omitempty"`
	Plan             *string `json:"plan,omitempty"`
	RemainingCredits *int    `json:"remainingCredits,omitempty"`
	RemainingRuns    *int    `json:"remainingRuns,omitempty"`
	CreditsPerRun    *int    `json:"creditsPerRun,omitempty"`
}

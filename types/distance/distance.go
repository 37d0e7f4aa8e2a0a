package distance

import (
	"fmt"
)

// EstimateRequest represents the payload for an address-pair estimate.
type EstimateRequest struct {
	StartAddress string `json:"startAddress"`
	GoalAddress  string `json:"goalAddress"`
}

func (r EstimateRequest) Validate() error {
	if r.StartAddress == "" || r.GoalAddress == "" {
		return fmt.Errorf("startAddress and goalAddress are both required")
	}
	return nil
}

// EstimateResponse is a distance/duration pair. Mode is "naver" for live
// results and "dummy" when the integration is disabled.
type EstimateResponse struct {
	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes float64 `json:"durationMinutes"`
	Mode            string  `json:"mode"`
}

package addressbook

import (
	"fmt"

	addressbookModel "dispatch-backend/models/addressbook"
)

// CreateRequest represents the payload for creating an address book entry.
type CreateRequest struct {
	PlaceName     string  `json:"placeName"`
	Address       string  `json:"address"`
	AddressDetail *string `json:"addressDetail"`
	ContactName   *string `json:"contactName"`
	ContactPhone  *string `json:"contactPhone"`
	Type          string  `json:"type"`
}

func (r CreateRequest) Validate() error {
	if r.PlaceName == "" || r.Address == "" || r.Type == "" {
		return fmt.Errorf("placeName, address and type are required")
	}
	if _, ok := addressbookModel.ParseType(r.Type); !ok {
		return fmt.Errorf("type must be one of PICKUP, DROPOFF, BOTH")
	}
	return nil
}

// UpdateRequest carries a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	PlaceName     *string `json:"placeName"`
	Address       *string `json:"address"`
	AddressDetail *string `json:"addressDetail"`
	ContactName   *string `json:"contactName"`
	ContactPhone  *string `json:"contactPhone"`
	Type          *string `json:"type"`
}

func (r UpdateRequest) Validate() error {
	if r.Type != nil {
		if _, ok := addressbookModel.ParseType(*r.Type); !ok {
			return fmt.Errorf("type must be one of PICKUP, DROPOFF, BOTH")
		}
	}
	return nil
}

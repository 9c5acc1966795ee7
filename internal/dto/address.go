package dto

// AddressCreateRequest is the payload for adding a lookup address.
type AddressCreateRequest struct {
	Country      string  `json:"country" binding:"required,len=2"`
	Admin1       *string `json:"admin1" binding:"omitempty,max=128"`
	Admin2       *string `json:"admin2" binding:"omitempty,max=128"`
	Admin3       *string `json:"admin3" binding:"omitempty,max=128"`
	LineOptional *string `json:"line_optional" binding:"omitempty,max=255"`
}

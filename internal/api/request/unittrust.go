// Package request defines the JSON request bodies accepted by the API.
package request

type CreateUnitTrustRequest struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
}

type UpdateUnitTrustRequest struct {
	Name        *string `json:"name,omitempty"`
	Symbol      *string `json:"symbol,omitempty"`
	Description *string `json:"description,omitempty"`
	Provider    *string `json:"provider,omitempty"`
}

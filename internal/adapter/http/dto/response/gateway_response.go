package response

import "bransfer_gateway/internal/domain/entities"

type GatewayResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
	Available   bool   `json:"available"`
	NeedsSetup  bool   `json:"needs_setup"`
	Currency    string `json:"currency"`
}

func FromGatewaySettings(s entities.GatewaySettings) GatewayResponse {
	return GatewayResponse{
		ID:          entities.GatewayID,
		Title:       s.Title,
		Description: s.Description,
		Enabled:     s.Enabled,
		Available:   s.IsAvailable(),
		NeedsSetup:  s.NeedsSetup(),
		Currency:    s.StoreCurrency,
	}
}

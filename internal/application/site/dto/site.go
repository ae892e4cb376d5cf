package dto

import (
	"encoding/json"

	accountdto "github.com/folio-hq/folio/internal/application/account/dto"
)

// SiteDTO is the aggregated public site of a tenant. Portfolio holds the
// encoded sections keyed by section name, as cached.
type SiteDTO struct {
	User      *accountdto.PublicProfileDTO `json:"user"`
	Portfolio json.RawMessage              `json:"portfolio"`
}

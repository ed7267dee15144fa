package catalog

import (
	"errors"
	"net/http"
	"time"

	"github.com/HerbHall/herodex/pkg/models"
)

// APIResponse is the JSON envelope returned by every catalog endpoint.
// prevPage and nextPage are always present and null when absent; heroes is
// always an array.
type APIResponse struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message"`
	PrevPage    *int          `json:"prevPage"`
	NextPage    *int          `json:"nextPage"`
	Heroes      []models.Hero `json:"heroes"`
	LastUpdated *int64        `json:"lastUpdated,omitempty"` // unix millis, page responses only
}

// NewPageResponse builds the success envelope for a page.
func NewPageResponse(res PageResult, now time.Time) APIResponse {
	stamp := now.UnixMilli()
	heroes := res.Heroes
	if heroes == nil {
		heroes = []models.Hero{}
	}
	return APIResponse{
		Success:     true,
		Message:     MessageFetched,
		PrevPage:    res.PrevPage,
		NextPage:    res.NextPage,
		Heroes:      heroes,
		LastUpdated: &stamp,
	}
}

// NewSearchResponse builds the success envelope for a search result.
func NewSearchResponse(heroes []models.Hero) APIResponse {
	if heroes == nil {
		heroes = []models.Hero{}
	}
	return APIResponse{
		Success: true,
		Message: MessageSearchOK,
		Heroes:  heroes,
	}
}

// NewErrorResponse builds the failure envelope for err. A *QueryError keeps
// its own message; anything else is reported generically.
func NewErrorResponse(err error) APIResponse {
	msg := http.StatusText(http.StatusInternalServerError)
	var qe *QueryError
	if errors.As(err, &qe) {
		msg = qe.Message
	}
	return APIResponse{
		Success: false,
		Message: msg,
		Heroes:  []models.Hero{},
	}
}

func errorStatus(err error) int {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Status
	}
	return http.StatusInternalServerError
}

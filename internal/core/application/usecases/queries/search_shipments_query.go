package queries

import (
	"errors"
	"strings"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var (
	ErrSearchShipmentsQueryIsNotConstructed = errors.New(
		"SearchShipmentsQuery must be created via NewSearchShipmentsQuery constructor",
	)
)

const (
	searchDefaultPage  = 1
	searchDefaultLimit = 10
	searchMaxLimit     = 100
)

// SearchShipmentsQuery drives the admin listing: paginated, optionally
// filtered by status and by a free text term matched against the tracking
// number and both party names.
//
// Example:
//
//	query, _ := NewSearchShipmentsQuery(1, 20, "In Transit", "rao")
//	handler := NewSearchShipmentsQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("search failed: %w", err)
//	}
//
//	fmt.Printf("page %d of %d, %d shipments total\n",
//	    page.CurrentPage, page.TotalPages, page.TotalCount)
type SearchShipmentsQuery struct {
	page   int
	limit  int
	status string
	term   string

	guard guard.ConstructorGuard
}

// NewSearchShipmentsQuery creates an admin search query.
// Zero page or limit fall back to the defaults; status, when present, must
// be a recognized shipment status. The term is matched case insensitively.
func NewSearchShipmentsQuery(page, limit int, status, term string) (SearchShipmentsQuery, error) {
	if page == 0 {
		page = searchDefaultPage
	}
	if limit == 0 {
		limit = searchDefaultLimit
	}

	if page < 1 {
		return SearchShipmentsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if limit < 1 || limit > searchMaxLimit {
		return SearchShipmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, searchMaxLimit)
	}

	if status != "" {
		if _, err := shipment.StatusFromString(status); err != nil {
			return SearchShipmentsQuery{}, err
		}
	}

	return SearchShipmentsQuery{
		page:   page,
		limit:  limit,
		status: status,
		term:   strings.TrimSpace(term),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchShipmentsQueryIsNotConstructed if validation fails.
func (q SearchShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrSearchShipmentsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q SearchShipmentsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q SearchShipmentsQuery) Limit() int {
	return q.limit
}

// Status returns the status filter, empty when unfiltered.
func (q SearchShipmentsQuery) Status() string {
	return q.status
}

// Term returns the free text search term, empty when unfiltered.
func (q SearchShipmentsQuery) Term() string {
	return q.term
}

// SearchShipmentsQueryResponse is one page of admin search results.
type SearchShipmentsQueryResponse struct {
	Shipments   []ShipmentResponse
	TotalCount  int64
	TotalPages  int
	CurrentPage int
}

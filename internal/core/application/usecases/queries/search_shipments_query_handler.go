package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchShipmentsQueryHandler runs the paginated admin search.
type SearchShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewSearchShipmentsQueryHandler creates a handler for admin search queries.
// Requires a GORM database connection for query execution.
func NewSearchShipmentsQueryHandler(db *gorm.DB) SearchShipmentsQueryHandler {
	return SearchShipmentsQueryHandler{db: db}
}

// Handle executes the search.
// Counts the filtered set first, then fetches the requested page ordered by
// booking time, newest first. A page beyond the last returns an empty slice
// with the correct totals.
func (h SearchShipmentsQueryHandler) Handle(
	ctx context.Context, query SearchShipmentsQuery,
) (SearchShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchShipmentsQueryResponse{}, err
	}

	where, args := buildSearchFilter(query)

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM shipments`+where, args...,
	).Scan(&totalCount).Error
	if err != nil {
		return SearchShipmentsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	pageArgs := append(args, query.Limit(), offset)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments`+where+`
		ORDER BY booked_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return SearchShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0, query.Limit())
	for rows.Next() {
		resp, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return SearchShipmentsQueryResponse{}, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return SearchShipmentsQueryResponse{}, err
	}

	totalPages := int((totalCount + int64(query.Limit()) - 1) / int64(query.Limit()))

	return SearchShipmentsQueryResponse{
		Shipments:   shipments,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: query.Page(),
	}, nil
}

func buildSearchFilter(query SearchShipmentsQuery) (string, []any) {
	where := ""
	args := make([]any, 0, 4)

	appendClause := func(clause string) {
		if where == "" {
			where = " WHERE " + clause
			return
		}
		where += " AND " + clause
	}

	if query.Status() != "" {
		appendClause("status = ?")
		args = append(args, query.Status())
	}

	if query.Term() != "" {
		appendClause("(tracking_number ILIKE ? OR sender_name ILIKE ? OR receiver_name ILIKE ?)")
		pattern := "%" + query.Term() + "%"
		args = append(args, pattern, pattern, pattern)
	}

	return where, args
}

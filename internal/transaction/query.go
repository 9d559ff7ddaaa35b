package transaction

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	DefaultSortBy    = "date"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	DefaultSortOrder = SortOrderDesc
)

// sortableColumns is the closed set of fields a list request may sort by.
var sortableColumns = map[string]struct{}{
	"date":        {},
	"amount":      {},
	"category":    {},
	"status":      {},
	"user_id":     {},
	"description": {},
	"createdAt":   {},
}

// QueryError reports a malformed list query parameter. It maps to a 400 at the
// HTTP boundary rather than silently falling back to defaults.
type QueryError struct {
	Param  string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid %s parameter: %s", e.Param, e.Reason)
}

// ListQuery is the contract of the transaction list endpoint: free-text search
// OR-matched across description, category and user_id, exact category/status
// filters ANDed in, and offset pagination with a deterministic sort.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	Category  Category
	Status    Status
	SortBy    string
	SortOrder string
}

// Offset returns the number of records to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseListQuery builds a ListQuery from request query parameters, applying
// defaults for absent values and rejecting malformed ones.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		Search:    values.Get("search"),
		Category:  Category(values.Get("category")),
		Status:    Status(values.Get("status")),
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}

	var err error

	if q.Page, err = parsePositiveInt(values, "page", DefaultPage); err != nil {
		return ListQuery{}, err
	}

	if q.Limit, err = parsePositiveInt(values, "limit", DefaultLimit); err != nil {
		return ListQuery{}, err
	}

	if s := values.Get("sortBy"); s != "" {
		if _, ok := sortableColumns[s]; !ok {
			return ListQuery{}, &QueryError{Param: "sortBy", Reason: fmt.Sprintf("unknown field %q", s)}
		}

		q.SortBy = s
	}

	// Anything other than an explicit "asc" sorts descending.
	if values.Get("sortOrder") == SortOrderAsc {
		q.SortOrder = SortOrderAsc
	}

	return q, nil
}

func parsePositiveInt(values url.Values, param string, def int) (int, error) {
	s := values.Get(param)
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &QueryError{Param: param, Reason: "not a number"}
	}

	if n < 1 {
		return 0, &QueryError{Param: param, Reason: "must be at least 1"}
	}

	return n, nil
}

// Pagination describes the position of a returned page within the full
// filtered set.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Page is the list endpoint envelope: one page of transactions plus
// pagination metadata computed over every record matching the filter.
type Page struct {
	Transactions []*Transaction `json:"transactions"`
	Pagination   Pagination     `json:"pagination"`
}

package models

// Page bundles a result page with its pagination metadata: total page count,
// current page number and next/previous page existence flags and numbers.
type Page struct {
	Docs        interface{} `json:"docs"`
	TotalDocs   int64       `json:"totalDocs"`
	Limit       int         `json:"limit"`
	Page        int         `json:"page"`
	TotalPages  int         `json:"totalPages"`
	HasPrevPage bool        `json:"hasPrevPage"`
	HasNextPage bool        `json:"hasNextPage"`
	PrevPage    int         `json:"prevPage,omitempty"`
	NextPage    int         `json:"nextPage,omitempty"`
}

// NewPage computes the page descriptor for the given result set. An empty
// collection still reports one (empty) page.
func NewPage(docs interface{}, totalDocs int64, page, limit int) Page {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}

	totalPages := int((totalDocs + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	p := Page{
		Docs:       docs,
		TotalDocs:  totalDocs,
		Limit:      limit,
		Page:       page,
		TotalPages: totalPages,
	}
	if page > 1 {
		p.HasPrevPage = true
		p.PrevPage = page - 1
	}
	if page < totalPages {
		p.HasNextPage = true
		p.NextPage = page + 1
	}
	return p
}

// PageNumbers expands the page list for navigation links in the views
func (p Page) PageNumbers() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

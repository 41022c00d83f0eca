package models

import "testing"

func TestNewPageEmptyCollection(t *testing.T) {
	p := NewPage([]Product{}, 0, 1, 25)

	if p.TotalPages != 1 {
		t.Fatalf("expected 1 total page for empty collection, got %d", p.TotalPages)
	}
	if p.HasNextPage {
		t.Fatal("expected hasNextPage false on empty collection")
	}
	if p.HasPrevPage {
		t.Fatal("expected hasPrevPage false on empty collection")
	}
	if p.TotalDocs != 0 {
		t.Fatalf("expected 0 total docs, got %d", p.TotalDocs)
	}
}

func TestNewPageMiddlePage(t *testing.T) {
	p := NewPage(nil, 55, 2, 10)

	if p.TotalPages != 6 {
		t.Fatalf("expected 6 total pages, got %d", p.TotalPages)
	}
	if !p.HasPrevPage || p.PrevPage != 1 {
		t.Fatalf("expected prev page 1, got %+v", p)
	}
	if !p.HasNextPage || p.NextPage != 3 {
		t.Fatalf("expected next page 3, got %+v", p)
	}
}

func TestNewPageLastPage(t *testing.T) {
	p := NewPage(nil, 30, 3, 10)

	if p.HasNextPage {
		t.Fatal("expected hasNextPage false on last page")
	}
	if !p.HasPrevPage || p.PrevPage != 2 {
		t.Fatalf("expected prev page 2, got %+v", p)
	}
}

func TestNewPageClampsBadInput(t *testing.T) {
	p := NewPage(nil, 10, 0, 0)

	if p.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", p.Page)
	}
	if p.Limit != 1 {
		t.Fatalf("expected limit clamped to 1, got %d", p.Limit)
	}
}

func TestPageNumbers(t *testing.T) {
	p := NewPage(nil, 45, 1, 10)

	pages := p.PageNumbers()
	if len(pages) != 5 {
		t.Fatalf("expected 5 page numbers, got %d", len(pages))
	}
	if pages[0] != 1 || pages[4] != 5 {
		t.Fatalf("unexpected page list %v", pages)
	}
}

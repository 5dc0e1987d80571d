package pagination_test

import (
	"fmt"
	"testing"

	"fortune/internal/models"
	"fortune/internal/pagination"
	"fortune/internal/testutil"
)

func TestPageRequest_Defaults(t *testing.T) {
	tests := []struct {
		name         string
		in           pagination.PageRequest
		page, size   int
		expectOffset int
	}{
		{"empty", pagination.PageRequest{}, 1, 20, 0},
		{"explicit", pagination.PageRequest{Page: 3, PageSize: 10}, 3, 10, 20},
		{"oversized", pagination.PageRequest{Page: 1, PageSize: 500}, 1, 100, 0},
		{"negative", pagination.PageRequest{Page: -2, PageSize: -1}, 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Defaults()
			if req.Page != tt.page || req.PageSize != tt.size {
				t.Errorf("expected page=%d size=%d, got page=%d size=%d", tt.page, tt.size, req.Page, req.PageSize)
			}
			if req.Offset() != tt.expectOffset {
				t.Errorf("expected offset %d, got %d", tt.expectOffset, req.Offset())
			}
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := pagination.NewPageResponse[int](nil, 1, 20, 41)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	for i := 0; i < 5; i++ {
		c := models.Client{FullName: fmt.Sprintf("Client %d", 4-i), Email: fmt.Sprintf("c%d@test.com", i)}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("create client: %v", err)
		}
	}

	query := db.Model(&models.Client{}).Where("full_name <> ?", "Client 0")
	page, err := pagination.Find[models.Client](query, pagination.PageRequest{Page: 2, PageSize: 3}, "full_name ASC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalItems != 4 || page.TotalPages != 2 {
		t.Errorf("expected 4 items over 2 pages, got %d over %d", page.TotalItems, page.TotalPages)
	}
	if len(page.Data) != 1 || page.Data[0].FullName != "Client 4" {
		t.Errorf("unexpected second page %+v", page.Data)
	}

	// The query is reusable after Find.
	first, err := pagination.Find[models.Client](query, pagination.PageRequest{}, "full_name DESC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Data) != 4 || first.Data[0].FullName != "Client 4" {
		t.Errorf("unexpected first page %+v", first.Data)
	}
}

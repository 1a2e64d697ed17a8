package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		req       PageRequest
		wantData  []int
		wantPages int
		wantPage  int
		wantSize  int
	}{
		{"defaults", PageRequest{}, []int{1, 2, 3, 4, 5}, 1, 1, 20},
		{"first_page", PageRequest{Page: 1, PageSize: 2}, []int{1, 2}, 3, 1, 2},
		{"last_partial_page", PageRequest{Page: 3, PageSize: 2}, []int{5}, 3, 3, 2},
		{"past_end", PageRequest{Page: 9, PageSize: 2}, []int{}, 3, 9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.req)

			if len(got.Data) != len(tt.wantData) {
				t.Fatalf("data = %v, want %v", got.Data, tt.wantData)
			}
			for i := range got.Data {
				if got.Data[i] != tt.wantData[i] {
					t.Errorf("data = %v, want %v", got.Data, tt.wantData)
					break
				}
			}
			if got.TotalItems != 5 {
				t.Errorf("total items = %d, want 5", got.TotalItems)
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("total pages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.Page != tt.wantPage || got.PageSize != tt.wantSize {
				t.Errorf("page %d size %d, want %d/%d", got.Page, got.PageSize, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestPaginateCopies(t *testing.T) {
	items := []int{1, 2, 3}
	got := Paginate(items, PageRequest{Page: 1, PageSize: 2})
	got.Data[0] = 99

	if items[0] != 1 {
		t.Error("page shares backing array with input")
	}
}

func TestNewPageResponseNilData(t *testing.T) {
	resp := NewPageResponse[string](nil, 1, 20, 0)
	if resp.Data == nil {
		t.Error("expected empty slice, got nil")
	}
	if resp.TotalPages != 0 {
		t.Errorf("total pages = %d, want 0", resp.TotalPages)
	}
}

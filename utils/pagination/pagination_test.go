package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaginationParams(t *testing.T) {
	tests := []struct {
		name    string
		params  PaginationParams
		wantErr bool
	}{
		{"defaults are valid", PaginationParams{Page: 1, PageSize: 10}, false},
		{"max page size", PaginationParams{Page: 1, PageSize: 100}, false},
		{"zero page", PaginationParams{Page: 0, PageSize: 10}, true},
		{"negative page", PaginationParams{Page: -3, PageSize: 10}, true},
		{"zero page size", PaginationParams{Page: 1, PageSize: 0}, true},
		{"oversized page size", PaginationParams{Page: 1, PageSize: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaginationParams(tt.params)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

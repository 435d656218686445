package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devyansh/etransport-api/internal/domain/entity"
)

func TestParseChallanStatus(t *testing.T) {
	tests := []struct {
		in   string
		want entity.ChallanStatus
		ok   bool
	}{
		{"pending", entity.StatusPending, true},
		{"active", entity.StatusActive, true},
		{"disposed", entity.StatusDisposed, true},
		{"Pending", "", false},
		{"DISPOSED", "", false},
		{"closed", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := entity.ParseChallanStatus(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

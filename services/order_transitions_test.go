package services

import (
	"testing"

	"github.com/DonAdhyatma/fe-final-project/entity"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusProcessing, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPending, entity.OrderStatusCompleted, false},
		{entity.OrderStatusProcessing, entity.OrderStatusCompleted, true},
		{entity.OrderStatusProcessing, entity.OrderStatusCancelled, true},
		{entity.OrderStatusProcessing, entity.OrderStatusPending, false},
		{entity.OrderStatusCompleted, entity.OrderStatusCancelled, false},
		{entity.OrderStatusCompleted, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusProcessing, false},
		{"", entity.OrderStatusPending, false},
		{entity.OrderStatusPending, "", false},
		{entity.OrderStatusPending, entity.OrderStatusPending, false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

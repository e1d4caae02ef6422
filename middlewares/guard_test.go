package middlewares

import "testing"

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required []string
		want     bool
	}{
		{"no requirement, authenticated", "cashier", nil, true},
		{"no requirement, anonymous", "", nil, false},
		{"exact match", "admin", []string{"admin"}, true},
		{"one of several", "cashier", []string{"cashier", "admin"}, true},
		{"admin not in cashier-only", "admin", []string{"cashier"}, false},
		{"wrong role", "cashier", []string{"admin"}, false},
		{"anonymous against requirement", "", []string{"admin"}, false},
		{"unknown role", "rider", []string{"cashier", "admin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.role, tt.required...); got != tt.want {
				t.Errorf("CanAccess(%q, %v) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}

package services

import "testing"

func TestChangeFor(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		received   int64
		wantChange int64
		wantOK     bool
	}{
		{"exact", 46200, 46200, 0, true},
		{"round nominal", 46200, 50000, 3800, true},
		{"large note", 46200, 100000, 53800, true},
		{"short", 46200, 46000, 0, false},
		{"zero received", 46200, 0, 0, false},
		{"free order", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, ok := ChangeFor(tt.total, tt.received)
			if change != tt.wantChange || ok != tt.wantOK {
				t.Errorf("ChangeFor(%d, %d) = (%d, %v), want (%d, %v)",
					tt.total, tt.received, change, ok, tt.wantChange, tt.wantOK)
			}
		})
	}
}

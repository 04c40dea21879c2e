package components

import "testing"

func TestHealthDamageClampsAtZero(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		damage   []float64
		want     float64
		depleted bool
	}{
		{"single hit", 100, []float64{1}, 99, false},
		{"exact kill", 10, []float64{0.5, 9.5}, 0, true},
		{"overkill", 1, []float64{5}, 0, true},
		{"repeated hits after death", 1, []float64{1, 1, 1}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthComponent{Current: tt.start, Max: 100}
			for _, d := range tt.damage {
				h.Damage(d)
				if h.Current < 0 {
					t.Fatalf("health went negative: %v", h.Current)
				}
			}
			if h.Current != tt.want {
				t.Errorf("got %v, want %v", h.Current, tt.want)
			}
			if h.IsDepleted() != tt.depleted {
				t.Errorf("IsDepleted = %v, want %v", h.IsDepleted(), tt.depleted)
			}
		})
	}
}

func TestHealthPercent(t *testing.T) {
	h := &HealthComponent{Current: 37, Max: 100}
	if got := h.Percent(); got != 37 {
		t.Errorf("got %v, want 37", got)
	}
	h = &HealthComponent{Current: 5, Max: 10}
	if got := h.Percent(); got != 50 {
		t.Errorf("got %v, want 50", got)
	}
	h = &HealthComponent{Current: 5}
	if got := h.Percent(); got != 0 {
		t.Errorf("zero max should give 0, got %v", got)
	}
}

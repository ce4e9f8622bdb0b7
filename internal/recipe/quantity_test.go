package recipe

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		line         string
		wantName     string
		wantQuantity string
	}{
		{"1 cup flour", "flour", "1 cup"},
		{"2 eggs", "eggs", "2"},
		{"1 1/2 cups milk", "milk", "1 1/2 cups"},
		{"3/4 teaspoon salt", "salt", "3/4 teaspoon"},
		{"salt", "salt", ""},
		{"black pepper", "black pepper", ""},
		{"none garlic", "garlic", ""},
		{"250 grams pasta", "pasta", "250 grams"},
		{"", "", ""},
		{"  Olive Oil  ", "olive oil", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, quantity := ParseQuantity(tt.line)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if quantity != tt.wantQuantity {
				t.Errorf("quantity = %q, want %q", quantity, tt.wantQuantity)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		quantity string
		want     float64
		wantUnit string
		wantOK   bool
	}{
		{"2", 2, "", true},
		{"1/2", 0.5, "", true},
		{"1 1/2 cups", 1.5, "cups", true},
		{"0.75 cup", 0.75, "cup", true},
		{"a pinch", 0, "", false},
		{"", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.quantity, func(t *testing.T) {
			got, unit, ok := ParseAmount(tt.quantity)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
			if unit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", unit, tt.wantUnit)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2, "2"},
		{0.5, "1/2"},
		{1.5, "1 1/2"},
		{0.75, "3/4"},
		{0.25, "1/4"},
		{2.0 / 3.0, "2/3"},
		{0, "0"},
		{0.15, "0.15"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatAmount(tt.value); got != tt.want {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestScaleQuantity(t *testing.T) {
	tests := []struct {
		quantity string
		ratio    float64
		want     string
		wantOK   bool
	}{
		{"2 tablespoons", 0.75, "1 1/2 tablespoons", true},
		{"1 cup", 1.0, "1 cup", true},
		{"1 1/2 cups", 2.0, "3 cups", true},
		{"to taste", 0.5, "to taste", false},
	}

	for _, tt := range tests {
		t.Run(tt.quantity, func(t *testing.T) {
			got, ok := ScaleQuantity(tt.quantity, tt.ratio)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

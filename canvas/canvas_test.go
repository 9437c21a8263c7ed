package canvas

import (
	"sync"
	"testing"

	"github.com/salescope/reportkit/model"
)

func TestFixedMeasureText(t *testing.T) {
	m := NewFixed()
	font := model.FontSpec{Family: "Helvetica", Size: 10}

	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"a", 5},
		{"hello", 25},
		{"héllo", 25}, // runes, not bytes
		{"a b", 15},
	}
	for _, tt := range tests {
		got, err := m.MeasureText(tt.text, font)
		if err != nil {
			t.Fatalf("MeasureText(%q): %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("MeasureText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFixedZeroAdvanceFallsBack(t *testing.T) {
	m := &Fixed{}
	got, err := m.MeasureText("ab", model.FontSpec{Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Errorf("MeasureText = %v, want 10", got)
	}
}

func TestFixedScalesWithFontSize(t *testing.T) {
	m := NewFixed()
	small, _ := m.MeasureText("abcd", model.FontSpec{Size: 8})
	large, _ := m.MeasureText("abcd", model.FontSpec{Size: 16})
	if large != 2*small {
		t.Errorf("doubling size: %v vs %v", small, large)
	}
}

func TestGoFontMeasureText(t *testing.T) {
	g, err := NewGoFont()
	if err != nil {
		t.Fatal(err)
	}
	font := model.FontSpec{Family: "Go", Size: 12}

	short, err := g.MeasureText("hi", font)
	if err != nil {
		t.Fatal(err)
	}
	long, err := g.MeasureText("hi there friend", font)
	if err != nil {
		t.Fatal(err)
	}
	if short <= 0 {
		t.Errorf("short width = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("longer text measured %v, not wider than %v", long, short)
	}

	empty, err := g.MeasureText("", font)
	if err != nil {
		t.Fatal(err)
	}
	if empty != 0 {
		t.Errorf("empty width = %v, want 0", empty)
	}
}

func TestGoFontStyleFallback(t *testing.T) {
	g, err := NewGoFont()
	if err != nil {
		t.Fatal(err)
	}
	regular, err := g.MeasureText("weight", model.FontSpec{Size: 12})
	if err != nil {
		t.Fatal(err)
	}
	unknown, err := g.MeasureText("weight", model.FontSpec{Style: "X", Size: 12})
	if err != nil {
		t.Fatal(err)
	}
	if regular != unknown {
		t.Errorf("unknown style measured %v, regular %v; want fallback to regular", unknown, regular)
	}

	bold, err := g.MeasureText("weight", model.FontSpec{Style: "B", Size: 12})
	if err != nil {
		t.Fatal(err)
	}
	if bold == 0 {
		t.Error("bold width = 0")
	}
}

func TestGoFontConcurrentUse(t *testing.T) {
	g, err := NewGoFont()
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(size float64) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := g.MeasureText("concurrent", model.FontSpec{Size: size}); err != nil {
					t.Errorf("MeasureText: %v", err)
					return
				}
			}
		}(float64(8 + i))
	}
	wg.Wait()
}

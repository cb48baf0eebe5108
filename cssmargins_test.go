package dcv

// Notes:
// - parsePageMargins: @page rule extraction, partial declarations,
//   malformed values, CSS without @page
// - overlay: per-field precedence

import (
	"errors"
	"testing"
)

func TestParsePageMargins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		css  string
		want pageMargins
	}{
		{
			name: "no page rule",
			css:  "body { margin: 0; }",
			want: pageMargins{},
		},
		{
			name: "all four sides",
			css:  "@page { size: a4; margin-top: 25mm; margin-right: 20mm; margin-bottom: 25mm; margin-left: 20mm; }",
			want: pageMargins{Top: "25mm", Right: "20mm", Bottom: "25mm", Left: "20mm"},
		},
		{
			name: "partial declarations",
			css:  "@page {\n  margin-top: 1in;\n}",
			want: pageMargins{Top: "1in"},
		},
		{
			name: "fractional value",
			css:  "@page { margin-left: 1.5cm; }",
			want: pageMargins{Left: "1.5cm"},
		},
		{
			name: "only first page rule read",
			css:  "@page { margin-top: 10mm; } @page :first { margin-top: 40mm; }",
			want: pageMargins{Top: "10mm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parsePageMargins(tt.css)
			if err != nil {
				t.Fatalf("parsePageMargins() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePageMarginsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		css  string
	}{
		{name: "unknown unit", css: "@page { margin-top: 25furlong; }"},
		{name: "bare number", css: "@page { margin-left: 25; }"},
		{name: "keyword value", css: "@page { margin-bottom: auto; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parsePageMargins(tt.css)
			if !errors.Is(err, ErrInvalidMargin) {
				t.Errorf("error = %v, want ErrInvalidMargin", err)
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	base := pageMargins{Top: "25mm", Right: "20mm", Bottom: "25mm", Left: "20mm"}
	got := base.overlay(pageMargins{Top: "40mm", Left: "1in"})

	want := pageMargins{Top: "40mm", Right: "20mm", Bottom: "25mm", Left: "1in"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

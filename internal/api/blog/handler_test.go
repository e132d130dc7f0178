package blog

import "testing"

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Why Spring Is Selling Season", "why-spring-is-selling-season"},
		{"  Trimmed  Title  ", "trimmed-title"},
		{"Prices: up 10%!", "prices-up-10"},
		{"---", "post"},
		{"", "post"},
		{"Já vendido?", "j-vendido"},
	}

	for _, tc := range cases {
		if got := makeSlug(tc.in); got != tc.want {
			t.Errorf("makeSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

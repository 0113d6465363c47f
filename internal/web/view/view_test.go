package view

import (
	"strings"
	"testing"
)

func TestNewRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	for _, name := range []string{
		"home.html", "about.html", "contact.html", "catalog.html",
		"car.html", "login.html", "register.html", "admin.html",
		"notfound.html", "error.html",
	} {
		if _, ok := r.pages[name]; !ok {
			t.Errorf("page %s missing from renderer", name)
		}
	}
}

func TestRenderWrapsPageInLayout(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	var buf strings.Builder
	page := Page{
		Title:    "Catalog",
		Authed:   true,
		Username: "aigerim",
		Flash:    &Flash{Kind: "success", Message: "Asset registered successfully"},
		Data:     struct{ Cars []struct{} }{},
	}
	if err := r.Render(&buf, "catalog.html", page, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Catalog") {
		t.Errorf("title missing from layout")
	}
	if !strings.Contains(out, "aigerim") {
		t.Errorf("authenticated username missing from navigation")
	}
	if !strings.Contains(out, "Asset registered successfully") {
		t.Errorf("flash notification missing")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if err := r.Render(&strings.Builder{}, "missing.html", Page{}, nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestMoneyFormatsThousands(t *testing.T) {
	money := funcs["money"].(func(float64) string)
	cases := []struct {
		in   float64
		want string
	}{
		{0, "—"},
		{900, "900"},
		{18900000, "18 900 000"},
		{61500000, "61 500 000"},
	}
	for _, tc := range cases {
		if got := money(tc.in); got != tc.want {
			t.Errorf("money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

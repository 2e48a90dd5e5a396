package i18n

import (
	"testing"
	"time"
)

func TestPriorityLabelMapping(t *testing.T) {
	en := New("en")
	tr := New("tr")
	cases := []struct {
		in     string
		wantEN string
		wantTR string
	}{
		{"low", "Low", "Düşük"},
		{"medium", "Medium", "Orta"},
		{"high", "High", "Yüksek"},
		{"urgent", "urgent", "urgent"},
		{"", "", ""},
		{"High", "High", "High"},
	}
	for _, tc := range cases {
		if got := en.PriorityLabel(tc.in); got != tc.wantEN {
			t.Fatalf("en PriorityLabel(%q) = %q, want %q", tc.in, got, tc.wantEN)
		}
		if got := tr.PriorityLabel(tc.in); got != tc.wantTR {
			t.Fatalf("tr PriorityLabel(%q) = %q, want %q", tc.in, got, tc.wantTR)
		}
	}
}

func TestNewFallsBackToEnglish(t *testing.T) {
	for _, lang := range []string{"", "xx-not-a-tag", "de"} {
		c := New(lang)
		if c.Lang() != "en" {
			t.Fatalf("New(%q) lang = %q, want en", lang, c.Lang())
		}
		if got := c.T(MsgTodosEmpty); got != "No todos yet" {
			t.Fatalf("New(%q) empty text = %q", lang, got)
		}
	}
	if got := New("tr-TR").Lang(); got != "tr" {
		t.Fatalf("expected tr for tr-TR, got %q", got)
	}
}

func TestTemplateDataAndUnknownID(t *testing.T) {
	c := New("en")
	if got := c.T(MsgGreeting, "Name", "Ada"); got != "Hello, Ada" {
		t.Fatalf("unexpected greeting: %q", got)
	}
	if got := c.T("no.such.id"); got != "no.such.id" {
		t.Fatalf("expected id passthrough, got %q", got)
	}
}

func TestDetailPrefersServerMessage(t *testing.T) {
	c := New("tr")
	if got := c.Detail("Invalid credentials.", MsgLoginFailed); got != "Invalid credentials." {
		t.Fatalf("expected server detail, got %q", got)
	}
	if got := c.Detail("  ", MsgLoginFailed); got != "Giriş başarısız!" {
		t.Fatalf("expected localized fallback, got %q", got)
	}
}

func TestFormatDates(t *testing.T) {
	at := time.Date(2026, 2, 9, 14, 5, 7, 0, time.UTC)
	en := New("en").WithLocation(time.UTC)
	tr := New("tr").WithLocation(time.UTC)
	if got := en.FormatDate(at); got != "2/9/2026" {
		t.Fatalf("en date = %q", got)
	}
	if got := en.FormatDateTime(at); got != "2/9/2026, 2:05:07 PM" {
		t.Fatalf("en datetime = %q", got)
	}
	if got := tr.FormatDate(at); got != "09.02.2026" {
		t.Fatalf("tr date = %q", got)
	}
	if got := tr.FormatDateTime(at); got != "09.02.2026 14:05:07" {
		t.Fatalf("tr datetime = %q", got)
	}
}

package credentials

import (
	"strings"
	"testing"
)

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		want int // bullet count
	}{
		{"empty", "", 0},
		{"short", "abc", 3},
		{"exactly at cap", "123456789012", 12},
		{"beyond cap", "1234567890123456789", 12},
		{"multibyte runes count as characters", "pässwörd", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskPassword(tt.pw)
			if got != strings.Repeat("•", tt.want) {
				t.Errorf("MaskPassword(%q) = %q, want %d bullets", tt.pw, got, tt.want)
			}
		})
	}
}

func TestEntryDisplay(t *testing.T) {
	secret := "hunter2!"

	tests := []struct {
		name    string
		entry   Entry
		visible bool
		want    string
	}{
		{"nil password hidden", Entry{Name: "open"}, false, NoPasswordLabel},
		{"nil password visible", Entry{Name: "open"}, true, NoPasswordLabel},
		{"hidden", Entry{Name: "home", Password: &secret}, false, "••••••••"},
		{"visible", Entry{Name: "home", Password: &secret}, true, secret},
		{"empty password hidden", Entry{Name: "odd", Password: strPtr("")}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Display(tt.visible); got != tt.want {
				t.Errorf("Display(%v) = %q, want %q", tt.visible, got, tt.want)
			}
		})
	}
}

func TestHasPassword(t *testing.T) {
	if (Entry{Name: "open"}).HasPassword() {
		t.Error("nil password should report HasPassword() = false")
	}
	if (Entry{Name: "odd", Password: strPtr("")}).HasPassword() {
		t.Error("empty password should report HasPassword() = false")
	}
	if !(Entry{Name: "home", Password: strPtr("x")}).HasPassword() {
		t.Error("non-empty password should report HasPassword() = true")
	}
}

func TestSort(t *testing.T) {
	entries := []Entry{
		{Name: "zeta"},
		{Name: "Alpha"},
		{Name: "beta"},
		{Name: "Beta"},
	}

	Sort(entries)

	// Lexicographic byte order: uppercase sorts before lowercase.
	want := []string{"Alpha", "Beta", "beta", "zeta"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
	}
}

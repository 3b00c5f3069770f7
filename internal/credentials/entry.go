package credentials

import (
	"sort"
	"strings"
)

// NoPasswordLabel is displayed for profiles without key material.
const NoPasswordLabel = "No password / Open network"

// maskCap is the maximum number of mask characters rendered, so the mask
// never leaks the real password length beyond this bound.
const maskCap = 12

// Entry is one saved WiFi profile. A nil Password means the profile has no
// key material: an open network, or a backend that cannot expose keys.
type Entry struct {
	Name     string  `json:"profile_name"`
	Password *string `json:"password,omitempty"`
}

// HasPassword reports whether the entry carries a non-empty password.
func (e Entry) HasPassword() bool {
	return e.Password != nil && *e.Password != ""
}

// Display returns the password text for rendering: the label for missing
// passwords, the plaintext when visible, and a mask otherwise.
func (e Entry) Display(visible bool) string {
	if e.Password == nil {
		return NoPasswordLabel
	}
	if visible {
		return *e.Password
	}
	return MaskPassword(*e.Password)
}

// MaskPassword returns one bullet per password character, capped at 12.
func MaskPassword(pw string) string {
	n := len([]rune(pw))
	if n > maskCap {
		n = maskCap
	}
	return strings.Repeat("•", n)
}

// Sort orders entries by profile name, ascending.
func Sort(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

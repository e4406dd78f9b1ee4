package model

import "strings"

// Mode selects which detail record a run emits.
type Mode struct {
	Name       string   // e.g. "C"
	Label      string   // e.g. "BPA-C"
	RecordType string   // first two characters of each detail line
	Aliases    []string // accepted spellings, lowercase
}

var (
	Consolidated = Mode{
		Name:       "C",
		Label:      "BPA-C",
		RecordType: "02",
		Aliases:    []string{"c", "1", "bpa-c", "consolidated", "consolidado"},
	}
	Individualized = Mode{
		Name:       "I",
		Label:      "BPA-I",
		RecordType: "03",
		Aliases:    []string{"i", "2", "bpa-i", "individualized", "individualizado"},
	}
)

// AllModes lists the supported modes in canonical order.
var AllModes = []Mode{Consolidated, Individualized}

// ModeByName resolves a user-supplied mode, case-insensitively.
func ModeByName(name string) (Mode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range AllModes {
		for _, a := range m.Aliases {
			if a == name {
				return m, true
			}
		}
	}
	return Mode{}, false
}

// ModeNames returns the canonical short names, for help text.
func ModeNames() []string {
	names := make([]string, len(AllModes))
	for i, m := range AllModes {
		names[i] = strings.ToLower(m.Name)
	}
	return names
}

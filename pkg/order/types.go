package order

import (
	"slices"
	"strings"
)

// Field names used by form events, error maps, and posted payloads.
const (
	FieldFullName = "fullName"
	FieldSize     = "size"
	FieldToppings = "toppings"
)

// Size is the pizza size code selected in the form. The zero value means no
// size has been chosen yet.
type Size string

const (
	SizeNone   Size = ""
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Sizes lists the selectable size codes in display order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Valid reports whether s is one of the selectable size codes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// Label returns the option label rendered in size pickers.
func (s Size) Label() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	default:
		return ""
	}
}

// Word returns the lower-case size used in confirmation sentences. Unknown
// codes read as "large".
func (s Size) Word() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	default:
		return "large"
	}
}

// FormState is the mutable record of the current user input. Toppings holds
// catalog labels with set semantics: no duplicates, first-checked first.
type FormState struct {
	FullName string   `json:"fullName" yaml:"fullName"`
	Size     Size     `json:"size" yaml:"size"`
	Toppings []string `json:"toppings" yaml:"toppings"`
}

// Clone returns a deep copy so snapshots never alias live state.
func (s FormState) Clone() FormState {
	out := s
	if s.Toppings != nil {
		out.Toppings = append([]string{}, s.Toppings...)
	} else {
		out.Toppings = []string{}
	}
	return out
}

// Empty reports whether the state matches the initial form.
func (s FormState) Empty() bool {
	return s.FullName == "" && s.Size == SizeNone && len(s.Toppings) == 0
}

// HasTopping reports whether label is currently selected.
func (s FormState) HasTopping(label string) bool {
	return slices.Contains(s.Toppings, label)
}

// AddTopping selects label. Returns false when it was already selected.
func (s *FormState) AddTopping(label string) bool {
	if s.HasTopping(label) {
		return false
	}
	s.Toppings = append(s.Toppings, label)
	return true
}

// RemoveTopping deselects label. Returns false when it was not selected.
func (s *FormState) RemoveTopping(label string) bool {
	idx := slices.Index(s.Toppings, label)
	if idx < 0 {
		return false
	}
	s.Toppings = slices.Delete(s.Toppings, idx, idx+1)
	return true
}

// TrimmedName returns the full name as the validation rules see it.
func (s FormState) TrimmedName() string {
	return strings.TrimSpace(s.FullName)
}

// NewFormState returns the initial, empty form.
func NewFormState() FormState {
	return FormState{Toppings: []string{}}
}

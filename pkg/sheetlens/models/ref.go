package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnRef addresses a column of a Table.
//
// A reference matches by Section and Label when set, and by source Position
// when HasPosition is true. A reference with only Label set also matches a
// column whose flattened name equals Label.
type ColumnRef struct {
	Section     string `json:"section,omitempty"`
	Label       string `json:"label,omitempty"`
	Position    int    `json:"position,omitempty"`
	HasPosition bool   `json:"has_position,omitempty"`
}

// RefByName returns a reference by section and label. section may be empty.
func RefByName(section, label string) ColumnRef {
	return ColumnRef{Section: section, Label: label}
}

// RefByPosition returns a reference to the column at a 0-based source position.
func RefByPosition(pos int) ColumnRef {
	return ColumnRef{Position: pos, HasPosition: true}
}

// IsZero reports whether the reference selects nothing.
func (r ColumnRef) IsZero() bool {
	return r.Section == "" && r.Label == "" && !r.HasPosition
}

// Matches reports whether h is addressed by r.
func (r ColumnRef) Matches(h ColumnHeader) bool {
	if r.IsZero() {
		return false
	}
	if r.HasPosition && h.Position != r.Position {
		return false
	}
	if r.Section != "" && r.Section != h.Section {
		return false
	}
	if r.Label != "" && r.Label != h.Label {
		if r.Section != "" || r.Label != h.Name() {
			return false
		}
	}
	return true
}

func (r ColumnRef) String() string {
	var name string
	switch {
	case r.Section != "" && r.Label != "":
		name = r.Section + "/" + r.Label
	case r.Section != "":
		name = r.Section + "/"
	default:
		name = r.Label
	}
	if r.HasPosition {
		if name == "" {
			return "#" + strconv.Itoa(r.Position)
		}
		return name + "#" + strconv.Itoa(r.Position)
	}
	return name
}

// ParseColumnRef parses "Label", "Section/Label", "Section - Label" or "#N".
// A trailing "#N" after a name pins the source position.
func ParseColumnRef(s string) (ColumnRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColumnRef{}, fmt.Errorf("%w: empty column reference", ErrUnknownColumn)
	}

	var ref ColumnRef
	if idx := strings.LastIndex(s, "#"); idx >= 0 {
		pos, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
		if err == nil {
			if pos < 0 {
				return ColumnRef{}, fmt.Errorf("%w: negative position in %q", ErrUnknownColumn, s)
			}
			ref.Position = pos
			ref.HasPosition = true
			s = strings.TrimSpace(s[:idx])
		}
	}

	if idx := strings.Index(s, "/"); idx >= 0 {
		ref.Section = strings.TrimSpace(s[:idx])
		ref.Label = strings.TrimSpace(s[idx+1:])
	} else {
		ref.Label = s
	}
	return ref, nil
}

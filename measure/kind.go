// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a Kind value or name that names no measure.
var ErrUnknownKind = errors.New("measure: unknown measure kind")

// Kind enumerates the built-in measures. The zero value is invalid.
type Kind int

const (
	// Quadrant is the quadrant-count (Q) measure.
	Quadrant Kind = iota + 1
	// ARI is the Adjusted Rand Index.
	ARI
	// CC is the contingency coefficient.
	CC
	// MI is mutual information.
	MI
)

var kindNames = map[Kind]string{
	Quadrant: "Quadrant",
	ARI:      "ARI",
	CC:       "CC",
	MI:       "MI",
}

// kindAliases maps lower-cased spellings accepted by ParseKind.
var kindAliases = map[string]Kind{
	"quadrant":                Quadrant,
	"q":                       Quadrant,
	"ari":                     ARI,
	"adjusted-rand-index":     ARI,
	"cc":                      CC,
	"contingency-coefficient": CC,
	"mi":                      MI,
	"mutual-information":      MI,
}

// Kinds lists every built-in kind in declaration order.
func Kinds() []Kind {
	return []Kind{Quadrant, ARI, CC, MI}
}

// Valid reports whether k names a built-in measure.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the canonical measure name, or "Kind(n)" for unknown values.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a measure name case-insensitively. Accepted spellings
// are the canonical names ("Quadrant", "ARI", "CC", "MI"), "Q", and the
// hyphenated long forms such as "mutual-information".
func ParseKind(name string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

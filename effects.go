package dragdrop

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Effect is the semantic operation a drop will perform, negotiated
// between source and target.
type Effect string

const (
	EffectMove Effect = "move"
	EffectCopy Effect = "copy"
	EffectLink Effect = "link"
)

// ErrInvalidConfig is returned when a source or target configuration
// cannot be encoded for the platform. It is the only validated failure
// mode; misuse beyond it (nil elements, nil carriers) fails downstream.
var ErrInvalidConfig = errors.New("invalid drag-and-drop configuration")

// EncodeEffects canonicalizes a set of allowed effects into the single
// token the platform expects in the carrier's allowed-effects field:
//
//	none       ->  "none"
//	one        ->  its name, e.g. "move"
//	all three  ->  "all"
//	otherwise  ->  sorted and camel-folded, e.g. "copyMove"
//
// Effects outside move/copy/link fail with ErrInvalidConfig.
func EncodeEffects(effects ...Effect) (string, error) {
	for _, e := range effects {
		switch e {
		case EffectMove, EffectCopy, EffectLink:
		default:
			return "", fmt.Errorf("unknown effect %q: %w", string(e), ErrInvalidConfig)
		}
	}

	switch len(effects) {
	case 0:
		return "none", nil
	case 1:
		return string(effects[0]), nil
	}

	if len(effects) == 3 && containsAll(effects) {
		return "all", nil
	}

	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = string(e)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(names[0])
	for _, n := range names[1:] {
		b.WriteString(strings.ToUpper(n[:1]))
		b.WriteString(n[1:])
	}
	return b.String(), nil
}

// containsAll reports whether effects covers move, copy and link.
func containsAll(effects []Effect) bool {
	var move, cp, link bool
	for _, e := range effects {
		switch e {
		case EffectMove:
			move = true
		case EffectCopy:
			cp = true
		case EffectLink:
			link = true
		}
	}
	return move && cp && link
}

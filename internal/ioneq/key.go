package ioneq

import (
	"fmt"
	"strconv"
	"strings"
)

type keyKind int

const (
	positionKey keyKind = iota
	symbolicKey
)

// Key addresses one ionization stage of an element, either by 0-based
// position or by a parsed symbolic form.
type Key struct {
	kind   keyKind
	pos    int
	symbol string
}

// Position returns a key addressing the stage at 0-based index i
// (0 = neutral).
func Position(i int) Key {
	return Key{kind: positionKey, pos: i}
}

// ParseKey parses a symbolic stage key. Two forms are accepted:
// "<element> <stage>" with a 1-based spectroscopic stage ("Fe 1" is
// neutral iron) and "<element> <charge>+" with a 0-based charge
// ("Fe 0+" is also neutral iron). The element token is carried for
// display but not cross-checked against the element being indexed.
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	symbol, stagePart := fields[0], fields[1]

	if rest, ok := strings.CutSuffix(stagePart, "+"); ok {
		charge, err := strconv.Atoi(rest)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
		}
		return Key{kind: symbolicKey, pos: charge, symbol: symbol}, nil
	}

	stage, err := strconv.Atoi(stagePart)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	return Key{kind: symbolicKey, pos: stage - 1, symbol: symbol}, nil
}

// Index is the 0-based stage position the key resolves to.
func (k Key) Index() int { return k.pos }

func (k Key) String() string {
	if k.kind == positionKey {
		return strconv.Itoa(k.pos)
	}
	return fmt.Sprintf("%s %d", k.symbol, k.pos+1)
}

// Package imdb classifies IMDb identifiers and builds their public URLs.
package imdb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedKind is returned for an identifier whose prefix is not a
// known IMDb kind. It indicates bad data upstream, not a transient failure.
var ErrUnrecognizedKind = errors.New("imdb: unrecognized identifier kind")

// Kind is the type of object an IMDb identifier names.
type Kind int

const (
	KindUnknown Kind = iota
	KindName         // nm: person
	KindTitle        // tt: film
	KindCompany      // co: company
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindTitle:
		return "title"
	case KindCompany:
		return "company"
	}
	return "unknown"
}

// KindOf returns the kind of id.
func KindOf(id string) (Kind, error) {
	switch {
	case strings.HasPrefix(id, "nm"):
		return KindName, nil
	case strings.HasPrefix(id, "tt"):
		return KindTitle, nil
	case strings.HasPrefix(id, "co"):
		return KindCompany, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnrecognizedKind, id)
}

// URL returns the imdb.com page for id.
func URL(id string) (string, error) {
	kind, err := KindOf(id)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindName:
		return "https://www.imdb.com/name/" + id, nil
	case KindTitle:
		return "https://www.imdb.com/title/" + id, nil
	default:
		return "https://www.imdb.com/search/title/?companies=" + id, nil
	}
}

package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NotFoundError is returned when a reference code is not in the registry.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("indicator not found: %q", e.Code)
}

// Registry is an immutable index of definitions keyed by reference code.
// It is safe for concurrent readers.
type Registry struct {
	name       string
	legalBasis []string
	defs       []Definition
	byCode     map[string]int
	byKey      map[string]int
}

// NewRegistry validates the catalog and indexes its definitions.
func NewRegistry(c *Catalog) (*Registry, error) {
	if errs := Validate(c); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("catalog.NewRegistry: invalid catalog %q: %s", c.Name, strings.Join(msgs, "; "))
	}

	r := &Registry{
		name:       c.Name,
		legalBasis: append([]string(nil), c.LegalBasis...),
		defs:       append([]Definition(nil), c.Indicators...),
		byCode:     make(map[string]int, len(c.Indicators)),
		byKey:      make(map[string]int, 2*len(c.Indicators)),
	}
	for i, d := range r.defs {
		r.byCode[d.ReferenceCode] = i
	}
	// Titles are indexed after codes so a title never shadows a code.
	for i, d := range r.defs {
		r.byKey[normalizeKey(d.ReferenceCode)] = i
	}
	for i, d := range r.defs {
		k := normalizeKey(d.Title)
		if _, taken := r.byKey[k]; !taken {
			r.byKey[k] = i
		}
	}
	return r, nil
}

// Name returns the catalog name the registry was built from.
func (r *Registry) Name() string { return r.name }

// LegalBasis returns the legal instruments cited by the catalog.
func (r *Registry) LegalBasis() []string {
	return append([]string(nil), r.legalBasis...)
}

// Lookup returns the definition with exactly the given reference code.
func (r *Registry) Lookup(code string) (Definition, error) {
	i, ok := r.byCode[code]
	if !ok {
		return Definition{}, &NotFoundError{Code: code}
	}
	return r.defs[i], nil
}

// Resolve finds a definition by reference code or title, ignoring case,
// accents, punctuation and spacing. An exact code match always wins; a
// normalized prefix is accepted only when it selects a single definition.
func (r *Registry) Resolve(query string) (Definition, error) {
	if d, err := r.Lookup(query); err == nil {
		return d, nil
	}
	key := normalizeKey(query)
	if key == "" {
		return Definition{}, &NotFoundError{Code: query}
	}
	if i, ok := r.byKey[key]; ok {
		return r.defs[i], nil
	}
	match := -1
	for k, i := range r.byKey {
		if !strings.HasPrefix(k, key) {
			continue
		}
		if match >= 0 && match != i {
			return Definition{}, &NotFoundError{Code: query}
		}
		match = i
	}
	if match < 0 {
		return Definition{}, &NotFoundError{Code: query}
	}
	return r.defs[match], nil
}

// List returns every definition in declaration order.
func (r *Registry) List() []Definition {
	return append([]Definition(nil), r.defs...)
}

// Implemented returns the computable definitions in declaration order.
func (r *Registry) Implemented() []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Implemented {
			out = append(out, d)
		}
	}
	return out
}

// normalizeKey folds "Art. 12, II, b)" and "art 12 ii b" to the same key.
func normalizeKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, folded)
	return strings.Join(strings.Fields(folded), " ")
}

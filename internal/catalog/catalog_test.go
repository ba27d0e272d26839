package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinRegistry(t *testing.T) *Registry {
	t.Helper()
	c, err := LoadBuiltin(DefaultBuiltin)
	require.NoError(t, err)
	r, err := NewRegistry(c)
	require.NoError(t, err)
	return r
}

func TestLoadBuiltin(t *testing.T) {
	c, err := LoadBuiltin(DefaultBuiltin)
	require.NoError(t, err)

	assert.Equal(t, "premio-cnj-2025", c.Name)
	assert.Len(t, c.Indicators, 6)
	assert.Len(t, c.LegalBasis, 3)
	assert.Empty(t, Validate(c))
}

func TestLoadBuiltinNotFound(t *testing.T) {
	_, err := LoadBuiltin("nonexistent")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultBuiltin)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `name: local
version: 2
indicators:
  - reference_code: "X-1"
    title: "Local indicator"
    max_points: 10
    threshold_percent: 2.5
    comparison: max_allowed
    implemented: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "local", c.Name)
	require.Len(t, c.Indicators, 1)
	assert.Equal(t, 2.5, c.Indicators[0].ThresholdPercent)
	assert.Empty(t, c.Indicators[0].TargetLabel)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}

func TestComparisonValid(t *testing.T) {
	assert.True(t, ComparisonMaxAllowed.Valid())
	assert.False(t, Comparison("min_required").Valid())
	assert.False(t, Comparison("").Valid())
}

func TestValidate(t *testing.T) {
	c := &Catalog{
		Indicators: []Definition{
			{ReferenceCode: "A", Title: "ok", MaxPoints: 20, ThresholdPercent: 5, Comparison: ComparisonMaxAllowed},
			{ReferenceCode: "A", Title: "dup", MaxPoints: 20, ThresholdPercent: 5, Comparison: ComparisonMaxAllowed},
			{ReferenceCode: "", Title: "", MaxPoints: 0, ThresholdPercent: -1, Comparison: "min_required"},
		},
	}

	errs := Validate(c)
	paths := make(map[string]bool)
	for _, e := range errs {
		paths[e.Path] = true
	}

	for _, want := range []string{
		"name",
		"indicators[1].reference_code",
		"indicators[2].reference_code",
		"indicators[2].title",
		"indicators[2].max_points",
		"indicators[2].threshold_percent",
		"indicators[2].comparison",
	} {
		assert.True(t, paths[want], "missing validation error for %s (got %v)", want, errs)
	}
	assert.False(t, paths["indicators[0].reference_code"])
}

func TestValidateFoldedCodeCollision(t *testing.T) {
	def := func(code string) Definition {
		return Definition{ReferenceCode: code, Title: "t " + code, MaxPoints: 10, ThresholdPercent: 5, Comparison: ComparisonMaxAllowed}
	}
	c := &Catalog{
		Name:       "custom",
		Indicators: []Definition{def("Art. 12, I"), def("art 12 i"), def("Art. 12, II"), def("(--)")},
	}

	errs := Validate(c)
	require.Len(t, errs, 2, "%v", errs)
	assert.Equal(t, "indicators[1].reference_code", errs[0].Path)
	assert.Contains(t, errs[0].Message, `collides with "Art. 12, I"`)
	assert.Equal(t, "indicators[3].reference_code", errs[1].Path)

	_, err := NewRegistry(c)
	assert.Error(t, err)
}

func TestValidateEmpty(t *testing.T) {
	errs := Validate(&Catalog{Name: "empty"})
	require.Len(t, errs, 1)
	assert.Equal(t, "indicators", errs[0].Path)
}

func TestNewRegistryRejectsInvalid(t *testing.T) {
	_, err := NewRegistry(&Catalog{Name: "bad", Indicators: []Definition{{ReferenceCode: "A"}}})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "indicators[0].title"))
}

func TestLookup(t *testing.T) {
	r := builtinRegistry(t)

	d, err := r.Lookup("Art. 12, II, b)")
	require.NoError(t, err)
	assert.Equal(t, 20, d.MaxPoints)
	assert.Equal(t, 5.0, d.ThresholdPercent)
	assert.Equal(t, ComparisonMaxAllowed, d.Comparison)
	assert.True(t, d.Implemented)

	_, err = r.Lookup("nonexistent")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "nonexistent", nf.Code)
}

func TestListOrder(t *testing.T) {
	r := builtinRegistry(t)

	var codes []string
	for _, d := range r.List() {
		codes = append(codes, d.ReferenceCode)
	}
	assert.Equal(t, []string{
		"Art. 12, II, b)",
		"Art. 12, II, c)",
		"Art. 12, I",
		"Art. 12, III",
		"Art. 12, IV",
		"Art. 12, V",
	}, codes)

	// Callers cannot mutate the registry through the returned slice.
	list := r.List()
	list[0].MaxPoints = 999
	d, err := r.Lookup("Art. 12, II, b)")
	require.NoError(t, err)
	assert.Equal(t, 20, d.MaxPoints)
}

func TestImplemented(t *testing.T) {
	r := builtinRegistry(t)
	impl := r.Implemented()
	require.Len(t, impl, 2)
	assert.Equal(t, "Art. 12, II, b)", impl[0].ReferenceCode)
	assert.Equal(t, "Art. 12, II, c)", impl[1].ReferenceCode)
}

func TestPlaceholders(t *testing.T) {
	r := builtinRegistry(t)
	d, err := r.Lookup("Art. 12, I")
	require.NoError(t, err)
	assert.False(t, d.Implemented)
	assert.Equal(t, 174, d.MaxPoints)
	assert.Equal(t, 100.0, d.ThresholdPercent)
	assert.Equal(t, "100%", d.TargetLabel)

	d, err = r.Lookup("Art. 12, V")
	require.NoError(t, err)
	assert.Equal(t, "Satisfatório", d.TargetLabel)
}

func TestResolve(t *testing.T) {
	r := builtinRegistry(t)

	tests := []struct {
		query string
		want  string
	}{
		{"Art. 12, II, b)", "Art. 12, II, b)"},
		{"art 12 ii b", "Art. 12, II, b)"},
		{"ART. 12, II, C", "Art. 12, II, c)"},
		{"art 12 i", "Art. 12, I"},
		{"cadastro de magistrados", "Art. 12, II, b)"},
		{"Cadastro de Servidores(as)", "Art. 12, II, c)"},
		{"processos eletronicos", "Art. 12, IV"},
		{"igovtic-jud", "Art. 12, V"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			d, err := r.Resolve(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.ReferenceCode)
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	r := builtinRegistry(t)

	for _, q := range []string{"", "nonexistent", "cadastro", "art 12 ii"} {
		t.Run(q, func(t *testing.T) {
			_, err := r.Resolve(q)
			var nf *NotFoundError
			assert.True(t, errors.As(err, &nf), "expected NotFoundError for %q, got %v", q, err)
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "art 12 ii b", normalizeKey("Art. 12, II, b)"))
	assert.Equal(t, "saneamento datajud por unidade", normalizeKey("  Saneamento   DataJud por Unidade "))
	assert.Equal(t, "processos eletronicos", normalizeKey("Processos Eletrônicos"))
}

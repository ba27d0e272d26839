// Package counts reads the operator-supplied population and nonconformance
// counts that feed indicator evaluation.
package counts

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dshills/premiocnj/internal/indicator"
)

// Entry is one line of counts for a reference code.
type Entry struct {
	ReferenceCode string
	Total         int
	Nonconforming int
}

// Input validates the entry's counts.
func (e Entry) Input() (indicator.Input, error) {
	return indicator.NewInput(e.Total, e.Nonconforming)
}

// File holds a loaded counts file with its metadata. Sources are display
// labels for the spreadsheets the counts were taken from; they are never read.
type File struct {
	FilePath      string
	Hash          string
	ReferenceDate string
	Sources       []string
	Entries       []Entry
}

// fileDoc is the on-disk shape. Counts are pointers so an absent key is
// distinguishable from an explicit 0.
type fileDoc struct {
	ReferenceDate string     `yaml:"reference_date"`
	Sources       []string   `yaml:"sources"`
	Indicators    []entryDoc `yaml:"indicators"`
}

type entryDoc struct {
	ReferenceCode string `yaml:"reference_code" validate:"required"`
	Total         *int   `yaml:"total" validate:"required"`
	Nonconforming *int   `yaml:"nonconforming" validate:"required"`
}

var validate = validator.New()

// Load reads a counts file and computes its SHA-256 hash. Unknown keys and
// missing counts are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("counts.Load: %w", err)
	}

	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("counts.Load: parse %s: %w", path, err)
	}

	f := &File{
		FilePath:      path,
		ReferenceDate: doc.ReferenceDate,
		Sources:       doc.Sources,
		Entries:       make([]Entry, 0, len(doc.Indicators)),
	}
	for i, e := range doc.Indicators {
		if err := checkEntry(e); err != nil {
			return nil, fmt.Errorf("counts.Load: %s: indicators[%d].%s", path, i, err)
		}
		f.Entries = append(f.Entries, Entry{
			ReferenceCode: e.ReferenceCode,
			Total:         *e.Total,
			Nonconforming: *e.Nonconforming,
		})
	}
	f.Hash = fmt.Sprintf("sha256:%x", sha256.Sum256(data))
	return f, nil
}

// checkEntry reports the first absent field as "<key>: required".
func checkEntry(e entryDoc) error {
	if strings.TrimSpace(e.ReferenceCode) == "" {
		return errors.New("reference_code: required")
	}
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	switch fieldErrs[0].StructField() {
	case "Total":
		return errors.New("total: required")
	case "Nonconforming":
		return errors.New("nonconforming: required")
	}
	return fmt.Errorf("%s: %s", fieldErrs[0].Field(), fieldErrs[0].Tag())
}

// ParseAssignment parses "CODE=TOTAL:NONCONFORMING", e.g.
// "Art. 12, II, b)=150:5". The code may itself contain '=' only before the
// last one.
func ParseAssignment(s string) (Entry, error) {
	eq := strings.LastIndex(s, "=")
	if eq <= 0 {
		return Entry{}, fmt.Errorf("counts.ParseAssignment: %q: want CODE=TOTAL:NONCONFORMING", s)
	}
	code := strings.TrimSpace(s[:eq])
	totalStr, ncStr, ok := strings.Cut(s[eq+1:], ":")
	if code == "" || !ok {
		return Entry{}, fmt.Errorf("counts.ParseAssignment: %q: want CODE=TOTAL:NONCONFORMING", s)
	}
	total, err := strconv.Atoi(strings.TrimSpace(totalStr))
	if err != nil {
		return Entry{}, fmt.Errorf("counts.ParseAssignment: %q: total: %w", s, err)
	}
	nc, err := strconv.Atoi(strings.TrimSpace(ncStr))
	if err != nil {
		return Entry{}, fmt.Errorf("counts.ParseAssignment: %q: nonconforming: %w", s, err)
	}
	return Entry{ReferenceCode: code, Total: total, Nonconforming: nc}, nil
}

package iso3166

import (
	"fmt"
	"io"
	"strconv"
)

// Violation is one problem found by Validate.
type Violation struct {
	Index   int    `json:"index"`
	Country string `json:"country"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("entry %d (%s): %s", v.Index, v.Country, v.Message)
}

// Validate checks a data source against the catalog schema: every entry is
// complete, codes are well formed, and no name, alternate name, alpha-2,
// alpha-3 or numeric code is declared twice. Violations are returned as a
// list; the error is only set when the source cannot be decoded.
func Validate(r io.Reader, format Format) ([]Violation, error) {
	doc, err := decode(r, format)
	if err != nil {
		return nil, err
	}

	v := &validator{
		byName:    make(map[string]string),
		byAlpha2:  make(map[string]string),
		byAlpha3:  make(map[string]string),
		byNumeric: make(map[int]string),
	}
	for i := range doc.Countries {
		v.check(i, &doc.Countries[i])
	}
	return v.violations, nil
}

type validator struct {
	byName     map[string]string
	byAlpha2   map[string]string
	byAlpha3   map[string]string
	byNumeric  map[int]string
	violations []Violation
}

func (v *validator) report(index int, rec *record, field, value, msg string) {
	v.violations = append(v.violations, Violation{
		Index:   index,
		Country: rec.Name,
		Field:   field,
		Value:   value,
		Message: msg,
	})
}

func (v *validator) check(index int, rec *record) {
	if problem := rec.problem(); problem != "" {
		v.report(index, rec, "", "", "incorrect definition: "+problem)
		return
	}

	if !isUpperAlpha(rec.Alpha2, 2) {
		v.report(index, rec, "alpha2", rec.Alpha2, "alpha2 must be two upper-case letters")
	}
	if !isUpperAlpha(rec.Alpha3, 3) {
		v.report(index, rec, "alpha3", rec.Alpha3, "alpha3 must be three upper-case letters")
	}

	v.claimName(index, rec, rec.Name)
	for _, alt := range rec.altNameList() {
		v.claimName(index, rec, alt)
	}
	if owner, ok := v.byAlpha2[rec.Alpha2]; ok {
		v.report(index, rec, "alpha2", rec.Alpha2, fmt.Sprintf("alpha2 %s already declared by %s", rec.Alpha2, owner))
	} else {
		v.byAlpha2[rec.Alpha2] = rec.Name
	}
	if owner, ok := v.byAlpha3[rec.Alpha3]; ok {
		v.report(index, rec, "alpha3", rec.Alpha3, fmt.Sprintf("alpha3 %s already declared by %s", rec.Alpha3, owner))
	} else {
		v.byAlpha3[rec.Alpha3] = rec.Name
	}
	numeric := rec.Numeric.value()
	if owner, ok := v.byNumeric[numeric]; ok {
		v.report(index, rec, "numeric", strconv.Itoa(numeric), fmt.Sprintf("numeric code %03d already declared by %s", numeric, owner))
	} else {
		v.byNumeric[numeric] = rec.Name
	}
}

func (v *validator) claimName(index int, rec *record, name string) {
	if owner, ok := v.byName[name]; ok {
		v.report(index, rec, "name", name, fmt.Sprintf("name %q already declared by %s", name, owner))
		return
	}
	v.byName[name] = rec.Name
}

func isUpperAlpha(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

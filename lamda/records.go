package lamda

import (
	"fmt"
	"strconv"
	"strings"
)

// valueKind is the scalar type expected at a record field position,
// used to phrase field-level diagnostics.
type valueKind int

const (
	integerValue valueKind = iota
	floatValue
)

func (k valueKind) String() string {
	if k == integerValue {
		return "integer"
	}
	return "floating point number"
}

// Field identities, one closed set per record kind. Their String forms
// appear verbatim in diagnostics.

type levelField int

const (
	levelFieldIndex levelField = iota
	levelFieldEnergy
	levelFieldWeight
)

var levelFieldNames = map[levelField]string{
	levelFieldIndex:  "level",
	levelFieldEnergy: "energy [cm-1]",
	levelFieldWeight: "statistical weight",
}

func (f levelField) String() string { return levelFieldNames[f] }

type transitionField int

const (
	transitionFieldIndex transitionField = iota
	transitionFieldUpper
	transitionFieldLower
	transitionFieldEinsteinA
)

var transitionFieldNames = map[transitionField]string{
	transitionFieldIndex:     "transition",
	transitionFieldUpper:     "upper level",
	transitionFieldLower:     "lower level",
	transitionFieldEinsteinA: "spontaneous decay rate [s-1]",
}

func (f transitionField) String() string { return transitionFieldNames[f] }

type rateField int

const (
	rateFieldIndex rateField = iota
	rateFieldUpper
	rateFieldLower
	rateFieldCoefficients
)

var rateFieldNames = map[rateField]string{
	rateFieldIndex:        "transition",
	rateFieldUpper:        "upper level",
	rateFieldLower:        "lower level",
	rateFieldCoefficients: "rate coefficients [cm3 s-1]",
}

func (f rateField) String() string { return rateFieldNames[f] }

// fieldError is a record-level failure before line context is attached.
// value is the offending token, kept verbatim so the orchestrator can
// locate it in the original line; it is empty when the field is missing
// entirely.
type fieldError struct {
	field    fmt.Stringer
	value    string
	expected valueKind
	missing  bool
}

// attach wraps a narrow field error with the line it occurred on,
// producing the public ParseError.
func (e *fieldError) attach(l line) *ParseError {
	if e.missing {
		return &ParseError{
			Kind:       MissingField,
			LineNumber: l.number,
			Line:       l.text,
			Note:       fmt.Sprintf("Missing field `%s` with value of %s type", e.field, e.expected),
		}
	}
	return &ParseError{
		Kind:       UnknownItem,
		LineNumber: l.number,
		Line:       l.text,
		Column:     literalColumn(l.text, e.value),
		ValueWidth: len(e.value),
		Note: fmt.Sprintf("Value `%s` from field `%s` has wrong type (should be %s)",
			e.value, e.field, e.expected),
	}
}

// tokenReader walks the whitespace-delimited tokens of one record line,
// mapping the ordinal prefix onto typed fields.
type tokenReader struct {
	tokens []string
	pos    int
}

func newTokenReader(text string) *tokenReader {
	return &tokenReader{tokens: strings.Fields(text)}
}

func (r *tokenReader) next() (string, bool) {
	if r.pos >= len(r.tokens) {
		return "", false
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, true
}

func (r *tokenReader) nextInt(field fmt.Stringer) (int, *fieldError) {
	tok, ok := r.next()
	if !ok {
		return 0, &fieldError{field: field, expected: integerValue, missing: true}
	}
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &fieldError{field: field, value: tok, expected: integerValue}
	}
	return int(n), nil
}

func (r *tokenReader) nextFloat(field fmt.Stringer) (float64, *fieldError) {
	tok, ok := r.next()
	if !ok {
		return 0, &fieldError{field: field, expected: floatValue, missing: true}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &fieldError{field: field, value: tok, expected: floatValue}
	}
	return v, nil
}

func (r *tokenReader) rest() []string {
	return r.tokens[r.pos:]
}

// tail joins the unconsumed tokens back into free text, trimming
// comment markers and quotes from both ends.
func (r *tokenReader) tail() string {
	return strings.TrimFunc(strings.Join(r.rest(), " "), func(c rune) bool {
		return c == ' ' || c == '!' || c == '\'' || c == '\n'
	})
}

func parseEnergyLevel(text string) (EnergyLevel, *fieldError) {
	r := newTokenReader(text)
	index, ferr := r.nextInt(levelFieldIndex)
	if ferr != nil {
		return EnergyLevel{}, ferr
	}
	energy, ferr := r.nextFloat(levelFieldEnergy)
	if ferr != nil {
		return EnergyLevel{}, ferr
	}
	weight, ferr := r.nextFloat(levelFieldWeight)
	if ferr != nil {
		return EnergyLevel{}, ferr
	}
	return EnergyLevel{
		Index:          index,
		Energy:         energy,
		StatWeight:     weight,
		QuantumNumbers: r.tail(),
	}, nil
}

func parseRadiativeTransition(text string) (RadiativeTransition, *fieldError) {
	r := newTokenReader(text)
	index, ferr := r.nextInt(transitionFieldIndex)
	if ferr != nil {
		return RadiativeTransition{}, ferr
	}
	upper, ferr := r.nextInt(transitionFieldUpper)
	if ferr != nil {
		return RadiativeTransition{}, ferr
	}
	lower, ferr := r.nextInt(transitionFieldLower)
	if ferr != nil {
		return RadiativeTransition{}, ferr
	}
	einsteinA, ferr := r.nextFloat(transitionFieldEinsteinA)
	if ferr != nil {
		return RadiativeTransition{}, ferr
	}
	return RadiativeTransition{
		Index:     index,
		Upper:     upper,
		Lower:     lower,
		EinsteinA: einsteinA,
		Extra:     r.tail(),
	}, nil
}

func parseRateRow(text string) (CollisionalRates, *fieldError) {
	r := newTokenReader(text)
	index, ferr := r.nextInt(rateFieldIndex)
	if ferr != nil {
		return CollisionalRates{}, ferr
	}
	upper, ferr := r.nextInt(rateFieldUpper)
	if ferr != nil {
		return CollisionalRates{}, ferr
	}
	lower, ferr := r.nextInt(rateFieldLower)
	if ferr != nil {
		return CollisionalRates{}, ferr
	}
	var rates []float64
	for _, tok := range r.rest() {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return CollisionalRates{}, &fieldError{
				field:    rateFieldCoefficients,
				value:    tok,
				expected: floatValue,
			}
		}
		rates = append(rates, v)
	}
	return CollisionalRates{
		Index: index,
		Upper: upper,
		Lower: lower,
		Rates: rates,
	}, nil
}

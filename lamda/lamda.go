// Package lamda parses atomic and molecular spectroscopic data files in
// the LAMDA format: a line-oriented layout of alternating `!`-prefixed
// comment lines and fixed-shape data lines describing energy levels,
// radiative transitions, and collisional rate tables.
//
// Parse is fail-fast: it either returns a fully populated Document or
// the first structural problem as a *ParseError, which can render a
// compiler-style annotation via Annotate. The parser never performs
// I/O; it operates on an already-materialized string.
package lamda

import (
	"fmt"
	"strings"
)

// Document is a fully parsed LAMDA data file.
type Document struct {
	Name                 string
	Information          string
	Weight               float64
	EnergyLevels         []EnergyLevel
	RadiativeTransitions []RadiativeTransition
	CollisionPartners    []CollisionPartner
}

// EnergyLevel is one row of the level table. Index is the 1-based level
// number as written in the file; it is not renumbered or checked for
// uniqueness.
type EnergyLevel struct {
	Index          int
	Energy         float64 // cm-1
	StatWeight     float64
	QuantumNumbers string
}

// RadiativeTransition is one row of the radiative transition table.
// Trailing columns such as frequency and upper-state energy are kept
// verbatim in Extra.
type RadiativeTransition struct {
	Index     int
	Upper     int
	Lower     int
	EinsteinA float64 // s-1
	Extra     string
}

// CollisionPartner holds the rate table for one collision partner
// species.
type CollisionPartner struct {
	ID           PartnerID
	Information  string
	Temperatures []float64 // K
	Rates        []CollisionalRates
}

// CollisionalRates is one row of a collisional rate table. The number
// of rate coefficients is declared by the partner's temperature count
// but not cross-checked against it.
type CollisionalRates struct {
	Index int
	Upper int
	Lower int
	Rates []float64 // cm3 s-1
}

// Parse reads a complete LAMDA document. On failure the returned error
// is always a *ParseError describing the first problem encountered; no
// partial document is ever returned.
func Parse(input string) (*Document, error) {
	doc, perr := parse(newCursor(input))
	if perr != nil {
		return nil, perr
	}
	return doc, nil
}

func parse(cur *cursor) (*Document, *ParseError) {
	if err := expectComment(cur); err != nil {
		return nil, err
	}
	l, err := cur.next()
	if err != nil {
		return nil, err
	}
	name, info := parseNameLine(l.text)

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	l, err = cur.next()
	if err != nil {
		return nil, err
	}
	weight, ok := parseWeight(l.text)
	if !ok {
		return nil, errNotAFloat(l)
	}

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	nlev, err := expectCount(cur)
	if err != nil {
		return nil, err
	}
	if err := expectComment(cur); err != nil {
		return nil, err
	}
	levels, err := collectN(cur, nlev, func(l line) (EnergyLevel, *ParseError) {
		lvl, ferr := parseEnergyLevel(l.text)
		if ferr != nil {
			return EnergyLevel{}, ferr.attach(l)
		}
		return lvl, nil
	})
	if err != nil {
		return nil, err
	}

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	nlin, err := expectCount(cur)
	if err != nil {
		return nil, err
	}
	if err := expectComment(cur); err != nil {
		return nil, err
	}
	transitions, err := collectN(cur, nlin, func(l line) (RadiativeTransition, *ParseError) {
		tr, ferr := parseRadiativeTransition(l.text)
		if ferr != nil {
			return RadiativeTransition{}, ferr.attach(l)
		}
		return tr, nil
	})
	if err != nil {
		return nil, err
	}

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	npart, err := expectCount(cur)
	if err != nil {
		return nil, err
	}

	partners := make([]CollisionPartner, 0, npart)
	for i := 0; i < npart; i++ {
		partner, err := parsePartnerBlock(cur)
		if err != nil {
			return nil, err
		}
		partners = append(partners, *partner)
	}

	information, err := collectTrailingComments(cur, info, npart)
	if err != nil {
		return nil, err
	}

	return &Document{
		Name:                 name,
		Information:          information,
		Weight:               weight,
		EnergyLevels:         levels,
		RadiativeTransitions: transitions,
		CollisionPartners:    partners,
	}, nil
}

func parsePartnerBlock(cur *cursor) (*CollisionPartner, *ParseError) {
	if err := expectComment(cur); err != nil {
		return nil, err
	}
	l, err := cur.next()
	if err != nil {
		return nil, err
	}
	id, info, ok := parsePartnerLine(l.text)
	if !ok {
		return nil, errUnknownPartner(l)
	}

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	ncol, err := expectCount(cur)
	if err != nil {
		return nil, err
	}

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	// The temperature count must be a valid integer but is not
	// cross-checked against the grid or the rate rows.
	if _, err := expectCount(cur); err != nil {
		return nil, err
	}

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	l, err = cur.next()
	if err != nil {
		return nil, err
	}
	temperatures, bad := parseTemperatures(l.text)
	if bad != "" {
		return nil, &ParseError{
			Kind:       UnknownItem,
			LineNumber: l.number,
			Line:       l.text,
			Column:     literalColumn(l.text, bad),
			ValueWidth: len(bad),
			Note:       fmt.Sprintf("Value `%s` has wrong type (should be floating point number)", bad),
		}
	}

	if err := expectComment(cur); err != nil {
		return nil, err
	}
	rates, err := collectN(cur, ncol, func(l line) (CollisionalRates, *ParseError) {
		row, ferr := parseRateRow(l.text)
		if ferr != nil {
			return CollisionalRates{}, ferr.attach(l)
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}

	return &CollisionPartner{
		ID:           id,
		Information:  info,
		Temperatures: temperatures,
		Rates:        rates,
	}, nil
}

// collectTrailingComments drains the cursor after the last partner
// block. Every remaining non-blank line must pass the comment gate; the
// gathered text is appended to the name-line information, "."-joined.
func collectTrailingComments(cur *cursor, info string, npart int) (string, *ParseError) {
	var b strings.Builder
	b.WriteString(info)
	b.WriteString(". ")
	for cur.more() {
		l, err := cur.next()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(l.text) == "" {
			continue
		}
		text, ok := parseComment(l.text)
		if !ok {
			return "", &ParseError{
				Kind:       WrongCommentFormat,
				LineNumber: l.number,
				Line:       l.text,
				Note: fmt.Sprintf(
					"%d collision partners were read, only comments with additional information should be left",
					npart),
			}
		}
		b.WriteString(text)
		b.WriteString(" ")
	}
	return b.String(), nil
}

// expectComment consumes the next line and checks it against the
// comment gate. The comment text itself is informational only and
// discarded at every grammar position except the trailing phase.
func expectComment(cur *cursor) *ParseError {
	l, err := cur.next()
	if err != nil {
		return err
	}
	if _, ok := parseComment(l.text); !ok {
		return errWrongComment(l)
	}
	return nil
}

// expectCount consumes the next line and parses it as a non-negative
// integer section count.
func expectCount(cur *cursor) (int, *ParseError) {
	l, err := cur.next()
	if err != nil {
		return 0, err
	}
	n, ok := parseCount(l.text)
	if !ok {
		return 0, errNotAnInteger(l)
	}
	return n, nil
}

// literalColumn finds the caret column for a bad token: the first
// occurrence of the literal within the original line.
func literalColumn(text, literal string) int {
	if col := strings.Index(text, literal); col >= 0 {
		return col
	}
	return 0
}

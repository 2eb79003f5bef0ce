package lamda

import (
	"strconv"
	"strings"
)

// PartnerID identifies a collision partner species. The codes are the
// ones used by LAMDA data files; anything outside 1-7 is rejected.
type PartnerID int

const (
	PartnerH2 PartnerID = iota + 1
	PartnerParaH2
	PartnerOrthoH2
	PartnerElectrons
	PartnerH
	PartnerHe
	PartnerHPlus
)

var partnerNames = map[PartnerID]string{
	PartnerH2:        "H2",
	PartnerParaH2:    "para-H2",
	PartnerOrthoH2:   "ortho-H2",
	PartnerElectrons: "electrons",
	PartnerH:         "H",
	PartnerHe:        "He",
	PartnerHPlus:     "H+",
}

func (p PartnerID) String() string {
	if name, ok := partnerNames[p]; ok {
		return name
	}
	return "Unknown"
}

// parseComment applies the comment gate: the trimmed line must begin
// with `!`. The returned text has marker and whitespace characters
// stripped from both ends.
func parseComment(text string) (string, bool) {
	if !strings.HasPrefix(strings.TrimSpace(text), "!") {
		return "", false
	}
	return trimCommentChars(text), true
}

func trimCommentChars(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == ' ' || r == '!' || r == '\n'
	})
}

// parseNameLine splits the species line at the first whitespace
// boundary into the name and its trailing comment. It never fails:
// without a separator the whole trimmed line is the name.
func parseNameLine(text string) (name, information string) {
	trimmed := strings.TrimSpace(text)
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		return trimmed[:i], trimCommentChars(trimmed[i+1:])
	}
	return trimmed, ""
}

// parseCount reads a non-negative section count.
func parseCount(text string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseWeight reads the molecular or atomic weight.
func parseWeight(text string) (float64, bool) {
	w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return w, true
}

// parsePartnerLine splits the partner line at the first whitespace
// boundary into a partner code and trailing free-text information. The
// code must be an integer in 1-7.
func parsePartnerLine(text string) (PartnerID, string, bool) {
	trimmed := strings.TrimSpace(text)
	code, rest := trimmed, ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		code, rest = trimmed[:i], trimmed[i+1:]
	}
	n, err := strconv.ParseUint(code, 10, 32)
	if err != nil {
		return 0, "", false
	}
	id := PartnerID(n)
	if id < PartnerH2 || id > PartnerHPlus {
		return 0, "", false
	}
	return id, trimCommentChars(rest), true
}

// parseTemperatures reads a whitespace-separated float list. On the
// first token that is not a float it returns that token verbatim so the
// caller can locate it in the line.
func parseTemperatures(text string) (temps []float64, bad string) {
	for _, tok := range strings.Fields(text) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, tok
		}
		temps = append(temps, v)
	}
	return temps, ""
}

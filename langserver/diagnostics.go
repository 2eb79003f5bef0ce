package langserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lamda-tools/lamda/lamda"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// diagnosticsFor converts a Parse result into the diagnostic set to
// publish. A nil error clears diagnostics; a *ParseError becomes a
// single diagnostic whose range matches the caret of the rendered
// annotation.
func diagnosticsFor(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}
	var perr *lamda.ParseError
	if !errors.As(err, &perr) {
		return []protocol.Diagnostic{}
	}

	line := perr.LineNumber - 1
	if line < 0 {
		line = 0
	}
	column, width := perr.Span()

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      protocol.UInteger(line),
				Character: protocol.UInteger(column),
			},
			End: protocol.Position{
				Line:      protocol.UInteger(line),
				Character: protocol.UInteger(column + width),
			},
		},
		Severity: &severity,
		Source:   &source,
		Message:  diagnosticMessage(perr),
	}}
}

func diagnosticMessage(perr *lamda.ParseError) string {
	if perr.Kind == lamda.NotEnoughInput {
		return fmt.Sprintf("Line %d is empty, but there should be more input", perr.LineNumber)
	}
	return perr.Note
}

// summarize renders the hover text for a valid document.
func summarize(doc *lamda.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (weight %g)\n", doc.Name, doc.Weight)
	fmt.Fprintf(&b, "%d energy levels, %d radiative transitions\n",
		len(doc.EnergyLevels), len(doc.RadiativeTransitions))
	fmt.Fprintf(&b, "%d collision partners:", len(doc.CollisionPartners))
	for _, partner := range doc.CollisionPartners {
		fmt.Fprintf(&b, "\n  %s: %d temperatures, %d rate rows",
			partner.ID, len(partner.Temperatures), len(partner.Rates))
	}
	return b.String()
}

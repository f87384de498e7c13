package diag

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/grove/groovy/source"
)

// ToLSP converts diagnostics into a textDocument/publishDiagnostics
// payload. LSP positions are zero-based.
func ToLSP(uri string, diags []Diagnostic) *protocol.PublishDiagnosticsParams {
	params := &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: make([]protocol.Diagnostic, 0, len(diags)),
	}

	src := Source
	for _, d := range diags {
		severity := protocol.DiagnosticSeverityError
		params.Diagnostics = append(params.Diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: lspPosition(d.Span.Start),
				End:   lspPosition(d.Span.End),
			},
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   &src,
			Message:  d.Message,
		})
	}
	return params
}

func lspPosition(p source.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(max(p.Line-1, 0)),
		Character: protocol.UInteger(max(p.Column-1, 0)),
	}
}

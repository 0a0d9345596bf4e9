// =============================================================================
// pain.001 / pain.002 Batch Generator - XML Pretty Printer
// =============================================================================
//
// Generated documents are single-line text. PrettyPrint optionally re-indents
// them for reading:
//
//   <Document xmlns="...">
//     <CstmrCdtTrfInitn>
//       <GrpHdr>
//         <MsgId>M202503241244081</MsgId>
//
// The generator only asks for indentation when pretty_print is enabled in
// the configuration, which it is not by default.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultIndent is the indentation used by PrettyPrint.
const DefaultIndent = "  "

// PrettyPrint returns doc re-indented when needed is true and doc unchanged
// otherwise. A document that fails to tokenize is returned unchanged and a
// warning is logged.
func PrettyPrint(doc string, needed bool) string {
	if !needed {
		return doc
	}

	out, err := Indent(doc, DefaultIndent)
	if err != nil {
		slog.Warn("Failed to pretty print XML", "error", err)
		return doc
	}
	return out
}

// Indent re-encodes doc token by token with the given indent. Namespace
// declarations and prefixes are copied as written.
func Indent(doc, indent string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(doc))

	var buffer bytes.Buffer
	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", indent)

	for {
		token, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read XML token: %w", err)
		}

		// Whitespace between elements is replaced by the encoder's own.
		if text, ok := token.(xml.CharData); ok && len(bytes.TrimSpace(text)) == 0 {
			continue
		}

		if err := encoder.EncodeToken(xml.CopyToken(token)); err != nil {
			return "", fmt.Errorf("failed to write XML token: %w", err)
		}
	}

	if err := encoder.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush XML: %w", err)
	}

	return buffer.String(), nil
}

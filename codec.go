package prettyreq

import "encoding/json"

// ContentType is the MIME type set on requests carrying a JSON body.
const ContentType = "application/json"

// Indentation matches the common two-space rendering produced by most
// pretty-printers; it is fixed rather than configurable.
const (
	prettyPrefix = ""
	prettyIndent = "  "
)

// Marshal encodes v as indented, multi-line JSON.
//
// The attach operations swallow the error this returns; callers wanting
// strict behavior can use Marshal directly and set the body themselves.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, prettyPrefix, prettyIndent)
}

// Package prettyreq attaches human-readable JSON bodies to outgoing HTTP requests.
//
// Builder-style HTTP clients serialize JSON bodies in the default compact,
// single-line form. Most of the time that is exactly what you want. Some
// endpoints are different: key-value stores and config services persist the
// body verbatim, and a compact blob is what operators end up reading later.
// For those cases this package sets the body to the indented, multi-line
// rendering of the payload while keeping everything else about the request
// identical to the client's own JSON path.
//
// # Usage
//
//	client := resty.New()
//
//	payload := map[string][]int{"foo": {1, 2, 3}}
//	resp, err := prettyreq.JSON(client.R(), payload).
//		Post("https://example.com/kv/config")
//
// The request carries Content-Type: application/json and the body
//
//	{
//	  "foo": [
//	    1,
//	    2,
//	    3
//	  ]
//	}
//
// # Fallback
//
// JSON never fails. If the payload cannot be pretty-serialized, the builder
// is left on the client's default compact path and the request proceeds as if
// the client's own JSON method had been called. Callers that want the error
// instead can run the two steps themselves:
//
//	body, err := prettyreq.Marshal(payload)
//	if err != nil {
//	    return err
//	}
//	r.SetHeader("Content-Type", prettyreq.ContentType).SetBody(body)
//
// # Variants
//
// The same operation exists for bare [net/http] requests in the nethttp
// subpackage. Both variants share Marshal and ContentType and differ only in
// the builder type they accept.
//
// # Observability
//
// Attach operations emit capitan signals (SignalAttachStart,
// SignalAttachComplete) carrying the payload type, body size, and duration.
// A serialization failure appears on the complete signal as an error field;
// it never changes the return value.
package prettyreq

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// JSON sets the body of r to the pretty-printed JSON encoding of v and the
// Content-Type header to application/json.
//
// The payload is first attached through resty's default body path, so if
// pretty serialization fails the request still goes out with the client's
// compact encoding. No error is returned in either case.
func JSON(r *resty.Request, v any) *resty.Request {
	typeName := fmt.Sprintf("%T", v)
	emitAttachStart(r.Context(), ContentType, typeName)
	start := time.Now()

	// Header first so both outcomes match the compact path exactly.
	r.SetHeader("Content-Type", ContentType)
	r.SetBody(v)

	body, err := Marshal(v)
	if err == nil {
		r.SetBody(body)
	}

	emitAttachComplete(r.Context(), ContentType, typeName, len(body), time.Since(start), err)
	return r
}

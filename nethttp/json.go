// Package nethttp attaches pretty-printed JSON bodies to standard library requests.
//
// It provides the same operation as the root package for callers building
// [net/http] requests directly instead of going through a builder client.
package nethttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/zoobzio/prettyreq"
)

// JSON sets the body of req to the pretty-printed JSON encoding of v and the
// Content-Type header to application/json. ContentLength and GetBody are set
// so the request replays correctly across redirects and retries.
//
// A bare request has no deferred encoding to fall back on, so on pretty
// serialization failure the payload is serialized compactly in place. If that
// fails as well the request is returned unmodified. No error is returned in
// any case.
func JSON(req *http.Request, v any) *http.Request {
	typeName := fmt.Sprintf("%T", v)
	emitStart(req.Context(), typeName)
	start := time.Now()

	body, err := prettyreq.Marshal(v)
	if err != nil {
		var compactErr error
		body, compactErr = json.Marshal(v)
		if compactErr != nil {
			emitComplete(req.Context(), typeName, 0, time.Since(start), err)
			return req
		}
	}

	req.Body = io.NopCloser(bytes.NewReader(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	req.ContentLength = int64(len(body))
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Content-Type", prettyreq.ContentType)

	emitComplete(req.Context(), typeName, len(body), time.Since(start), err)
	return req
}

func emitStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, prettyreq.SignalAttachStart,
		prettyreq.KeyContentType.Field(prettyreq.ContentType),
		prettyreq.KeyTypeName.Field(typeName),
	)
}

func emitComplete(ctx context.Context, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		prettyreq.KeyContentType.Field(prettyreq.ContentType),
		prettyreq.KeyTypeName.Field(typeName),
		prettyreq.KeySize.Field(size),
		prettyreq.KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, prettyreq.KeyError.Field(err))
		capitan.Error(ctx, prettyreq.SignalAttachComplete, fields...)
	} else {
		capitan.Emit(ctx, prettyreq.SignalAttachComplete, fields...)
	}
}

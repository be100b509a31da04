package prettyreq

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for attach events.
var (
	SignalAttachStart    = capitan.NewSignal("prettyreq.attach.start", "Body attachment beginning")
	SignalAttachComplete = capitan.NewSignal("prettyreq.attach.complete", "Body attachment finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitAttachStart emits an event when an attach begins.
func emitAttachStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalAttachStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitAttachComplete emits an event when an attach finishes. A non-nil err
// means the pretty encoding was skipped and the compact path was kept.
func emitAttachComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalAttachComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalAttachComplete, fields...)
	}
}

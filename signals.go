package haxxor

import (
	"context"
	"strconv"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for module and processor events.
var (
	SignalEncryptComplete  = capitan.NewSignal("haxxor.encrypt.complete", "Encrypt operation finished")
	SignalDecryptComplete  = capitan.NewSignal("haxxor.decrypt.complete", "Decrypt operation finished")
	SignalValidateComplete = capitan.NewSignal("haxxor.validate.complete", "Validate operation finished")
	SignalCycleComplete    = capitan.NewSignal("haxxor.cycle.complete", "Cycle across reversible modules finished")
	SignalResolveFallback  = capitan.NewSignal("haxxor.resolve.fallback", "Hash tag matched no module, placeholder returned")
	SignalProcessorCreated = capitan.NewSignal("haxxor.processor.created", "Processor instantiated")
	SignalSealComplete     = capitan.NewSignal("haxxor.seal.complete", "Seal operation finished")
	SignalOpenComplete     = capitan.NewSignal("haxxor.open.complete", "Open operation finished")
)

// Keys for typed event data.
// Hash values are always masked before they are attached to an event.
var (
	KeyAlgorithm      = capitan.NewStringKey("algorithm")
	KeyTag            = capitan.NewStringKey("tag")
	KeyHash           = capitan.NewStringKey("hash")
	KeyValid          = capitan.NewStringKey("valid")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyAttemptCount   = capitan.NewIntKey("attempt_count")
	KeyRecoveredCount = capitan.NewIntKey("recovered_count")
	KeyFieldCount     = capitan.NewIntKey("field_count")
)

// emitEncrypt emits an event when a module finishes encrypting.
func emitEncrypt(algo Algorithm, hash string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyAlgorithm.Field(algo.String()),
		KeyHash.Field(MaskHash(hash)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalEncryptComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalEncryptComplete, fields...)
	}
}

// emitDecrypt emits an event when a module finishes decrypting.
func emitDecrypt(algo Algorithm, hash string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyAlgorithm.Field(algo.String()),
		KeyHash.Field(MaskHash(hash)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalDecryptComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalDecryptComplete, fields...)
	}
}

// emitValidate emits an event when a module finishes validating.
func emitValidate(algo Algorithm, valid bool, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyAlgorithm.Field(algo.String()),
		KeyValid.Field(strconv.FormatBool(valid)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalValidateComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalValidateComplete, fields...)
	}
}

// emitCycle emits an event when a cycle finishes.
func emitCycle(hash string, attempts, recovered int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyHash.Field(MaskHash(hash)),
		KeyAttemptCount.Field(attempts),
		KeyRecoveredCount.Field(recovered),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalCycleComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalCycleComplete, fields...)
	}
}

// emitResolveFallback emits an event when ByHash falls back to the placeholder.
func emitResolveFallback(tag string) {
	capitan.Emit(context.Background(), SignalResolveFallback,
		KeyTag.Field(tag),
	)
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSealComplete emits an event when a seal finishes.
func emitSealComplete(ctx context.Context, typeName string, fieldCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSealComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSealComplete, fields...)
	}
}

// emitOpenComplete emits an event when an open finishes.
func emitOpenComplete(ctx context.Context, typeName string, fieldCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalOpenComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalOpenComplete, fields...)
	}
}

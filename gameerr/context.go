package gameerr

import "context"

// contextKey is a private type to avoid collisions with other packages'
// context keys.
type contextKey string

const metadataKey contextKey = "gameerr-metadata"

// MetadataScope holds metadata accumulated on a context so every error
// created further down the call stack picks it up automatically — useful
// for a resolver to stamp "card_id"/"seat"/"phase" once at the top of a
// UseCard invocation instead of threading them through every error site.
type MetadataScope struct {
	fields map[string]any
}

// MetaField is a single metadata key/value pair.
type MetaField struct {
	Key   string
	Value any
}

// Meta creates a MetaField for use with WithMetadata.
func Meta(key string, value any) MetaField {
	return MetaField{Key: key, Value: value}
}

// WithMetadata returns a context carrying fields, inherited from and
// overriding any metadata already present on ctx.
func WithMetadata(ctx context.Context, fields ...MetaField) context.Context {
	scope := &MetadataScope{fields: make(map[string]any)}
	if parent, ok := ctx.Value(metadataKey).(*MetadataScope); ok && parent != nil {
		for k, v := range parent.fields {
			scope.fields[k] = v
		}
	}
	for _, f := range fields {
		scope.fields[f.Key] = f.Value
	}
	return context.WithValue(ctx, metadataKey, scope)
}

func getMetadata(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	if scope, ok := ctx.Value(metadataKey).(*MetadataScope); ok && scope != nil {
		return scope.fields
	}
	return nil
}

func applyContextMetadata(ctx context.Context, err *Error) *Error {
	for k, v := range getMetadata(ctx) {
		if err.Meta == nil {
			err.Meta = make(map[string]any)
		}
		err.Meta[k] = v
	}
	return err
}

// WrapCtx wraps err with message, stamping any metadata carried on ctx.
func WrapCtx(ctx context.Context, err error, message string) *Error {
	return applyContextMetadata(ctx, Wrap(err, message))
}

// NewCtx creates a new Error, stamping any metadata carried on ctx.
func NewCtx(ctx context.Context, code Code, message string) *Error {
	return applyContextMetadata(ctx, New(code, message))
}

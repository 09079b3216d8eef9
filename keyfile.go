// Package keyfile resolves user-supplied key files into 32-byte keys and
// creates fresh ones. A key file is one factor of a composite master key;
// combining it with other factors (e.g. a password-derived key) is the
// caller's concern.
//
// Load accepts several legacy on-disk encodings transparently: an XML key
// document carrying a base64 key, a raw 32-byte binary file, and a
// 64-character hex text file. Input matching none of these is hashed whole
// with SHA-256, so any non-empty file resolves to a usable key. An optional
// guard refuses files that carry a known database container signature, to
// catch the common mistake of selecting the database itself as its key file.
//
// Resolved keys are sealed in a memguard enclave and every transient buffer
// that held key material is wiped before return, on success and failure
// alike.
package keyfile

import (
	"context"
	"fmt"

	"github.com/awnumar/memguard"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Key is a resolved key sealed in a secure-memory enclave, together with the
// location it was loaded from. The location is retained for display and audit
// only; it carries no security meaning.
type Key struct {
	enclave *memguard.Enclave
	source  string
}

// SourcePath returns the location the key was loaded from, or "" when the key
// was resolved from raw bytes without one.
func (k *Key) SourcePath() string {
	return k.source
}

// Use opens the enclave and calls fn with the key bytes. The slice is valid
// only for the duration of fn and is destroyed afterwards; fn must not retain
// it. Use may be called any number of times.
func (k *Key) Use(fn func(key []byte) error) error {
	buf, err := k.enclave.Open()
	if err != nil {
		return fmt.Errorf("keyfile: failed to open key enclave: %w", err)
	}
	defer buf.Destroy()
	return fn(buf.Bytes())
}

// Bytes returns a copy of the key bytes. The caller owns the copy and should
// wipe it when done (memguard.WipeBytes).
func (k *Key) Bytes() ([]byte, error) {
	var out []byte
	err := k.Use(func(key []byte) error {
		out = make([]byte, len(key))
		copy(out, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadOption configures Load and LoadFile.
type LoadOption func(*loadOptions)

type loadOptions struct {
	databaseCheck bool
	sourcePath    string
}

// WithDatabaseCheck makes Load fail with ErrDatabaseFile when the input's
// leading bytes match a known database container signature. Without it the
// check is skipped and such input resolves through the hash fallback.
func WithDatabaseCheck() LoadOption {
	return func(o *loadOptions) {
		o.databaseCheck = true
	}
}

// WithSourcePath attaches a display-only source location to the resolved key.
// LoadFile sets this automatically.
func WithSourcePath(path string) LoadOption {
	return func(o *loadOptions) {
		o.sourcePath = path
	}
}

// Load resolves raw key-file bytes into a Key.
//
// Returns ErrEmptyKeyFile when raw is empty and ErrDatabaseFile when
// WithDatabaseCheck is set and the signature matches; every other input
// resolves successfully. raw is consumed by this single call and is not
// retained.
func Load(ctx context.Context, raw []byte, opts ...LoadOption) (*Key, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := tracer.Start(ctx, "keyfile.Load")
	defer span.End()

	if len(raw) == 0 {
		spanError(span, ErrEmptyKeyFile)
		return nil, ErrEmptyKeyFile
	}

	if o.databaseCheck && isDatabaseFile(raw) {
		spanError(span, ErrDatabaseFile)
		return nil, ErrDatabaseFile
	}

	key, format := resolveKey(raw)
	span.SetAttributes(attribute.String("keyfile.format", string(format)))
	resolveCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("format", string(format))))

	// NewEnclave seals key and wipes the source slice.
	return &Key{
		enclave: memguard.NewEnclave(key),
		source:  o.sourcePath,
	}, nil
}

// LoadFile reads a key file from a local path or an http(s) locator and
// resolves it. Read failures are returned verbatim, wrapped for context.
func LoadFile(ctx context.Context, location string, opts ...LoadOption) (*Key, error) {
	raw, err := readSource(ctx, location)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(raw)

	return Load(ctx, raw, append(opts, WithSourcePath(location))...)
}

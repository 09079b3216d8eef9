package keyfile

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"github.com/facebookgo/atomicfile"
)

// CreateOption configures Create and CreateFile.
type CreateOption func(*createOptions)

type createOptions struct {
	random io.Reader
}

// WithRandom overrides the secure random source used for key generation.
// Intended for tests that need deterministic output; production callers
// should leave the default (crypto/rand).
func WithRandom(r io.Reader) CreateOption {
	return func(o *createOptions) {
		o.random = r
	}
}

// Create generates a fresh 32-byte random key and returns the canonical XML
// key document ready to persist.
//
// When entropy is non-empty it is mixed in: the final key is
// SHA-256(entropy || random). The entropy itself is never written to the
// document. All intermediate key buffers are wiped before returning.
func Create(entropy []byte, opts ...CreateOption) ([]byte, error) {
	o := createOptions{random: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}

	random := make([]byte, keySize)
	if _, err := io.ReadFull(o.random, random); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	defer memguard.WipeBytes(random)

	key := random
	if len(entropy) > 0 {
		h := sha256.New()
		h.Write(entropy)
		h.Write(random)
		key = h.Sum(nil)
		defer memguard.WipeBytes(key)
	}

	return serializeKey(key), nil
}

// CreateFile generates a fresh key file at path, overwriting any existing
// file. The document is written atomically: it lands complete or not at all.
func CreateFile(ctx context.Context, path string, entropy []byte, opts ...CreateOption) error {
	_, span := tracer.Start(ctx, "keyfile.CreateFile")
	defer span.End()

	doc, err := Create(entropy, opts...)
	if err != nil {
		spanError(span, err)
		return err
	}

	f, err := atomicfile.New(path, 0o600)
	if err != nil {
		err = fmt.Errorf("keyfile: failed to create key file: %w", err)
		spanError(span, err)
		return err
	}
	if _, err := f.Write(doc); err != nil {
		_ = f.Abort()
		err = fmt.Errorf("keyfile: failed to write key file: %w", err)
		spanError(span, err)
		return err
	}
	if err := f.Close(); err != nil {
		err = fmt.Errorf("keyfile: failed to write key file: %w", err)
		spanError(span, err)
		return err
	}
	return nil
}

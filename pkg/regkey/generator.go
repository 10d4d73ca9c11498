package regkey

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
)

// Generator runs the key pipeline. The zero value is not usable; call
// NewGenerator.
type Generator struct {
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for pipeline debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a generator. Without options it logs nothing.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build returns the sealed, unobfuscated blob for req. It fails only when
// the name cannot produce a trailer.
func (g *Generator) Build(req LicenseRequest) (KeyBlob, error) {
	blob := NewKeyBlob(req)
	if err := blob.WriteTrailer(); err != nil {
		return nil, err
	}
	blob.Seal()

	g.logger.Debug("key blob sealed",
		slog.Int("key_len", len(blob)),
		slog.String("features", hex.EncodeToString(blob[OffsetFeatures:OffsetChecksum])),
		slog.String("trailer", hex.EncodeToString(blob.Trailer())),
		slog.String("checksum", fmt.Sprintf("0x%08x", blob.Checksum())))

	return blob, nil
}

// Generate validates name and features and returns the encoded key.
func (g *Generator) Generate(name string, features uint32) (EncodedKey, error) {
	req, err := NewLicenseRequest(name, features)
	if err != nil {
		return "", err
	}
	return g.GenerateRequest(req)
}

// GenerateRequest returns the encoded key for an already validated request.
func (g *Generator) GenerateRequest(req LicenseRequest) (EncodedKey, error) {
	blob, err := g.Build(req)
	if err != nil {
		g.logger.Debug("trailer derivation failed", slog.String("error", err.Error()))
		return "", err
	}

	g.logger.Debug("raw key blob", slog.String("blob", hex.EncodeToString(blob)))

	Obfuscate(blob)
	key := EncodeHex(blob)

	g.logger.Debug("key encoded", slog.Int("length", len(key)))
	return key, nil
}

// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned for stored hashes that are not argon2id PHC strings.
var ErrMalformedHash = errors.New("malformed password hash")

// HashParams are the argon2id cost settings. Memory is in KiB.
type HashParams struct {
	Time    uint32 `json:"time" yaml:"time"`
	Memory  uint32 `json:"memory" yaml:"memory"`
	Threads uint8  `json:"threads" yaml:"threads"`
	KeyLen  uint32 `json:"key_len" yaml:"key_len"`
	SaltLen uint32 `json:"salt_len" yaml:"salt_len"`
}

// DefaultHashParams is used for any zero field of the configured params.
var DefaultHashParams = HashParams{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

func (p HashParams) withDefaults() HashParams {
	if p.Time == 0 {
		p.Time = DefaultHashParams.Time
	}
	if p.Memory == 0 {
		p.Memory = DefaultHashParams.Memory
	}
	if p.Threads == 0 {
		p.Threads = DefaultHashParams.Threads
	}
	if p.KeyLen == 0 {
		p.KeyLen = DefaultHashParams.KeyLen
	}
	if p.SaltLen == 0 {
		p.SaltLen = DefaultHashParams.SaltLen
	}
	return p
}

type HasherOption func(*PasswordHasher)

// WithParams sets the cost for new hashes. Existing hashes keep verifying
// with the params encoded in them.
func WithParams(p HashParams) HasherOption {
	return func(h *PasswordHasher) { h.params = p.withDefaults() }
}

type PasswordHasher struct {
	params HashParams
}

func NewPasswordHasher(opts ...HasherOption) *PasswordHasher {
	h := &PasswordHasher{params: DefaultHashParams}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Params returns the cost applied to new hashes.
func (p *PasswordHasher) Params() HashParams {
	return p.params
}

// Hash returns a PHC string: $argon2id$v=19$m=65536,t=1,p=4$salt$key
func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, p.params.Time, p.params.Memory, p.params.Threads, p.params.KeyLen)
	return encodeHash(p.params, salt, key), nil
}

func (p *PasswordHasher) Verify(password, encodedHash string) (bool, error) {
	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}
	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, params.KeyLen)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// NeedsRehash reports whether encodedHash was made with a different cost
// than the hasher currently applies.
func (p *PasswordHasher) NeedsRehash(encodedHash string) bool {
	params, salt, _, err := decodeHash(encodedHash)
	if err != nil {
		return true
	}
	params.SaltLen = uint32(len(salt))
	return params != p.params
}

func encodeHash(p HashParams, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string) (HashParams, []byte, []byte, error) {
	var p HashParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: version: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: params: %v", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}
	p.KeyLen = uint32(len(key))
	p.SaltLen = uint32(len(salt))
	return p, salt, key, nil
}

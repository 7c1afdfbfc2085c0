package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// DefaultSaltLength is the XOR salt length in bytes.
	DefaultSaltLength = 32

	// KeySize is the symmetric key size for both AEAD modes (256 bits).
	KeySize = 32

	// NonceSize is the per-value nonce size for both AEAD modes (96 bits).
	NonceSize = 12

	// TagSize is the authentication tag size for both AEAD modes.
	TagSize = 16
)

// Material is the output of Encode: shared bytes plus one byte sequence per key.
type Material struct {
	Mode Mode

	// Shared is the XOR salt, or the AEAD key.
	Shared []byte

	// Entries maps each original key name to its encoded bytes. For AEAD
	// modes every entry is nonce(12) || ciphertext || tag(16).
	Entries map[string][]byte
}

type encodeOptions struct {
	saltLength int
	random     io.Reader
}

// Option configures Encode.
type Option func(*encodeOptions)

// WithSaltLength sets the XOR salt length. Ignored by AEAD modes.
func WithSaltLength(n int) Option {
	return func(o *encodeOptions) {
		o.saltLength = n
	}
}

// WithRandom replaces crypto/rand.Reader as the source of salts, keys and nonces.
func WithRandom(r io.Reader) Option {
	return func(o *encodeOptions) {
		o.random = r
	}
}

// Encode produces the cipher material for every key in the active set.
//
// AEAD modes draw one key for the whole generation and a fresh random nonce
// for every value. Nonces are never derived or counted.
func Encode(keys map[string]string, mode Mode, opts ...Option) (*Material, error) {
	o := &encodeOptions{
		saltLength: DefaultSaltLength,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(o)
	}

	switch mode {
	case ModeXOR:
		return encodeXOR(keys, o)
	case ModeAESGCM, ModeChaCha20:
		return encodeAEAD(keys, mode, o)
	default:
		return nil, &kerrors.InvalidCipherError{Value: string(mode)}
	}
}

func encodeXOR(keys map[string]string, o *encodeOptions) (*Material, error) {
	if o.saltLength < 1 {
		return nil, &kerrors.EncryptionFailureError{
			Reason: fmt.Sprintf("salt length must be at least 1 byte, got %d", o.saltLength),
		}
	}

	salt, err := randomBytes(o.random, o.saltLength)
	if err != nil {
		return nil, &kerrors.EncryptionFailureError{Reason: "generating salt: " + err.Error()}
	}

	entries := make(map[string][]byte, len(keys))
	for name, value := range keys {
		entries[name] = XOR([]byte(value), salt)
	}

	return &Material{Mode: ModeXOR, Shared: salt, Entries: entries}, nil
}

func encodeAEAD(keys map[string]string, mode Mode, o *encodeOptions) (*Material, error) {
	key, err := randomBytes(o.random, KeySize)
	if err != nil {
		return nil, &kerrors.EncryptionFailureError{Reason: "generating key: " + err.Error()}
	}

	aead, err := newAEAD(mode, key)
	if err != nil {
		return nil, &kerrors.EncryptionFailureError{Reason: err.Error()}
	}

	entries := make(map[string][]byte, len(keys))
	for name, value := range keys {
		nonce, err := randomBytes(o.random, aead.NonceSize())
		if err != nil {
			return nil, &kerrors.EncryptionFailureError{Reason: "generating nonce: " + err.Error()}
		}
		entries[name] = aead.Seal(nonce, nonce, []byte(value), nil)
	}

	return &Material{Mode: mode, Shared: key, Entries: entries}, nil
}

// XOR applies the repeating salt to data. It is its own inverse.
func XOR(data, salt []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ salt[i%len(salt)]
	}
	return out
}

// Open reverses an AEAD entry produced by Encode.
func Open(mode Mode, key, combined []byte) ([]byte, error) {
	aead, err := newAEAD(mode, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDecryptFailed, err)
	}

	if len(combined) < aead.NonceSize()+aead.Overhead() {
		return nil, fmt.Errorf("%w: combined value is %d bytes, need at least %d",
			kerrors.ErrDecryptFailed, len(combined), aead.NonceSize()+aead.Overhead())
	}

	nonce, sealed := combined[:aead.NonceSize()], combined[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDecryptFailed, err)
	}

	return plaintext, nil
}

// Decode recovers the plaintext of one entry of m.
func (m *Material) Decode(name string) (string, error) {
	entry, ok := m.Entries[name]
	if !ok {
		return "", fmt.Errorf("no entry named %q", name)
	}
	if m.Mode == ModeXOR {
		return string(XOR(entry, m.Shared)), nil
	}
	plaintext, err := Open(m.Mode, m.Shared, entry)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func newAEAD(mode Mode, key []byte) (cipher.AEAD, error) {
	switch mode {
	case ModeAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating AES cipher: %w", err)
		}
		return cipher.NewGCM(block)
	case ModeChaCha20:
		return chacha20poly1305.New(key)
	default:
		return nil, fmt.Errorf("mode %q is not an AEAD mode", mode)
	}
}

func randomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"campusmart/internal/domain"
)

const (
	// The current supported version of the sealed slot format.
	sealedFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed slot has been modified, corrupted or moved to another slot name.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted slot")
	// ErrPassphraseRequired is returned when a sealed backend is built without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required for sealed slots")
)

// sealedBlob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealedBlob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// SealedBackend encrypts every slot with a key derived from a passphrase
// before handing it to the wrapped backend.
type SealedBackend struct {
	inner      domain.SlotBackend
	passphrase string
	n, r, p    int
}

// SealedOption tunes a SealedBackend.
type SealedOption func(*SealedBackend)

// WithScryptParams overrides the scrypt cost parameters used for new writes.
// Reads always use the parameters recorded in the slot.
func WithScryptParams(n, r, p int) SealedOption {
	return func(b *SealedBackend) {
		b.n, b.r, b.p = n, r, p
	}
}

// NewSealedBackend wraps inner so that slots are sealed with passphrase.
func NewSealedBackend(inner domain.SlotBackend, passphrase string, opts ...SealedOption) (*SealedBackend, error) {
	if inner == nil {
		return nil, fmt.Errorf("sealed backend: inner backend is required")
	}
	if passphrase == "" {
		return nil, ErrPassphraseRequired
	}
	b := &SealedBackend{inner: inner, passphrase: passphrase}
	b.n, b.r, b.p = scryptParamsDefault()
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// ReadSlot opens the sealed slot.
func (b *SealedBackend) ReadSlot(name string) ([]byte, bool, error) {
	raw, ok, err := b.inner.ReadSlot(name)
	if err != nil || !ok {
		return nil, ok, err
	}
	pt, err := open(b.passphrase, name, raw)
	if err != nil {
		return nil, false, fmt.Errorf("open slot %q: %w", name, err)
	}
	return pt, true, nil
}

// WriteSlot seals data and writes it through.
func (b *SealedBackend) WriteSlot(name string, data []byte) error {
	blob, err := seal(b.passphrase, name, data, b.n, b.r, b.p)
	if err != nil {
		return fmt.Errorf("seal slot %q: %w", name, err)
	}
	return b.inner.WriteSlot(name, blob)
}

// Close closes the wrapped backend.
func (b *SealedBackend) Close() error { return b.inner.Close() }

// seal derives a key from passphrase and seals raw into a JSON blob bound to slot.
func seal(passphrase, slot string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, additionalData(salt[:], slot))

	return json.Marshal(sealedBlob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// open decrypts a blob produced by seal for the same slot.
func open(passphrase, slot string, b []byte) ([]byte, error) {
	var bl sealedBlob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed slot version %d", bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, additionalData(bl.Salt, slot))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func additionalData(salt []byte, slot string) []byte {
	ad := make([]byte, 0, len(salt)+len(slot))
	ad = append(ad, salt...)
	return append(ad, slot...)
}

// wipe zeroes derived key material once it is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// Compile-time assertion that SealedBackend implements domain.SlotBackend.
var _ domain.SlotBackend = (*SealedBackend)(nil)

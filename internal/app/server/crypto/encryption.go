package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

// KeySize - длина ключа AES-256 в байтах.
const KeySize = 32

var (
	ErrIntegrity  = errors.New("ciphertext integrity check failed")
	ErrDecode     = errors.New("malformed ciphertext envelope")
	ErrInvalidKey = errors.New("encryption key must be 32 bytes")
)

// SecretCipher шифрует значения секретов перед сохранением (AES-256-GCM).
// Конверт: base64(nonce || ciphertext || tag).
// Ключ хранится в memguard enclave и расшифровывается только на время операции.
type SecretCipher struct {
	key *memguard.Enclave
}

// NewSecretCipher копирует ключ в защищенную память и затирает переданный срез.
func NewSecretCipher(key []byte) (*SecretCipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	return &SecretCipher{key: memguard.NewEnclave(key)}, nil
}

// Encrypt шифрует plaintext со свежим случайным nonce.
func (c *SecretCipher) Encrypt(plaintext string) (string, error) {
	gcm, done, err := c.aead()
	if err != nil {
		return "", err
	}
	defer done()

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt открывает конверт, созданный Encrypt.
func (c *SecretCipher) Decrypt(envelope string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	gcm, done, err := c.aead()
	if err != nil {
		return "", err
	}
	defer done()

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: envelope too short", ErrIntegrity)
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrIntegrity
	}

	return string(plaintext), nil
}

func (c *SecretCipher) aead() (cipher.AEAD, func(), error) {
	buf, err := c.key.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open key enclave: %w", err)
	}

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		buf.Destroy()
		return nil, nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		buf.Destroy()
		return nil, nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, buf.Destroy, nil
}

// GenerateKey возвращает новый случайный 256-битный ключ.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// ParseKey декодирует hex-ключ из конфигурации.
func ParseKey(keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	return key, nil
}

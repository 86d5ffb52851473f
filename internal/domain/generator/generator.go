// Package generator выдает случайные пароли и PIN-коды.
// Все случайные значения берутся из crypto/rand, поэтому Generator можно
// использовать из нескольких горутин одновременно.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()_+"

	MinPasswordLength     = 8
	DefaultPasswordLength = 16
	MinPINLength          = 4
	MaxPINLength          = 12
	DefaultPINLength      = 6
)

var ErrInvalidParameter = errors.New("invalid generator parameter")

type Generator struct {
	rand io.Reader
}

func New() *Generator {
	return &Generator{rand: rand.Reader}
}

// Password returns a string of the given length with at least one character
// of every requested class, shuffled with Fisher-Yates.
func (g *Generator) Password(length int, symbols bool) (string, error) {
	if length < MinPasswordLength {
		return "", fmt.Errorf("%w: password length must be at least %d, got %d", ErrInvalidParameter, MinPasswordLength, length)
	}

	classes := []string{Upper, Lower, Digits}
	if symbols {
		classes = append(classes, Symbols)
	}

	var all string
	out := make([]byte, 0, length)
	for _, class := range classes {
		all += class
		ch, err := g.pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	for len(out) < length {
		ch, err := g.pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	if err := g.shuffle(out); err != nil {
		return "", err
	}

	return string(out), nil
}

// PIN returns a digits-only code.
func (g *Generator) PIN(length int) (string, error) {
	if length < MinPINLength || length > MaxPINLength {
		return "", fmt.Errorf("%w: PIN length must be between %d and %d, got %d", ErrInvalidParameter, MinPINLength, MaxPINLength, length)
	}

	out := make([]byte, length)
	for i := range out {
		ch, err := g.pick(Digits)
		if err != nil {
			return "", err
		}
		out[i] = ch
	}

	return string(out), nil
}

func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

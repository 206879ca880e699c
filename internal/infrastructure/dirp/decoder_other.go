//go:build !(darwin || freebsd || linux)

package dirp

import (
	"context"
	"errors"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

var errUnsupported = errors.New("dirp decoder is not supported on this platform")

// Decoder — заглушка для платформ без dlopen.
type Decoder struct{}

// NewDecoder всегда возвращает ошибку.
func NewDecoder(lib *Library) (*Decoder, error) {
	return nil, errUnsupported
}

// Decode всегда возвращает ошибку.
func (d *Decoder) Decode(ctx context.Context, path string) (*entity.TemperatureMatrix, error) {
	return nil, errUnsupported
}

var _ port.TemperatureDecoder = (*Decoder)(nil)

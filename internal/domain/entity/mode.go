package entity

import "fmt"

// Mode — режим пакетной обработки, выбирается один раз на запуск.
type Mode string

const (
	ModeBasic Mode = "basic" // карта температур с экстремумами
	ModeZone  Mode = "zone"  // то же + зона вокруг медианы
	ModeRaw   Mode = "raw"   // радиометрический растр без визуализации
)

// ParseMode выбирает режим по флагам CLI. Без флагов — basic.
func ParseMode(zone, raw bool) (Mode, error) {
	switch {
	case zone && raw:
		return "", ErrConflictingModes
	case zone:
		return ModeZone, nil
	case raw:
		return ModeRaw, nil
	default:
		return ModeBasic, nil
	}
}

// ModeFromString разбирает имя режима (используется хранилищем).
func ModeFromString(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBasic, ModeZone, ModeRaw:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Visual сообщает, что режим рисует отчёт.
func (m Mode) Visual() bool {
	return m == ModeBasic || m == ModeZone
}

// Description — человекочитаемое описание для баннера.
func (m Mode) Description() string {
	switch m {
	case ModeZone:
		return "median temperature zone"
	case ModeRaw:
		return "radiometric raster export"
	default:
		return "basic analysis"
	}
}

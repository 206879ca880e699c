package metadata

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// SensorModel читает EXIF-тег Model (272). Любая ошибка даёт UnknownSensor.
func SensorModel(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return entity.UnknownSensor
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return entity.UnknownSensor
	}
	tag, err := x.Get(exif.Model)
	if err != nil {
		return entity.UnknownSensor
	}
	model, err := tag.StringVal()
	if err != nil {
		return entity.UnknownSensor
	}
	model = strings.TrimSpace(strings.TrimRight(model, "\x00"))
	if model == "" {
		return entity.UnknownSensor
	}
	return model
}

// Reader собирает CaptureInfo из EXIF и имени файла.
type Reader struct {
	log zerolog.Logger
}

// NewReader создаёт читатель метаданных съёмки.
func NewReader(log zerolog.Logger) *Reader {
	return &Reader{log: log}
}

// Read никогда не падает: отсутствующие поля заменяются плейсхолдерами.
func (r *Reader) Read(path string) entity.CaptureInfo {
	info := entity.CaptureInfo{
		Sensor:    SensorModel(path),
		Timestamp: TimestampFromName(path),
	}
	if info.Sensor == entity.UnknownSensor || info.Timestamp == entity.UnknownTimestamp {
		r.log.Debug().Str("sensor", info.Sensor).Str("date", info.Timestamp).Msg("capture metadata incomplete")
	}
	return info
}

var _ port.CaptureReader = (*Reader)(nil)

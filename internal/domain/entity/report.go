package entity

// Плейсхолдеры для отсутствующих метаданных.
const (
	UnknownSensor    = "Unknown sensor"
	UnknownTimestamp = "unknown"
)

// CaptureInfo — метаданные съёмки для подписи отчёта.
type CaptureInfo struct {
	Sensor    string // EXIF tag 272 или UnknownSensor
	Timestamp string // из имени файла или UnknownTimestamp
	Unit      string // название подразделения из конфигурации
}

// Report содержит всё, что нужно нарисовать для визуальных режимов.
type Report struct {
	Matrix     *TemperatureMatrix
	Statistics Statistics
	Min        ExtremePoint
	Max        ExtremePoint
	Zone       *Zone // nil в режиме basic
	Capture    CaptureInfo
	Mode       Mode

	Title       string
	FooterLine  string
	StatsBanner string
	MinLabel    string
	MaxLabel    string
}

// ArtifactKind — тип выходного файла.
type ArtifactKind string

const (
	ArtifactChart  ArtifactKind = "chart"
	ArtifactRaster ArtifactKind = "raster"
)

// Artifact — созданный файл и предупреждения, не помешавшие его созданию.
type Artifact struct {
	Path     string
	Kind     ArtifactKind
	Warnings []string
}

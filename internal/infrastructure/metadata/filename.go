package metadata

import (
	"path/filepath"
	"regexp"

	"thermal-report/internal/domain/entity"
)

// DJI кладёт время съёмки в имя файла: DJI_YYYYMMDDhhmmss_NNNN_T.JPG.
var captureTimeRe = regexp.MustCompile(`(\d{8})(\d{6})`)

// TimestampFromName возвращает "DD.MM.YYYY HH:MM:SS" или UnknownTimestamp.
func TimestampFromName(path string) string {
	m := captureTimeRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return entity.UnknownTimestamp
	}
	d, t := m[1], m[2]
	return d[6:8] + "." + d[4:6] + "." + d[0:4] + " " + t[0:2] + ":" + t[2:4] + ":" + t[4:6]
}

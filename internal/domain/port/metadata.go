package port

import "context"

// MetadataCopier интерфейс копирования тегов из исходного файла
type MetadataCopier interface {
	// CopyTags переносит все теги из src в dst на месте, без копии-компаньона
	CopyTags(ctx context.Context, src, dst string) error
}

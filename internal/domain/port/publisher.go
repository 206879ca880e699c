package port

import (
	"context"

	"thermal-report/internal/domain/entity"
)

// ReportPublisher интерфейс доставки готовых артефактов
type ReportPublisher interface {
	// Publish отправляет артефакт одного файла
	Publish(ctx context.Context, result *entity.FileResult) error

	// PublishSummary отправляет итог запуска
	PublishSummary(ctx context.Context, summary entity.Summary) error
}

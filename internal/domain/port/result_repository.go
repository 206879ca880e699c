package port

import (
	"context"

	"thermal-report/internal/domain/entity"
)

// ResultRepository интерфейс журнала результатов обработки
type ResultRepository interface {
	// Save сохраняет результат одного файла
	Save(ctx context.Context, result *entity.FileResult) error

	// List возвращает сохранённые результаты в порядке добавления
	List(ctx context.Context) ([]entity.FileResult, error)
}

package storage

import (
	"context"
	"sync"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

// MemoryResultRepository in-memory журнал результатов
type MemoryResultRepository struct {
	mu      sync.RWMutex
	results []entity.FileResult
}

// NewMemoryResultRepository создаёт новый in-memory журнал
func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{}
}

// Save добавляет копию результата в журнал
func (r *MemoryResultRepository) Save(ctx context.Context, result *entity.FileResult) error {
	if result == nil {
		return nil
	}

	stored := *result
	if result.Artifact != nil {
		artifact := *result.Artifact
		artifact.Warnings = append([]string(nil), result.Artifact.Warnings...)
		stored.Artifact = &artifact
	}
	if result.Statistics != nil {
		stats := *result.Statistics
		stored.Statistics = &stats
	}

	r.mu.Lock()
	r.results = append(r.results, stored)
	r.mu.Unlock()

	return nil
}

// List возвращает результаты в порядке добавления
func (r *MemoryResultRepository) List(ctx context.Context) ([]entity.FileResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.FileResult, len(r.results))
	copy(out, r.results)
	return out, nil
}

// Проверка реализации интерфейса
var _ port.ResultRepository = (*MemoryResultRepository)(nil)

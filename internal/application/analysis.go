package app

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"thermal-report/internal/domain/entity"
)

// ComputeStatistics считает min/max/mean/median по матрице.
func ComputeStatistics(m *entity.TemperatureMatrix) (entity.Statistics, error) {
	if m.Empty() {
		return entity.Statistics{}, entity.ErrEmptyMatrix
	}

	minV := floats.Min(m.Values)
	maxV := floats.Max(m.Values)

	// Ошибка округления суммы не должна выводить среднее за [min, max].
	mean := stat.Mean(m.Values, nil)
	mean = clamp(mean, minV, maxV)

	return entity.Statistics{
		Min:    minV,
		Max:    maxV,
		Mean:   mean,
		Median: median(m.Values),
	}, nil
}

// LocateExtrema находит первые по порядку обхода (row-major) минимум и максимум.
func LocateExtrema(m *entity.TemperatureMatrix) (minP, maxP entity.ExtremePoint, err error) {
	if m.Empty() {
		return minP, maxP, entity.ErrEmptyMatrix
	}

	iMin := floats.MinIdx(m.Values)
	iMax := floats.MaxIdx(m.Values)

	minP = entity.ExtremePoint{Row: iMin / m.Width, Col: iMin % m.Width, Value: m.Values[iMin], Kind: entity.ExtremumMin}
	maxP = entity.ExtremePoint{Row: iMax / m.Width, Col: iMax % m.Width, Value: m.Values[iMax], Kind: entity.ExtremumMax}
	return minP, maxP, nil
}

// median сортирует копию; для чётной длины берёт среднее двух центральных.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всём бою:
// броски крита, выбор отряда, случайная расстановка.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Roll возвращает true с вероятностью chance. chance <= 0 никогда не срабатывает,
// chance >= 1 срабатывает всегда.
func (s *PRNGService) Roll(chance float64) bool {
	return s.rng.Float64() < chance
}

// SampleIndexes выбирает k различных индексов из [0, n) в случайном порядке.
// Если k больше n, возвращаются все n индексов.
func (s *PRNGService) SampleIndexes(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	perm := s.rng.Perm(n)
	return perm[:k]
}

package game

import "math/rand"

// Rand - источник случайности. Вынесен в интерфейс, чтобы резолвер
// можно было гонять в тестах на заранее заданной последовательности.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type stdRand struct{}

func (stdRand) Intn(n int) int   { return rand.Intn(n) }
func (stdRand) Float64() float64 { return rand.Float64() }

// between - равномерное целое из [min, max].
func between(r Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

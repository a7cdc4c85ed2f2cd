// Package jitter добавляет случайный разброс к интервалам повторов,
// чтобы переподключения разных воркеров не совпадали по времени.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает длительность в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	randMutex.Lock()
	j := globalRand.Float64() * factor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(j)
}

// Backoff вычисляет экспоненциальное отступление с джиттером.
// attempt нумеруется с нуля; результат не превышает max*(1+factor).
func Backoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, factor)
}

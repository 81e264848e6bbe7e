// Package benchmark derives ROI hurdle rates from a public market proxy so
// "attractive return" tracks the market instead of a hardcoded constant.
package benchmark

import (
	"math"
	"sync"
	"time"

	"github.com/piquette/finance-go/quote"
)

const (
	// defaults when no quote is available
	DefaultHighHurdle = 15.0
	DefaultLowHurdle  = 8.0

	quoteTTL = time.Hour
)

type HurdleRates struct {
	// ROI above High earns full attractiveness credit
	High float64
	// ROI above Low earns partial credit
	Low float64
}

type Client interface {
	// HurdleRates never fails - it returns the defaults when the market
	// quote is unavailable.
	HurdleRates() HurdleRates
}

type clientHandler struct {
	symbol string

	mu        sync.Mutex
	cached    *HurdleRates
	fetchedAt time.Time
}

func NewClient(symbol string) Client {
	return &clientHandler{
		symbol: symbol,
	}
}

func (c *clientHandler) HurdleRates() HurdleRates {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < quoteTTL {
		return *c.cached
	}

	rates := HurdleRates{High: DefaultHighHurdle, Low: DefaultLowHurdle}
	if c.symbol != "" {
		if q, err := quote.Get(c.symbol); err == nil && q != nil && q.FiftyTwoWeekLow > 0 {
			trailing := (q.RegularMarketPrice - q.FiftyTwoWeekLow) / q.FiftyTwoWeekLow * 100
			rates = DeriveHurdles(trailing)
		}
	}

	c.cached = &rates
	c.fetchedAt = time.Now()

	return rates
}

// DeriveHurdles maps a trailing-year market return (percent) to the two ROI
// bands. The high hurdle stays within [12,20] so a freak market year can't
// make every opportunity look attractive or hopeless.
func DeriveHurdles(trailingReturn float64) HurdleRates {
	high := math.Max(12, math.Min(20, trailingReturn))
	return HurdleRates{
		High: high,
		Low:  high - 7,
	}
}

package performance

import (
	"fmt"
	"sort"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// trustCursor tracks per-trust replay state while walking the day loop.
type trustCursor struct {
	txns      []model.Transaction
	prices    []model.Price
	txnIdx    int
	priceIdx  int
	units     float64
	lastPrice float64
	hasPrice  bool
}

// BuildValueSeries produces one portfolio value point per calendar day
// over the recorded activity range, clipped to [start, end] when those
// are non-zero. The range runs from the earliest transaction date to the
// latest transaction or price date; days outside recorded activity are
// never fabricated. Prices forward-fill between observations, and a
// trust with no price on or before a day contributes zero for that day.
// An empty slice is returned when there are no transactions at all.
func BuildValueSeries(txnsByTrust map[string][]model.Transaction, pricesByTrust map[string][]model.Price, start, end time.Time) ([]model.PortfolioHistoryPoint, error) {
	cursors := make(map[string]*trustCursor, len(txnsByTrust))
	var rangeStart, rangeEnd time.Time
	total := 0
	for id, txns := range txnsByTrust {
		if len(txns) == 0 {
			continue
		}
		total += len(txns)
		ordered := make([]model.Transaction, len(txns))
		copy(ordered, txns)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Date.Before(ordered[j].Date)
		})
		cursors[id] = &trustCursor{txns: ordered}

		first := midnight(ordered[0].Date)
		last := midnight(ordered[len(ordered)-1].Date)
		if rangeStart.IsZero() || first.Before(rangeStart) {
			rangeStart = first
		}
		if last.After(rangeEnd) {
			rangeEnd = last
		}
	}
	if total == 0 {
		return []model.PortfolioHistoryPoint{}, nil
	}

	for id, prices := range pricesByTrust {
		c, ok := cursors[id]
		if !ok {
			continue
		}
		ordered := make([]model.Price, len(prices))
		copy(ordered, prices)
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Date.Before(ordered[j].Date)
		})
		c.prices = ordered
		if len(ordered) > 0 {
			last := midnight(ordered[len(ordered)-1].Date)
			if last.After(rangeEnd) {
				rangeEnd = last
			}
		}
	}

	if !start.IsZero() && midnight(start).After(rangeStart) {
		rangeStart = midnight(start)
	}
	if !end.IsZero() && midnight(end).Before(rangeEnd) {
		rangeEnd = midnight(end)
	}
	if rangeStart.After(rangeEnd) {
		return []model.PortfolioHistoryPoint{}, nil
	}

	// Transactions and prices before a clipped window drain into the
	// first day's cursor state, so the series opens at the correct
	// accumulated position.
	series := make([]model.PortfolioHistoryPoint, 0, int(rangeEnd.Sub(rangeStart).Hours()/24)+1)
	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		value := 0.0
		for id, c := range cursors {
			for c.txnIdx < len(c.txns) && !midnight(c.txns[c.txnIdx].Date).After(day) {
				tx := c.txns[c.txnIdx]
				switch tx.Type {
				case model.TransactionBuy:
					c.units += tx.Units
				case model.TransactionSell:
					c.units -= tx.Units
				}
				c.txnIdx++
			}
			if c.units < -unitEpsilon {
				return nil, fmt.Errorf("unit trust %s holds negative units on %s: %w",
					id, day.Format("2006-01-02"), apperrors.ErrInsufficientUnits)
			}
			for c.priceIdx < len(c.prices) && !midnight(c.prices[c.priceIdx].Date).After(day) {
				c.lastPrice = c.prices[c.priceIdx].Price
				c.hasPrice = true
				c.priceIdx++
			}
			if c.hasPrice && c.units > unitEpsilon {
				value += c.units * c.lastPrice
			}
		}
		series = append(series, model.PortfolioHistoryPoint{
			Date:  day.Format("2006-01-02"),
			Value: value,
		})
	}
	return series, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

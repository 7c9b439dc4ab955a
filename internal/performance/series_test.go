package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

func price(value float64, offset int) model.Price {
	return model.Price{Date: day(offset), Price: value}
}

// WHY: the daily value series feeds every return metric, so gaps,
// forward-fill, and window clipping all have to behave exactly as
// documented or the metrics silently drift.
func TestBuildValueSeries(t *testing.T) {
	t.Run("no transactions yields empty series", func(t *testing.T) {
		series, err := BuildValueSeries(nil, nil, time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 0 {
			t.Errorf("got %d points, want 0", len(series))
		}
	})

	t.Run("one point per day with no gaps", func(t *testing.T) {
		txns := map[string][]model.Transaction{"ut1": {buy(10, 100, 0)}}
		prices := map[string][]model.Price{"ut1": {price(100, 0), price(110, 10)}}

		series, err := BuildValueSeries(txns, prices, time.Time{}, time.Time{})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 11 {
			t.Fatalf("got %d points, want 11", len(series))
		}
		for i, p := range series {
			want := day(i).Format("2006-01-02")
			if p.Date != want {
				t.Errorf("point %d date = %s, want %s", i, p.Date, want)
			}
		}
	})

	t.Run("prices forward-fill between observations", func(t *testing.T) {
		txns := map[string][]model.Transaction{"ut1": {buy(10, 100, 0)}}
		prices := map[string][]model.Price{"ut1": {price(100, 0), price(110, 10)}}

		series, err := BuildValueSeries(txns, prices, time.Time{}, time.Time{})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(series[5].Value, 1000) {
			t.Errorf("mid-gap value = %v, want 1000 (carried price)", series[5].Value)
		}
		if !almostEqual(series[10].Value, 1100) {
			t.Errorf("final value = %v, want 1100", series[10].Value)
		}
	})

	t.Run("trust without any price contributes zero", func(t *testing.T) {
		txns := map[string][]model.Transaction{
			"priced":   {buy(10, 100, 0)},
			"unpriced": {buy(5, 50, 0)},
		}
		prices := map[string][]model.Price{"priced": {price(100, 0)}}

		series, err := BuildValueSeries(txns, prices, time.Time{}, time.Time{})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(series[0].Value, 1000) {
			t.Errorf("value = %v, want 1000 (unpriced trust excluded)", series[0].Value)
		}
	})

	t.Run("single transaction and price yields single point", func(t *testing.T) {
		txns := map[string][]model.Transaction{"ut1": {buy(10, 100, 0)}}
		prices := map[string][]model.Price{"ut1": {price(100, 0)}}

		series, err := BuildValueSeries(txns, prices, time.Time{}, time.Time{})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 1 {
			t.Fatalf("got %d points, want 1", len(series))
		}
		if !almostEqual(series[0].Value, 1000) {
			t.Errorf("value = %v, want 1000", series[0].Value)
		}
	})

	t.Run("window clipping keeps accumulated position", func(t *testing.T) {
		txns := map[string][]model.Transaction{"ut1": {buy(10, 100, 0), buy(10, 105, 5)}}
		prices := map[string][]model.Price{"ut1": {price(100, 0), price(110, 20)}}

		series, err := BuildValueSeries(txns, prices, day(10), day(20))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 11 {
			t.Fatalf("got %d points, want 11", len(series))
		}
		// Both buys predate the window, so the first point already
		// holds 20 units at the carried price of 100.
		if !almostEqual(series[0].Value, 2000) {
			t.Errorf("first value = %v, want 2000", series[0].Value)
		}
		if !almostEqual(series[10].Value, 2200) {
			t.Errorf("last value = %v, want 2200", series[10].Value)
		}
	})

	t.Run("window after all activity yields empty series", func(t *testing.T) {
		txns := map[string][]model.Transaction{"ut1": {buy(10, 100, 0)}}
		prices := map[string][]model.Price{"ut1": {price(100, 0)}}

		series, err := BuildValueSeries(txns, prices, day(5), day(9))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 0 {
			t.Errorf("got %d points, want 0", len(series))
		}
	})

	t.Run("negative cumulative units surfaces an integrity error", func(t *testing.T) {
		txns := map[string][]model.Transaction{"ut1": {sell(5, 100, 0)}}
		prices := map[string][]model.Price{"ut1": {price(100, 0)}}

		_, err := BuildValueSeries(txns, prices, time.Time{}, time.Time{})

		if !errors.Is(err, apperrors.ErrInsufficientUnits) {
			t.Errorf("error = %v, want ErrInsufficientUnits", err)
		}
	})

	t.Run("idempotent over the same inputs", func(t *testing.T) {
		txns := map[string][]model.Transaction{"ut1": {buy(10, 100, 0), sell(4, 110, 3)}}
		prices := map[string][]model.Price{"ut1": {price(100, 0), price(110, 3), price(105, 6)}}

		first, err := BuildValueSeries(txns, prices, time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := BuildValueSeries(txns, prices, time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(first) != len(second) {
			t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("point %d differs: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

// Package performance computes portfolio positions, valuation series,
// and return metrics from transactions and daily prices. All calculations
// are pure functions over snapshots loaded by the caller; nothing in this
// package touches the database.
package performance

import (
	"fmt"
	"sort"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// unitEpsilon absorbs floating-point dust when comparing unit counts.
const unitEpsilon = 1e-9

// Holding is the derived position in a single unit trust after replaying
// its transactions in date order.
type Holding struct {
	UnitsHeld        float64
	AvgCostPerUnit   float64
	TotalCost        float64
	RealizedGainLoss float64
}

// ComputeHolding replays transactions dated on or before asOf and returns
// the resulting position. Cost basis is weighted-average: each buy adds
// units*price to total cost, each sell removes units at the current average
// cost and books the difference against the sale proceeds as realized
// gain/loss. A sell that exceeds the units held at that point returns
// apperrors.ErrInsufficientUnits; positions are never clamped.
func ComputeHolding(transactions []model.Transaction, asOf time.Time) (Holding, error) {
	ordered := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !asOf.IsZero() && tx.Date.After(asOf) {
			continue
		}
		ordered = append(ordered, tx)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	var h Holding
	for _, tx := range ordered {
		switch tx.Type {
		case model.TransactionBuy:
			h.TotalCost += tx.Units * tx.PricePerUnit
			h.UnitsHeld += tx.Units
		case model.TransactionSell:
			if tx.Units > h.UnitsHeld+unitEpsilon {
				return Holding{}, fmt.Errorf("sell of %.6f units on %s exceeds %.6f held: %w",
					tx.Units, tx.Date.Format("2006-01-02"), h.UnitsHeld, apperrors.ErrInsufficientUnits)
			}
			avgCost := 0.0
			if h.UnitsHeld > 0 {
				avgCost = h.TotalCost / h.UnitsHeld
			}
			costRemoved := tx.Units * avgCost
			h.RealizedGainLoss += tx.Units*tx.PricePerUnit - costRemoved
			h.UnitsHeld -= tx.Units
			h.TotalCost -= costRemoved
			if h.UnitsHeld < unitEpsilon {
				h.UnitsHeld = 0
				h.TotalCost = 0
			}
		}
	}
	if h.UnitsHeld > 0 {
		h.AvgCostPerUnit = h.TotalCost / h.UnitsHeld
	}
	return h, nil
}

// Package stats derives trend series and frequency counts from the persisted
// sales history. It is a pure read-side transform: nothing here mutates
// domain state, and identical histories always produce identical output.
package stats

import "github.com/hotdogccs/hotdogsim/internal/models"

// MinHistory is the number of recorded days required before trends mean
// anything.
const MinHistory = 2

// ClientSeries holds the per-day client counts, in history order.
type ClientSeries struct {
	Dates          []string
	Total          []int
	ChangedOpinion []int
	CouldNotBuy    []int
	Served         []int
}

// SalesSeries holds the per-day sales figures, in history order.
type SalesSeries struct {
	Dates        []string
	HotdogsSold  []int
	SidesSold    []int
	AvgPerServed []float64
}

// Aggregator reads an ordered sales history snapshot.
type Aggregator struct {
	history []models.SalesRecord
}

func NewAggregator(history []models.SalesRecord) *Aggregator {
	return &Aggregator{history: history}
}

// Available reports whether enough days are recorded, and if not, how many
// more are needed for UI messaging.
func (a *Aggregator) Available() (bool, int) {
	if len(a.history) >= MinHistory {
		return true, 0
	}
	return false, MinHistory - len(a.history)
}

// Clients derives the client time series.
func (a *Aggregator) Clients() ClientSeries {
	s := ClientSeries{
		Dates:          make([]string, 0, len(a.history)),
		Total:          make([]int, 0, len(a.history)),
		ChangedOpinion: make([]int, 0, len(a.history)),
		CouldNotBuy:    make([]int, 0, len(a.history)),
		Served:         make([]int, 0, len(a.history)),
	}
	for _, rec := range a.history {
		s.Dates = append(s.Dates, rec.Date)
		s.Total = append(s.Total, rec.TotalClients)
		s.ChangedOpinion = append(s.ChangedOpinion, rec.ClientsChangedOpinion)
		s.CouldNotBuy = append(s.CouldNotBuy, rec.ClientsCouldNotBuy)
		s.Served = append(s.Served, rec.ClientsServed())
	}
	return s
}

// Sales derives the sales time series. Days with no served clients report an
// average of zero rather than an error.
func (a *Aggregator) Sales() SalesSeries {
	s := SalesSeries{
		Dates:        make([]string, 0, len(a.history)),
		HotdogsSold:  make([]int, 0, len(a.history)),
		SidesSold:    make([]int, 0, len(a.history)),
		AvgPerServed: make([]float64, 0, len(a.history)),
	}
	for _, rec := range a.history {
		s.Dates = append(s.Dates, rec.Date)
		s.HotdogsSold = append(s.HotdogsSold, rec.TotalHotdogsSold)
		s.SidesSold = append(s.SidesSold, rec.TotalSidesSold)
		avg := 0.0
		if served := rec.ClientsServed(); served > 0 {
			avg = float64(rec.TotalHotdogsSold) / float64(served)
		}
		s.AvgPerServed = append(s.AvgPerServed, avg)
	}
	return s
}

// BestSellers counts how many days each item name was the day's best seller,
// descending, ties in first-appearance order.
func (a *Aggregator) BestSellers() []models.NameCount {
	counter := models.NewCounter()
	for _, rec := range a.history {
		if rec.BestSellingItem != "" {
			counter.Add(rec.BestSellingItem, 1)
		}
	}
	return counter.MostCommon(0)
}

// LossItems counts appearances in the per-day item loss lists, descending.
func (a *Aggregator) LossItems() []models.NameCount {
	counter := models.NewCounter()
	for _, rec := range a.history {
		for _, name := range rec.ItemsCausingLoss {
			counter.Add(name, 1)
		}
	}
	return counter.MostCommon(0)
}

// LossIngredients counts appearances in the per-day ingredient loss lists,
// descending.
func (a *Aggregator) LossIngredients() []models.NameCount {
	counter := models.NewCounter()
	for _, rec := range a.history {
		for _, name := range rec.IngredientsCausingLoss {
			counter.Add(name, 1)
		}
	}
	return counter.MostCommon(0)
}

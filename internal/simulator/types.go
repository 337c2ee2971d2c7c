package simulator

import (
	"time"

	"github.com/hotdogccs/hotdogsim/internal/inventory"
	"github.com/hotdogccs/hotdogsim/internal/models"
	"go.uber.org/zap"
)

// Rand is the source of randomness driving a simulated day. *rand.Rand
// satisfies it; tests inject scripted sequences to replay exact days.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// MenuView is the read-only catalog capability the engine needs. Items must
// come back in a stable order for a fixed Rand to reproduce a day.
type MenuView interface {
	Items() []models.MenuItem
}

// IngredientView resolves ingredient metadata during a day: side candidates
// for extra-side draws and category lookups for the sides accounting.
type IngredientView interface {
	Ingredient(id string) (models.Ingredient, bool)
	IngredientsByCategory(category string) []models.Ingredient
}

// StockLedger is the mutable inventory capability. The engine is the only
// writer while a day runs.
type StockLedger interface {
	CheckAll(req *inventory.Requirements) (bool, []inventory.Shortage)
	ConsumeAll(req *inventory.Requirements) bool
}

// HistorySink receives the finished day record. Appending is expected to be
// synchronous and durable before it returns.
type HistorySink interface {
	AppendSalesRecord(rec models.SalesRecord) error
}

// Params wires a Simulator to its collaborators.
type Params struct {
	Menu         MenuView
	Ingredients  IngredientView
	Ledger       StockLedger
	History      HistorySink
	Rand         Rand
	Logger       *zap.Logger
	Clock        func() time.Time
	ShowProgress bool
}

// DayResult carries the persisted record plus the derived figures the
// end-of-day report prints but the record does not store.
type DayResult struct {
	Record        models.SalesRecord
	ClientsServed int
	AvgPerServed  float64
	ItemSales     []models.NameCount
}

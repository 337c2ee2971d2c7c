package models

const (
	CategoryBread   = "Bread"
	CategorySausage = "Sausage"
	CategoryTopping = "Topping"
	CategorySauce   = "Sauce"
	CategorySide    = "Side"
)

// Categories lists every ingredient category in display order.
var Categories = []string{
	CategoryBread,
	CategorySausage,
	CategoryTopping,
	CategorySauce,
	CategorySide,
}

// DefaultRemoteQuantity is the stock assigned to ingredients first seen in the
// remote data source, before any local quantity overrides are merged.
const DefaultRemoteQuantity = 50

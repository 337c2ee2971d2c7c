package models

// SalesRecord is the immutable end-of-day snapshot appended to the sales
// history. It is written once by the simulation engine and never mutated.
type SalesRecord struct {
	Date                   string   `json:"date"`
	TotalClients           int      `json:"total_clients"`
	ClientsChangedOpinion  int      `json:"clients_changed_opinion"`
	ClientsCouldNotBuy     int      `json:"clients_could_not_buy"`
	TotalHotdogsSold       int      `json:"total_hotdogs_sold"`
	TotalSidesSold         int      `json:"total_sides_sold"`
	BestSellingItem        string   `json:"best_selling_item"`
	ItemsCausingLoss       []string `json:"items_causing_loss"`
	IngredientsCausingLoss []string `json:"ingredients_causing_loss"`
}

// ClientsServed derives the number of successfully served clients.
func (r SalesRecord) ClientsServed() int {
	return r.TotalClients - r.ClientsChangedOpinion - r.ClientsCouldNotBuy
}

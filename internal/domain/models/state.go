package models

// Counters hold the monotonic id sequences for each entity type. They live
// inside the state document so id assignment is covered by the same write
// lock as the data itself.
type Counters struct {
	Products  int64 `bson:"products" json:"products"`
	Movements int64 `bson:"movements" json:"movements"`
	Alerts    int64 `bson:"alerts" json:"alerts"`
}

// State is the full durable document: catalog, ledger, alert log, marketplace
// credentials and id counters. It is loaded, mutated in memory and persisted
// as a single snapshot.
type State struct {
	Products     []Product           `bson:"products" json:"products"`
	Movements    []StockMovement     `bson:"stock_movements" json:"stock_movements"`
	Alerts       []Alert             `bson:"alerts" json:"alerts"`
	Marketplaces []MarketplaceConfig `bson:"marketplace_config" json:"marketplace_config"`
	Counters     Counters            `bson:"counters" json:"counters"`
}

// NewState returns an empty state ready for first persistence.
func NewState() *State {
	return &State{
		Products:     []Product{},
		Movements:    []StockMovement{},
		Alerts:       []Alert{},
		Marketplaces: []MarketplaceConfig{},
	}
}

// Clone returns a deep copy. Entities hold only value types, so copying the
// slices is sufficient to isolate the copy from further mutation.
func (s *State) Clone() *State {
	out := &State{
		Products:     make([]Product, len(s.Products)),
		Movements:    make([]StockMovement, len(s.Movements)),
		Alerts:       make([]Alert, len(s.Alerts)),
		Marketplaces: make([]MarketplaceConfig, len(s.Marketplaces)),
		Counters:     s.Counters,
	}
	copy(out.Products, s.Products)
	copy(out.Movements, s.Movements)
	copy(out.Alerts, s.Alerts)
	copy(out.Marketplaces, s.Marketplaces)
	return out
}

// ProductByID returns a pointer into the state's product slice, or nil.
func (s *State) ProductByID(id int64) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

package ds

// ShipFilter — необязательные параметры поиска кораблей.
// nil-поле не накладывает ограничения.
type ShipFilter struct {
	Name        *string
	Planet      *string
	ShipType    *ShipType
	After       *int64
	Before      *int64
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

// Condition — одно условие запроса для Where
type Condition struct {
	Query string
	Args  []interface{}
}

// Conditions — перевод фильтра в набор условий, по одному на заданный параметр
func (f ShipFilter) Conditions() []Condition {
	var conds []Condition
	add := func(query string, args ...interface{}) {
		conds = append(conds, Condition{Query: query, Args: args})
	}

	if f.Name != nil {
		add("name ILIKE ?", "%"+*f.Name+"%")
	}
	if f.Planet != nil {
		add("planet ILIKE ?", "%"+*f.Planet+"%")
	}
	if f.ShipType != nil {
		add("ship_type = ?", *f.ShipType)
	}
	if f.After != nil {
		add("prod_date >= ?", ProdDateTime(*f.After))
	}
	if f.Before != nil {
		add("prod_date <= ?", ProdDateTime(*f.Before))
	}
	if f.IsUsed != nil {
		add("is_used = ?", *f.IsUsed)
	}
	if f.MinSpeed != nil {
		add("speed >= ?", *f.MinSpeed)
	}
	if f.MaxSpeed != nil {
		add("speed <= ?", *f.MaxSpeed)
	}
	if f.MinCrewSize != nil {
		add("crew_size >= ?", *f.MinCrewSize)
	}
	if f.MaxCrewSize != nil {
		add("crew_size <= ?", *f.MaxCrewSize)
	}
	if f.MinRating != nil {
		add("rating >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		add("rating <= ?", *f.MaxRating)
	}
	return conds
}

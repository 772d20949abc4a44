package config

// Limits holds the validation bounds for recipe authoring. Values come
// from the environment with defaults matching production settings.
type Limits struct {
	CookingTimeMin int
	CookingTimeMax int
	AmountMin      int
	AmountMax      int
	PageSize       int
	MaxPageSize    int
}

func NewLimits(c map[string]string) Limits {
	return Limits{
		CookingTimeMin: GetInt(c, "COOKING_TIME_MIN", 1),
		CookingTimeMax: GetInt(c, "COOKING_TIME_MAX", 600),
		AmountMin:      GetInt(c, "INGREDIENT_AMOUNT_MIN", 1),
		AmountMax:      GetInt(c, "INGREDIENT_AMOUNT_MAX", 10000),
		PageSize:       GetInt(c, "PAGE_SIZE", 6),
		MaxPageSize:    GetInt(c, "MAX_PAGE_SIZE", 100),
	}
}

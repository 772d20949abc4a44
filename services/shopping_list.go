package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shoppingListTimeFormat = "02.01.2006 15:04"

// ShoppingListService turns a user's cart into a downloadable
// plain-text purchase list, one line per distinct (name, unit) group
// with amounts summed across recipes.
type ShoppingListService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewShoppingListService(db database.Database) ShoppingListService {
	return ShoppingListService{
		db:     db,
		logger: log.With().Str("serviceName", "shoppingListService").Logger(),
	}
}

// Build aggregates the user's cart and renders the document. An empty
// cart is an error, not an empty file.
func (s ShoppingListService) Build(user *models.User, now time.Time) (filename string, content []byte, err error) {
	rows, err := s.db.ShoppingCartRepo().AggregateIngredients(user.ID)
	if err != nil {
		return "", nil, errs.NewDatabaseError("aggregate", "shopping cart", err)
	}
	if len(rows) == 0 {
		return "", nil, errs.NewCartEmptyError()
	}

	lines := []string{
		"Shopping list:",
		fmt.Sprintf("%s %s", user.FirstName, user.LastName),
		fmt.Sprintf("Date: %s", now.Format(shoppingListTimeFormat)),
		"____________________________",
	}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("- %s: %d %s", row.Name, row.Amount, row.MeasurementUnit))
	}
	lines = append(lines, "____________________________", "Happy shopping!", "")

	filename = fmt.Sprintf("%s_shopping_list.txt", user.Username)
	s.logger.Info().Str("user", user.Username).Int("items", len(rows)).Msg("Shopping list generated")
	return filename, []byte(strings.Join(lines, "\n")), nil
}

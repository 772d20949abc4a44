package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Recipe Authoring Errors
var (
	ErrDuplicateIngredient = errors.New("duplicate ingredient")
	ErrNoIngredients       = errors.New("recipe needs at least one ingredient")
	ErrNoTags              = errors.New("recipe needs at least one tag")
	ErrCookingTimeRange    = errors.New("cooking time out of range")
	ErrAmountRange         = errors.New("ingredient amount out of range")
)

// Subscription & Interaction Errors
var (
	ErrSelfSubscribe     = errors.New("cannot subscribe to self")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrNotSubscribed     = errors.New("not subscribed")
	ErrCartEmpty         = errors.New("shopping cart is empty")
)

func NewDuplicateIngredientError(name string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrDuplicateIngredient,
		Details:    fmt.Sprintf("Ingredient %q appears more than once", name),
		Field:      "ingredients",
	}
}

func NewNoIngredientsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrNoIngredients,
		Field:      "ingredients",
	}
}

func NewNoTagsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrNoTags,
		Field:      "tags",
	}
}

func NewCookingTimeRangeError(min, max int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrCookingTimeRange,
		Details:    fmt.Sprintf("Cooking time must be between %d and %d minutes", min, max),
		Field:      "cooking_time",
	}
}

func NewAmountRangeError(min, max int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrAmountRange,
		Details:    fmt.Sprintf("Ingredient amount must be between %d and %d", min, max),
		Field:      "amount",
	}
}

func NewSelfSubscribeError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrSelfSubscribe,
		Field:      "author",
	}
}

func NewAlreadySubscribedError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrAlreadySubscribed,
		Field:      "author",
	}
}

func NewNotSubscribedError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrNotSubscribed,
		Field:      "author",
	}
}

func NewCartEmptyError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrCartEmpty,
		Field:      "shopping_cart",
	}
}

// Domain Error Type Checkers
func IsDuplicateIngredientError(err error) bool {
	return errors.Is(err, ErrDuplicateIngredient)
}

func IsSelfSubscribeError(err error) bool {
	return errors.Is(err, ErrSelfSubscribe)
}

func IsCartEmptyError(err error) bool {
	return errors.Is(err, ErrCartEmpty)
}

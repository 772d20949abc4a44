package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler       userHandler
	tagHandler        tagHandler
	ingredientHandler ingredientHandler
	recipeHandler     recipeHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"cooking_time"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// PageResponse is the envelope for paginated list responses.
type PageResponse struct {
	Count   int64 `json:"count"`
	Results any   `json:"results"`
}

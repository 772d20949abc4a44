package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public surface. Reads go through the identify
// middleware so viewer-relative flags work for signed-in viewers while
// staying open to anonymous ones; writes require authentication.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Viewer-aware reads, open to anonymous requests
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.identify)
			r.Use(ColoredHTTPLoggingMiddleware)

			r.Get("/tags", handlers.tagHandler.getAllTags())
			r.Get("/tags/{tagID}", handlers.tagHandler.getTag())

			r.Get("/ingredients", handlers.ingredientHandler.getAllIngredients())
			r.Get("/ingredients/{ingredientID}", handlers.ingredientHandler.getIngredient())

			r.Get("/recipes", handlers.recipeHandler.getAllRecipes())
			r.Get("/recipes/{recipeID}", handlers.recipeHandler.getRecipe())

			r.Get("/users", handlers.userHandler.getAllUsers())
			r.Get("/users/{userID}", handlers.userHandler.getUser())
			r.Post("/users", handlers.userHandler.register())
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Use(ColoredHTTPLoggingMiddleware)

			r.Get("/users/me", handlers.userHandler.me())
			r.Get("/users/subscriptions", handlers.userHandler.getSubscriptions())
			r.Post("/users/{userID}/subscribe", handlers.userHandler.subscribe())
			r.Delete("/users/{userID}/subscribe", handlers.userHandler.unsubscribe())

			r.Post("/ingredients", handlers.ingredientHandler.createIngredient())

			r.Post("/recipes", handlers.recipeHandler.createRecipe())
			r.Patch("/recipes/{recipeID}", handlers.recipeHandler.updateRecipe())
			r.Delete("/recipes/{recipeID}", handlers.recipeHandler.deleteRecipe())

			r.Get("/recipes/download_shopping_cart", handlers.recipeHandler.downloadShoppingCart())
			r.Post("/recipes/{recipeID}/favorite", handlers.recipeHandler.favorite())
			r.Delete("/recipes/{recipeID}/favorite", handlers.recipeHandler.unfavorite())
			r.Post("/recipes/{recipeID}/shopping_cart", handlers.recipeHandler.addToCart())
			r.Delete("/recipes/{recipeID}/shopping_cart", handlers.recipeHandler.removeFromCart())
		})
	})
}

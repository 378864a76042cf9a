package routes

import (
	"foodgram/internal/api/handlers"
	"foodgram/internal/metrics"
	"foodgram/internal/middleware"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	ShoppingListHandler handlers.ShoppingListHandler
	CatalogHandler      handlers.CatalogHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	Metrics             metrics.Recorder
	Registry            *prometheus.Registry
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware(c.Metrics))
	c.GuestRoute()
	c.User()
	c.Auth()
	c.Catalog()
	c.Recipe()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})))
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	user := c.App.Group("/api/users")
	{
		user.Post("", c.UserHandler.Register)
		user.Get("", optional, c.UserHandler.GetUsers)
		user.Get("/me", auth, c.UserHandler.Me)
		user.Post("/set_password", auth, c.UserHandler.SetPassword)
		user.Get("/subscriptions", auth, c.UserHandler.GetSubscriptions)
		user.Get("/:id", optional, c.UserHandler.GetUser)
		user.Post("/:id/subscribe", auth, c.UserHandler.Subscribe)
		user.Delete("/:id/subscribe", auth, c.UserHandler.Unsubscribe)
	}
}

func (c *Config) Auth() {
	token := c.App.Group("/api/auth/token")
	token.Post("/login", c.UserHandler.Login)
	token.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
}

func (c *Config) Catalog() {
	admin := []fiber.Handler{c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware()}

	tags := c.App.Group("/api/tags")
	tags.Get("", c.CatalogHandler.GetTags)
	tags.Get("/:id", c.CatalogHandler.GetTag)
	tags.Post("", append(admin, c.CatalogHandler.CreateTag)...)
	tags.Patch("/:id", append(admin, c.CatalogHandler.UpdateTag)...)
	tags.Delete("/:id", append(admin, c.CatalogHandler.DeleteTag)...)

	ingredients := c.App.Group("/api/ingredients")
	ingredients.Get("", c.CatalogHandler.GetIngredients)
	ingredients.Get("/:id", c.CatalogHandler.GetIngredient)
	ingredients.Post("", append(admin, c.CatalogHandler.CreateIngredient)...)
	ingredients.Patch("/:id", append(admin, c.CatalogHandler.UpdateIngredient)...)
	ingredients.Delete("/:id", append(admin, c.CatalogHandler.DeleteIngredient)...)
}

func (c *Config) Recipe() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes := c.App.Group("/api/recipes")

	// Registered before /:id so the literal segments win.
	recipes.Get("/download_shopping_cart", auth, c.ShoppingListHandler.DownloadShoppingList)
	recipes.Post("/send_shopping_cart", auth, c.ShoppingListHandler.SendShoppingList)

	recipes.Get("", optional, c.RecipeHandler.GetRecipes)
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", optional, c.RecipeHandler.GetRecipe)
	recipes.Patch("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/favorite", auth, c.RecipeHandler.AddFavorite)
	recipes.Delete("/:id/favorite", auth, c.RecipeHandler.RemoveFavorite)
	recipes.Post("/:id/shopping_cart", auth, c.RecipeHandler.AddToShoppingCart)
	recipes.Delete("/:id/shopping_cart", auth, c.RecipeHandler.RemoveFromShoppingCart)
}

// Package testutil opens a migrated in-memory database for repository tests
// and seeds the rows those tests need.
package testutil

import (
	"testing"

	migration "foodgram/cmd/database/migrate"
	"foodgram/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "First " + username,
		LastName:  "Last " + username,
		Password:  "not-a-hash",
		Role:      "user",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *entities.Ingredient {
	t.Helper()
	ingredient := &entities.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func CreateTag(t *testing.T, db *gorm.DB, name, color, slug string) *entities.Tag {
	t.Helper()
	tag := &entities.Tag{Name: name, Color: color, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// Line describes one ingredient line of a seeded recipe.
type Line struct {
	Ingredient *entities.Ingredient
	Amount     int
}

func CreateRecipe(t *testing.T, db *gorm.DB, author *entities.User, name string, tags []*entities.Tag, lines ...Line) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        "text of " + name,
		ImageURL:    "http://storage.local/recipes/" + name + ".png",
		CookingTime: 10,
	}
	for _, tag := range tags {
		recipe.Tags = append(recipe.Tags, *tag)
	}
	for _, line := range lines {
		recipe.Ingredients = append(recipe.Ingredients, entities.RecipeIngredient{
			IngredientID: line.Ingredient.ID,
			Amount:       line.Amount,
		})
	}
	require.NoError(t, db.Omit("Author", "Tags.*").Create(recipe).Error)
	return recipe
}

func AddToCart(t *testing.T, db *gorm.DB, user *entities.User, recipe *entities.Recipe) {
	t.Helper()
	require.NoError(t, db.Create(&entities.CartEntry{UserID: user.ID, RecipeID: recipe.ID}).Error)
}

func AddFavorite(t *testing.T, db *gorm.DB, user *entities.User, recipe *entities.Recipe) {
	t.Helper()
	require.NoError(t, db.Create(&entities.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error)
}

func MustParse(t *testing.T, id string) uuid.UUID {
	t.Helper()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	return parsed
}

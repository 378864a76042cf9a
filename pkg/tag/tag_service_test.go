package tag

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewTagService(NewTagRepository(db))
	ctx := context.Background()

	dinner, err := service.CreateTag(ctx, domain.TagRequest{Name: "Ужин", Color: "#49b64e", Slug: "dinner"})
	require.NoError(t, err)
	assert.Equal(t, "#49B64E", dinner.Color)

	breakfast, err := service.CreateTag(ctx, domain.TagRequest{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"})
	require.NoError(t, err)

	t.Run("duplicates are rejected", func(t *testing.T) {
		_, err := service.CreateTag(ctx, domain.TagRequest{Name: "Другой", Color: "#000000", Slug: "dinner"})
		assert.ErrorIs(t, err, domain.ErrTagExists)

		_, err = service.CreateTag(ctx, domain.TagRequest{Name: "Другой", Color: "#49B64E", Slug: "other"})
		assert.ErrorIs(t, err, domain.ErrTagExists)

		_, err = service.UpdateTag(ctx, breakfast.ID, domain.TagRequest{Name: "Ужин", Color: "#E26C2D", Slug: "breakfast"})
		assert.ErrorIs(t, err, domain.ErrTagExists)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		tags, err := service.GetTags(ctx)
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "Завтрак", tags[0].Name)
		assert.Equal(t, "Ужин", tags[1].Name)
	})

	t.Run("update keeps own values", func(t *testing.T) {
		res, err := service.UpdateTag(ctx, breakfast.ID, domain.TagRequest{Name: "Завтрак", Color: "#E26C2D", Slug: "morning"})
		require.NoError(t, err)
		assert.Equal(t, "morning", res.Slug)
	})

	t.Run("delete unlinks recipes", func(t *testing.T) {
		author := testutil.CreateUser(t, db, "author")
		tag, err := NewTagRepository(db).GetTagByID(ctx, dinner.ID)
		require.NoError(t, err)
		recipe := testutil.CreateRecipe(t, db, author, "steak", []*entities.Tag{tag})

		require.NoError(t, service.DeleteTag(ctx, dinner.ID))
		assert.ErrorIs(t, service.DeleteTag(ctx, dinner.ID), domain.ErrTagNotFound)

		var links int64
		require.NoError(t, db.Table("recipe_tags").Where("recipe_id = ?", recipe.ID).Count(&links).Error)
		assert.Zero(t, links)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetTag(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrTagNotFound)

		_, err = service.GetTag(ctx, "bad-id")
		assert.ErrorIs(t, err, domain.ErrTagNotFound)
	})
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	previous := config
	t.Cleanup(func() { config = previous })
}

func TestParseConfigDefaults(t *testing.T) {
	resetConfig(t)

	require.NoError(t, ParseConfig([]byte("DB_HOST: localhost\nJWT_SECRET: s3cret\n")))
	assert.Equal(t, "localhost", GetConfig("DB_HOST"))
	assert.Equal(t, "s3cret", GetConfig("JWT_SECRET"))
	assert.Equal(t, "8000", GetConfig("APP_PORT"))
	assert.Equal(t, "6", GetConfig("PAGE_SIZE"))
	assert.Equal(t, "100", GetConfig("MAX_PAGE_SIZE"))
	assert.Empty(t, GetConfig("UNKNOWN_KEY"))
}

func TestParseConfigInvalid(t *testing.T) {
	resetConfig(t)
	assert.Error(t, ParseConfig([]byte("PAGE_SIZE: [1, 2")))
}

func TestGetIntConfig(t *testing.T) {
	resetConfig(t)
	require.NoError(t, ParseConfig([]byte("PAGE_SIZE: 12\nDB_PORT: abc\n")))

	assert.Equal(t, 12, GetIntConfig("PAGE_SIZE", 6))
	assert.Equal(t, 5432, GetIntConfig("DB_PORT", 5432))
	assert.Equal(t, 7, GetIntConfig("UNKNOWN_KEY", 7))
}

func TestNormalizePage(t *testing.T) {
	resetConfig(t)
	require.NoError(t, ParseConfig([]byte("PAGE_SIZE: 6\nMAX_PAGE_SIZE: 50\n")))

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 6},
		{name: "negative", page: -3, limit: -1, wantPage: 1, wantLimit: 6},
		{name: "within bounds", page: 4, limit: 20, wantPage: 4, wantLimit: 20},
		{name: "capped", page: 2, limit: 500, wantPage: 2, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)
	assert.True(t, CheckPassword(hashed, "correct horse"))
	assert.False(t, CheckPassword(hashed, "battery staple"))
}

func TestCustomValidators(t *testing.T) {
	InitValidator()

	type payload struct {
		Slug     string `validate:"required,slug"`
		Username string `validate:"required,username"`
		Color    string `validate:"required,len=7,startswith=#,hexcolor"`
	}

	valid := payload{Slug: "late-dinner_2", Username: "chef.anna+1@home", Color: "#E26C2D"}
	assert.NoError(t, Validate.Struct(valid))

	tests := map[string]payload{
		"slug with spaces":    {Slug: "late dinner", Username: "chef", Color: "#E26C2D"},
		"cyrillic slug":       {Slug: "ужин", Username: "chef", Color: "#E26C2D"},
		"username with space": {Slug: "dinner", Username: "chef anna", Color: "#E26C2D"},
		"short color":         {Slug: "dinner", Username: "chef", Color: "#FFF"},
		"not hex":             {Slug: "dinner", Username: "chef", Color: "#GGGGGG"},
	}
	for name, p := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate.Struct(p))
		})
	}
}

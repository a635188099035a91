package menu_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"menu-manager/core/storage/mocks"
	"menu-manager/feature/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFindMatch_ExactPass(t *testing.T) {
	objects := []string{"drinks/iced-tea.png", "Caesar_Salad.png", "caesar salad.png"}

	t.Run("ExactWithExtension", func(t *testing.T) {
		match, ok := menu.FindMatch("Caesar_Salad.png", objects)
		require.True(t, ok)
		// First candidate in listing order wins
		assert.Equal(t, "Caesar_Salad.png", match)
	})

	t.Run("ExtensionAppended", func(t *testing.T) {
		// Spreadsheet omits ".png"; the second target covers it
		match, ok := menu.FindMatch("caesar salad", objects)
		require.True(t, ok)
		assert.Equal(t, "Caesar_Salad.png", match)
	})

	t.Run("PunctuationInsensitive", func(t *testing.T) {
		match, ok := menu.FindMatch("iced.tea", []string{"drinks/iced-tea.png"})
		_ = match
		// "iced tea" vs "drinks iced tea png": no exact match, fuzzy
		// containment hits
		require.True(t, ok)
	})
}

func TestFindMatch_FuzzyPass(t *testing.T) {
	t.Run("TargetInsideCandidate", func(t *testing.T) {
		match, ok := menu.FindMatch("caesar", []string{"caesar salad.png"})
		require.True(t, ok)
		assert.Equal(t, "caesar salad.png", match)
	})

	t.Run("CandidateInsideTarget", func(t *testing.T) {
		match, ok := menu.FindMatch("caesar salad deluxe", []string{"caesar salad"})
		require.True(t, ok)
		assert.Equal(t, "caesar salad", match)
	})

	t.Run("ExactBeatsFuzzy", func(t *testing.T) {
		match, ok := menu.FindMatch("salad", []string{"salad bowl.png", "salad.png"})
		require.True(t, ok)
		assert.Equal(t, "salad.png", match)
	})
}

func TestFindMatch_NoMatch(t *testing.T) {
	_, ok := menu.FindMatch("tiramisu", []string{"caesar salad.png", "iced tea.png"})
	assert.False(t, ok)
}

func TestFindMatch_EmptyFileName(t *testing.T) {
	_, ok := menu.FindMatch("", []string{"caesar salad.png"})
	assert.False(t, ok)
}

func TestResolver_Resolve(t *testing.T) {
	signed, _ := url.Parse("https://storage.example/menu-images/caesar%20salad.png?X-Amz-Signature=abc")

	t.Run("MatchMintsURL", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PresignedGetObject", mock.Anything, "menu-images", "caesar salad.png",
			168*time.Hour, mock.Anything).Return(signed, nil)

		r := menu.NewResolver(client, "menu-images", 168*time.Hour)
		got, err := r.Resolve(context.Background(), "caesar", []string{"caesar salad.png"})
		require.NoError(t, err)
		assert.Equal(t, signed.String(), got)
		client.AssertExpectations(t)
	})

	t.Run("EmptyFileNameNoStorageCall", func(t *testing.T) {
		client := new(mocks.Client)

		r := menu.NewResolver(client, "menu-images", 168*time.Hour)
		got, err := r.Resolve(context.Background(), "", []string{"caesar salad.png"})
		require.NoError(t, err)
		assert.Equal(t, "", got)
		client.AssertNotCalled(t, "PresignedGetObject",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissYieldsEmptyNotError", func(t *testing.T) {
		client := new(mocks.Client)

		r := menu.NewResolver(client, "menu-images", 168*time.Hour)
		got, err := r.Resolve(context.Background(), "tiramisu", []string{"caesar salad.png"})
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestNeedsResolution(t *testing.T) {
	assert.True(t, menu.NeedsResolution(""))
	assert.True(t, menu.NeedsResolution("gs://bucket/caesar.png"))
	assert.False(t, menu.NeedsResolution("https://cdn.example/caesar.png"))
}

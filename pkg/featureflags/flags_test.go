package featureflags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubredditSuggestions_EnabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, SubredditSuggestions))
	assert.True(t, manager.IsEnabled(ctx, JSONAPI))
}

func TestSubredditSuggestions_DisabledWhenFlagSet(t *testing.T) {
	t.Setenv("TEST_FEATURE_SUBREDDIT_SUGGESTIONS", "false")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.False(t, manager.IsEnabled(context.Background(), SubredditSuggestions))
}

func TestEnvManager_UnknownFlagDisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")

	assert.False(t, manager.IsEnabled(context.Background(), "not_a_flag"))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"on", "on", true},
		{"false", "false", false},
		{"0", "0", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FLAG", tt.value)

			manager := NewEnvManager("TEST_")

			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), "FLAG"))
		})
	}
}

func TestEnvManager_EmptyValueFallsBackToDefault(t *testing.T) {
	t.Setenv("TEST_FEATURE_JSON_API", "")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.True(t, manager.IsEnabled(context.Background(), JSONAPI))
}

func TestEnvManager_SetEnabledOverridesEnvironment(t *testing.T) {
	t.Setenv("TEST_FEATURE_JSON_API", "true")

	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(JSONAPI, false)

	assert.False(t, manager.IsEnabled(context.Background(), JSONAPI))
}

func TestEnvManager_DefaultPrefix(t *testing.T) {
	t.Setenv("FEATURE_SUBREDDIT_SUGGESTIONS", "0")

	manager := NewEnvManager("")

	assert.False(t, manager.IsEnabled(context.Background(), SubredditSuggestions))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(SubredditSuggestions, false)

	flags := manager.GetAllFlags()

	assert.Len(t, flags, len(Defaults))
	assert.False(t, flags[SubredditSuggestions])
	assert.True(t, flags[JSONAPI])
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		SubredditSuggestions: false,
	})
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, SubredditSuggestions))
	assert.True(t, manager.IsEnabled(ctx, JSONAPI), "missing flags fall back to defaults")

	manager.SetEnabled(SubredditSuggestions, true)
	assert.True(t, manager.IsEnabled(ctx, SubredditSuggestions))

	flags := manager.GetAllFlags()
	assert.True(t, flags[SubredditSuggestions])
	assert.True(t, flags[JSONAPI])
}

func TestNewStaticManager_NilMap(t *testing.T) {
	manager := NewStaticManager(nil)

	assert.NotPanics(t, func() {
		manager.SetEnabled(JSONAPI, false)
	})
	assert.False(t, manager.IsEnabled(context.Background(), JSONAPI))
}

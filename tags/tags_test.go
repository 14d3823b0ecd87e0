package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryQueries(t *testing.T) {
	assert.True(t, CategoryPlayer.Targetable())
	assert.True(t, CategoryDecoy.Targetable())
	assert.False(t, CategoryEnemy.Targetable())

	assert.True(t, CategoryPlayer.SplashDamageable())
	assert.False(t, CategoryEnemy.SplashDamageable())
	assert.False(t, CategoryDecoy.SplashDamageable())
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "decoy", CategoryDecoy.String())
	assert.Equal(t, "unknown", Category(99).String())
	assert.Equal(t, ResolvEnemy, ResolvTag(CategoryEnemy))
	assert.Empty(t, ResolvTag(CategoryEffect))
}

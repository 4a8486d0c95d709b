package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tgienger/todo/internal/config"
)

func TestUse(t *testing.T) {
	t.Cleanup(func() { Current = TokyoNight })

	assert.True(t, Use("mono"))
	assert.Equal(t, "Mono", Current.Name)

	assert.False(t, Use("solarized"))
	assert.Equal(t, "Mono", Current.Name, "unknown theme keeps the current one")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 40, ContentWidth(40))
	assert.Equal(t, MaxWidth, ContentWidth(200))
	assert.Equal(t, MaxWidth, ContentWidth(0), "no size yet")
}

func TestConfigThemesExist(t *testing.T) {
	for _, name := range config.Themes {
		_, ok := Themes[name]
		assert.True(t, ok, "theme %q has no palette", name)
	}
}

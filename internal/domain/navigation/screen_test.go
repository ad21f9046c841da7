package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_RutasUnicasYReversibles(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Screens() {
		r := s.Route()
		require.NotEmpty(t, r, "pantalla %d sin ruta", s)
		assert.False(t, seen[r], "ruta repetida %q", r)
		seen[r] = true

		back, ok := ParseRoute(r)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}
	assert.Len(t, seen, 13)
}

func TestScreen_FueraDeEnumeracion(t *testing.T) {
	assert.Equal(t, "", Screen(0).Route())
	assert.Equal(t, "", Screen(99).Route())
	_, ok := ParseRoute("nope")
	assert.False(t, ok)
}

func TestBottomNavItems(t *testing.T) {
	items := BottomNavItems()
	require.Len(t, items, 4)
	assert.Equal(t, "Inicio", items[0].Title)
	assert.Equal(t, "home_screen", items[0].Route())
	assert.Equal(t, "profile_screen", items[3].Route())
}

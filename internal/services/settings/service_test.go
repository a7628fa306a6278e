package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/preferences"
	"github.com/thenoetrevino/tick/internal/repository"
)

func newService() Service {
	return NewService(repository.NewSettingsRepo(preferences.NewMemory(), 0), nil)
}

func TestSetTheme_RoundTrip(t *testing.T) {
	svc := newService()
	assert.Equal(t, models.ThemeSystem, svc.Theme())

	require.NoError(t, svc.SetTheme(models.ThemeDark))
	assert.Equal(t, models.ThemeDark, svc.Theme())
}

func TestSetTheme_StoresCanonicalName(t *testing.T) {
	prefs := preferences.NewMemory()
	svc := NewService(repository.NewSettingsRepo(prefs, 0), nil)

	require.NoError(t, svc.SetTheme(models.Theme(" dark ")))

	raw, ok := prefs.Get(repository.ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "DARK", raw)
	assert.Equal(t, models.ThemeDark, svc.Theme())
}

func TestSetTheme_RejectsUnknown(t *testing.T) {
	svc := newService()

	err := svc.SetTheme(models.Theme("NEON"))
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.Equal(t, models.ThemeSystem, svc.Theme())
}

func TestSubscribeTheme(t *testing.T) {
	svc := newService()
	sub := svc.SubscribeTheme()
	defer sub.Close()

	recv := func() models.Theme {
		select {
		case v := <-sub.C():
			return v
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for theme")
			return ""
		}
	}

	assert.Equal(t, models.ThemeSystem, recv())
	require.NoError(t, svc.SetTheme(models.ThemeLight))
	assert.Equal(t, models.ThemeLight, recv())
}

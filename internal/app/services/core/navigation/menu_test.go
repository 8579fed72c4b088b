package navigation

import (
	"docai-portal/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuFor(t *testing.T) {
	t.Run("doctor menu carries the pending badge", func(t *testing.T) {
		menu := MenuFor(models.RoleDoctor, 4)

		assert.Equal(t, "/doctor/login", menu.LogoutRoute)
		require.Len(t, menu.Items, 3)
		require.NotNil(t, menu.Items[2].Badge)
		assert.Equal(t, 4, *menu.Items[2].Badge)
		assert.Nil(t, menu.Items[0].Badge)
	})

	t.Run("no badge without pending reviews", func(t *testing.T) {
		menu := MenuFor(models.RoleDoctor, 0)
		assert.Nil(t, menu.Items[2].Badge)
	})

	t.Run("patient menu", func(t *testing.T) {
		menu := MenuFor(models.RolePatient, 0)

		assert.Equal(t, "Patient Portal", menu.Title)
		assert.Equal(t, "/patient/login", menu.LogoutRoute)
		assert.Len(t, menu.Items, 5)
	})

	t.Run("menus do not share badge state", func(t *testing.T) {
		MenuFor(models.RoleDoctor, 7)
		assert.Nil(t, items[models.RoleDoctor][2].Badge)
	})
}

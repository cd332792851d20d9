//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packsmart/packsmart-service/config"
)

func TestInitializeDatabase(t *testing.T) {
	t.Run("disabled returns nil", func(t *testing.T) {
		components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
		assert.Nil(t, components)
	})

	t.Run("malformed URI returns nil instead of failing startup", func(t *testing.T) {
		components := InitializeDatabase(config.DatabaseConfig{
			Enabled:      true,
			URI:          "not-a-valid-uri",
			DatabaseName: "packsmart",
		})
		assert.Nil(t, components)
	})
}

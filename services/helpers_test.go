package services

import (
	"testing"

	"recipe-app/infra"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	require.NoError(t, infra.MigrateTokenDB(db))
	return db
}

func newTestHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

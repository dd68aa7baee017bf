package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	"github.com/techagentng/citizenrate/db/dbtest"
	"github.com/techagentng/citizenrate/models"
)

func useTestDB(t *testing.T) *db.GormDB {
	t.Helper()
	gormDB := db.NewGormDB(dbtest.Open(t))
	origLoad, origConnect := loadConfig, connect
	loadConfig = func() (*config.Config, error) { return &config.Config{JWTSecret: "cli-secret"}, nil }
	connect = func(*config.Config) *db.GormDB { return gormDB }
	t.Cleanup(func() { loadConfig, connect = origLoad, origConnect })
	return gormDB
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedRunsOnce(t *testing.T) {
	gormDB := useTestDB(t)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 5 districts, 5 institutions, 5 positions, 5 nominees")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	var count int64
	require.NoError(t, gormDB.DB.Model(&models.District{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestMigrate(t *testing.T) {
	gormDB := useTestDB(t)
	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema is up to date")
	assert.True(t, gormDB.DB.Migrator().HasTable(&models.Nominee{}))
}

func TestCreateAdmin(t *testing.T) {
	gormDB := useTestDB(t)

	out, err := run(t, "create-admin", "--name", "Root", "--email", "Root@Example.com", "--password", "password123")
	require.NoError(t, err)
	assert.Contains(t, out, "root@example.com")

	var user models.User
	require.NoError(t, gormDB.DB.Where("email = ?", "root@example.com").First(&user).Error)
	assert.True(t, user.IsAdmin())

	_, err = run(t, "create-admin", "--name", "Root", "--email", "root@example.com")
	assert.Error(t, err)
}

package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdminOnlyOnce(t *testing.T) {
	setupTestDB(t)
	Migrate()

	SeedAdmin("admin@rdclab.in", "first-password")
	SeedAdmin("admin@rdclab.in", "other-password")

	var count int64
	DB.Model(&Admin{}).Count(&count)
	assert.Equal(t, int64(1), count)

	admin, err := GetAdminByEmail("admin@rdclab.in")
	require.NoError(t, err)
	// Stored value is a bcrypt hash of the first seed, never plaintext.
	assert.NotEqual(t, "first-password", admin.Password)
	assert.NoError(t, VerifyPassword("first-password", admin.Password))
	assert.Error(t, VerifyPassword("other-password", admin.Password))
}

func TestSeedAdminTrimsEmail(t *testing.T) {
	setupTestDB(t)
	Migrate()

	// An env value with stray whitespace must seed once and stay seeded.
	SeedAdmin("  admin@rdclab.in \n", "secret123")
	SeedAdmin("  admin@rdclab.in \n", "secret123")

	var count int64
	DB.Model(&Admin{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err := GetAdminByEmail("admin@rdclab.in")
	assert.NoError(t, err)
}

func TestLoginCheck(t *testing.T) {
	setupTestDB(t)
	Migrate()
	t.Setenv("API_SECRET", "test-secret")

	SeedAdmin("admin@rdclab.in", "secret123")

	token, err := LoginCheck("admin@rdclab.in", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = LoginCheck("admin@rdclab.in", "wrong")
	assert.Error(t, err)

	_, err = LoginCheck("nobody@rdclab.in", "secret123")
	assert.Error(t, err)
}

func TestUpdateAdminPassword(t *testing.T) {
	setupTestDB(t)
	Migrate()
	t.Setenv("API_SECRET", "test-secret")

	SeedAdmin("admin@rdclab.in", "old-password")

	require.NoError(t, UpdateAdminPassword("admin@rdclab.in", "new-password"))

	_, err := LoginCheck("admin@rdclab.in", "old-password")
	assert.Error(t, err)
	_, err = LoginCheck("admin@rdclab.in", "new-password")
	assert.NoError(t, err)

	assert.Error(t, UpdateAdminPassword("nobody@rdclab.in", "whatever"))
}

func TestUpdateLeadStatusTouchesOnlyTargetRow(t *testing.T) {
	setupTestDB(t)
	Migrate()

	require.NoError(t, CreateLead(&Lead{Name: "Asha", Mobile: "9999999999", TestName: "CBC"}))
	require.NoError(t, CreateLead(&Lead{Name: "Ravi", Mobile: "8888888888", TestName: "Thyroid"}))

	require.NoError(t, UpdateLeadStatus(1, "done"))

	var first, second Lead
	require.NoError(t, DB.First(&first, 1).Error)
	require.NoError(t, DB.First(&second, 2).Error)
	assert.Equal(t, "done", first.Status)
	assert.Equal(t, "pending", second.Status)

	assert.Error(t, UpdateLeadStatus(99, "done"))
}

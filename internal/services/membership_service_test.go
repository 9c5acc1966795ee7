package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/models"
	"github.com/yolda/logistics-api/internal/repository"
)

func newMembershipService(t *testing.T) (*MembershipService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OrgUser{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewMembershipService(repository.NewOrgUserRepository(db)), db
}

func TestMembershipService_AssignRole_Idempotent(t *testing.T) {
	svc, db := newMembershipService(t)

	first, err := svc.AssignRole(1, 2, models.RoleCorporateAdmin, models.StatusActive)
	require.NoError(t, err)
	require.Equal(t, models.RoleCorporateAdmin, first.Role)

	// Assigning the same role again reuses the row instead of inserting.
	second, err := svc.AssignRole(1, 2, models.RoleCorporateAdmin, models.StatusActive)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, models.RoleCorporateAdmin, second.Role)

	var count int64
	require.NoError(t, db.Model(&models.OrgUser{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestMembershipService_AssignRole_OverwritesRoleAndStatus(t *testing.T) {
	svc, _ := newMembershipService(t)

	_, err := svc.AssignRole(1, 2, models.RoleCorporateAdmin, models.StatusActive)
	require.NoError(t, err)

	demoted, err := svc.AssignRole(1, 2, models.RoleCorporateUser, models.StatusSuspended)
	require.NoError(t, err)
	require.Equal(t, models.RoleCorporateUser, demoted.Role)
	require.Equal(t, models.StatusSuspended, demoted.Status)
}

func TestMembershipService_IsActiveAdmin(t *testing.T) {
	svc, _ := newMembershipService(t)

	// No row at all.
	ok, err := svc.IsActiveAdmin(1, 2)
	require.NoError(t, err)
	require.False(t, ok)

	// Active but not an admin.
	_, err = svc.AssignRole(1, 2, models.RoleCorporateUser, models.StatusActive)
	require.NoError(t, err)
	ok, err = svc.IsActiveAdmin(1, 2)
	require.NoError(t, err)
	require.False(t, ok)

	// Admin but suspended.
	_, err = svc.AssignRole(1, 2, models.RoleCorporateAdmin, models.StatusSuspended)
	require.NoError(t, err)
	ok, err = svc.IsActiveAdmin(1, 2)
	require.NoError(t, err)
	require.False(t, ok)

	// Admin and active.
	_, err = svc.AssignRole(1, 2, models.RoleCorporateAdmin, models.StatusActive)
	require.NoError(t, err)
	ok, err = svc.IsActiveAdmin(1, 2)
	require.NoError(t, err)
	require.True(t, ok)

	// Membership in one organization says nothing about another.
	ok, err = svc.IsActiveAdmin(9, 2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMembershipService_ListMembers(t *testing.T) {
	svc, _ := newMembershipService(t)

	_, err := svc.AssignRole(1, 2, models.RoleCorporateAdmin, models.StatusActive)
	require.NoError(t, err)
	_, err = svc.AssignRole(1, 3, models.RoleCorporateUser, models.StatusActive)
	require.NoError(t, err)
	_, err = svc.AssignRole(7, 2, models.RoleCorporateAdmin, models.StatusActive)
	require.NoError(t, err)

	members, err := svc.ListMembers(1)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

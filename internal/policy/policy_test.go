package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeAdmins struct {
	admins map[[2]uint64]bool
}

func (f *fakeAdmins) IsActiveAdmin(organizationID, userID uint64) (bool, error) {
	return f.admins[[2]uint64{organizationID, userID}], nil
}

func u(v uint64) *uint64 { return &v }

func TestCanAccess_Owner(t *testing.T) {
	admins := &fakeAdmins{admins: map[[2]uint64]bool{}}

	ok, err := CanAccess(Owned{OwnerUserID: u(1)}, 1, admins)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CanAccess(Owned{OwnerUserID: u(1)}, 2, admins)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanAccess_OrgAdmin(t *testing.T) {
	admins := &fakeAdmins{admins: map[[2]uint64]bool{
		{10, 2}: true,
	}}

	res := Owned{OwnerUserID: u(1), OrganizationID: u(10)}

	ok, err := CanAccess(res, 2, admins)
	require.NoError(t, err)
	require.True(t, ok, "active admin of the linked org can access")

	ok, err = CanAccess(res, 3, admins)
	require.NoError(t, err)
	require.False(t, ok, "non-admin non-owner cannot access")
}

func TestCanAccess_NoOwnerNoOrg(t *testing.T) {
	admins := &fakeAdmins{admins: map[[2]uint64]bool{}}

	ok, err := CanAccess(Owned{}, 1, admins)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanCreateUnder(t *testing.T) {
	admins := &fakeAdmins{admins: map[[2]uint64]bool{
		{10, 1}: true,
	}}

	ok, err := CanCreateUnder(nil, 99, admins)
	require.NoError(t, err)
	require.True(t, ok, "personal create needs no membership")

	ok, err = CanCreateUnder(u(10), 1, admins)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CanCreateUnder(u(10), 2, admins)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOrganizationRules(t *testing.T) {
	admins := &fakeAdmins{admins: map[[2]uint64]bool{
		{10, 2}: true,
	}}

	// Owner may read even without a membership row.
	ok, err := CanReadOrganization(1, 10, 1, admins)
	require.NoError(t, err)
	require.True(t, ok)

	// Admin may read.
	ok, err = CanReadOrganization(1, 10, 2, admins)
	require.NoError(t, err)
	require.True(t, ok)

	// Stranger may not.
	ok, err = CanReadOrganization(1, 10, 3, admins)
	require.NoError(t, err)
	require.False(t, ok)

	// Mutation requires an active admin membership; ownership alone fails.
	ok, err = CanMutateOrganization(10, 1, admins)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = CanMutateOrganization(10, 2, admins)
	require.NoError(t, err)
	require.True(t, ok)
}

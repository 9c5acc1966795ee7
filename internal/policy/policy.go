// Package policy holds the ownership rules governing who may see or change
// marketplace resources. Vehicles and loads share one rule; organizations
// carry their own because the membership relation hangs off them.
package policy

// AdminChecker answers whether a user currently holds an active admin
// membership in an organization. Absence of a membership row is not an
// error, it is simply "no".
type AdminChecker interface {
	IsActiveAdmin(organizationID, userID uint64) (bool, error)
}

// Owned is the ownership shape shared by vehicles and loads: an optional
// personal owner and an optional organization link.
type Owned struct {
	OwnerUserID    *uint64
	OrganizationID *uint64
}

// CanAccess reports whether the caller may see or mutate an owned resource:
// the caller is its owner, or the resource is linked to an organization the
// caller actively administers. Read and write share this predicate; only
// the failure status differs (404 before the row is confirmed to the
// caller, 403 after).
func CanAccess(res Owned, callerID uint64, admins AdminChecker) (bool, error) {
	if res.OwnerUserID != nil && *res.OwnerUserID == callerID {
		return true, nil
	}
	if res.OrganizationID != nil {
		return admins.IsActiveAdmin(*res.OrganizationID, callerID)
	}
	return false, nil
}

// CanCreateUnder reports whether the caller may create a resource with the
// given organization link. A personally owned create (nil organization)
// needs no membership at all.
func CanCreateUnder(organizationID *uint64, callerID uint64, admins AdminChecker) (bool, error) {
	if organizationID == nil {
		return true, nil
	}
	return admins.IsActiveAdmin(*organizationID, callerID)
}

// CanReadOrganization reports whether the caller may see an organization:
// its recorded owner or any active admin.
func CanReadOrganization(ownerUserID, organizationID, callerID uint64, admins AdminChecker) (bool, error) {
	if ownerUserID == callerID {
		return true, nil
	}
	return admins.IsActiveAdmin(organizationID, callerID)
}

// CanMutateOrganization reports whether the caller may update or delete an
// organization. Only an active admin membership counts; ownership alone is
// not enough once the owner's membership has been revoked.
func CanMutateOrganization(organizationID, callerID uint64, admins AdminChecker) (bool, error) {
	return admins.IsActiveAdmin(organizationID, callerID)
}

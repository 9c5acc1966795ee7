package models

// Unit is the measurement unit for vehicle capacity and load quantity.
type Unit string

const (
	UnitKG    Unit = "KG"
	UnitTon   Unit = "TON"
	UnitLitre Unit = "LITRE"
)

// Valid reports whether the value is one of the declared units.
func (u Unit) Valid() bool {
	switch u {
	case UnitKG, UnitTon, UnitLitre:
		return true
	}
	return false
}

// Category classifies what kind of cargo a load carries.
type Category string

const (
	CategoryFood      Category = "GIDA"
	CategoryDangerous Category = "TEHLIKELI"
	CategoryGeneral   Category = "GENEL"
)

// Valid reports whether the value is one of the declared categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryDangerous, CategoryGeneral:
		return true
	}
	return false
}

// OrgRole is a user's role inside an organization.
type OrgRole string

const (
	RoleCorporateAdmin OrgRole = "corporate_admin"
	RoleCorporateUser  OrgRole = "corporate_user"
)

// GenericStatus is shared by users, organizations, memberships and resources.
type GenericStatus string

const (
	StatusActive    GenericStatus = "active"
	StatusInactive  GenericStatus = "inactive"
	StatusSuspended GenericStatus = "suspended"
)

type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchAccepted  MatchStatus = "accepted"
	MatchRejected  MatchStatus = "rejected"
	MatchCompleted MatchStatus = "completed"
)

type MembershipPlan string

const (
	PlanFree     MembershipPlan = "free"
	PlanPro      MembershipPlan = "pro"
	PlanBusiness MembershipPlan = "business"
)

type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ActorType identifies which kind of authenticated identity performed an
// operation. Admin actors bypass store-ownership checks; store-user actors are
// scoped to the store they own.
type ActorType string

const (
	// ActorTypeAdmin indicates a platform administrator.
	ActorTypeAdmin ActorType = "admin"
	// ActorTypeStoreUser indicates a seller restricted to their own store.
	ActorTypeStoreUser ActorType = "store_user"
)

// String returns the string representation of the ActorType.
func (t ActorType) String() string {
	return string(t)
}

// Actor is the resolved identity on whose behalf an archive, restore or
// delete operation runs. StoreID is empty for admin actors.
type Actor struct {
	ID      int64     // Identity record id (admin_user.id or store_user.id).
	Name    string    // Display name used for the activity log.
	Type    ActorType // admin or store_user.
	StoreID string    // The store this actor owns; empty for admins.
}

// IsScoped reports whether ownership checks apply to this actor.
func (a Actor) IsScoped() bool {
	return a.Type == ActorTypeStoreUser
}

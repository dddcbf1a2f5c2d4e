package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusAccepted.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, ApplicationStatus("approved").IsValid())
	assert.False(t, ApplicationStatus("").IsValid())
}

func TestStoreUser_Actor(t *testing.T) {
	seller := &StoreUser{
		ID:         5,
		FirstName:  "Maria",
		LastName:   "Santos",
		StoreOwned: "store-1",
	}

	actor := seller.Actor()

	assert.Equal(t, int64(5), actor.ID)
	assert.Equal(t, "Maria Santos", actor.Name)
	assert.Equal(t, ActorTypeStoreUser, actor.Type)
	assert.Equal(t, "store-1", actor.StoreID)
	assert.True(t, actor.IsScoped())
}

func TestActor_AdminIsNotScoped(t *testing.T) {
	admin := Actor{ID: 1, Name: "Admin One", Type: ActorTypeAdmin}

	assert.False(t, admin.IsScoped())
	assert.Empty(t, admin.StoreID)
}

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcbanda/commission-engine/commission"
	"github.com/mcbanda/commission-engine/commission/store"
)

func TestMemory_UserLifecycle(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.CreateUser(ctx, commission.User{ID: "ana", Name: "Ana", Role: commission.RoleSeller, AssignedHours: 35}))
	require.NoError(t, mem.CreateUser(ctx, commission.User{ID: "juan", Name: "Juan", Role: commission.RoleSeller, AssignedHours: 20}))

	users, err := mem.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ana", users[0].ID, "list keeps insertion order")

	require.NoError(t, mem.DeleteUser(ctx, "ana"))
	users, err = mem.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "juan", users[0].ID)

	err = mem.DeleteUser(ctx, "ana")
	assert.ErrorIs(t, err, commission.ErrUserNotFound)
}

func TestMemory_RecreateAfterDelete(t *testing.T) {
	// GIVEN: A member that was deleted from the roster
	// WHEN: Creating a member under the same id again
	// THEN: The roster lists them exactly once

	mem := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.CreateUser(ctx, commission.User{ID: "ana", Name: "Ana", Role: commission.RoleSeller, AssignedHours: 35}))
	require.NoError(t, mem.DeleteUser(ctx, "ana"))
	require.NoError(t, mem.CreateUser(ctx, commission.User{ID: "ana", Name: "Ana", Role: commission.RoleSeller, AssignedHours: 35}))

	users, err := mem.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].ID)
}

func TestMemory_CreateUserIsUpsert(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.CreateUser(ctx, commission.User{ID: "ana", Name: "Ana", Role: commission.RoleSeller, AssignedHours: 35}))
	require.NoError(t, mem.CreateUser(ctx, commission.User{ID: "ana", Name: "Ana María", Role: commission.RoleSeller, AssignedHours: 30}))

	users, err := mem.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana María", users[0].Name)
	assert.Equal(t, 30.0, users[0].AssignedHours)
}

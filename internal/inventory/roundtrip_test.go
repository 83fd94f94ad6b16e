package inventory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vehicle-manager/internal/fakeinventory"
	"vehicle-manager/internal/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeInventory(t *testing.T) *inventory.Manager {
	t.Helper()

	handler := fakeinventory.NewHandler(fakeinventory.NewStore())
	server := httptest.NewServer(handler.NewRouter())
	t.Cleanup(server.Close)

	return inventory.NewManager(server.URL)
}

func TestManager_AddThenGetRoundTrip(t *testing.T) {
	manager := newFakeInventory(t)
	ctx := context.Background()

	vehicle := inventory.NewVehicle("Toyota", "Camry", 2021, "red", 21000.75, 55.7522, 37.6156)

	created, err := manager.AddVehicle(ctx, vehicle)
	require.NoError(t, err)
	require.NotNil(t, created.ID)

	fetched, err := manager.GetVehicle(ctx, *created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, fetched)
	assert.Equal(t, vehicle.Name, fetched.Name)
	assert.Equal(t, vehicle.Model, fetched.Model)
	assert.Equal(t, vehicle.Year, fetched.Year)
	assert.Equal(t, vehicle.Color, fetched.Color)
	assert.Equal(t, vehicle.Price, fetched.Price)
	assert.Equal(t, vehicle.Latitude, fetched.Latitude)
	assert.Equal(t, vehicle.Longitude, fetched.Longitude)
}

func TestManager_Lifecycle(t *testing.T) {
	manager := newFakeInventory(t)
	ctx := context.Background()

	first, err := manager.AddVehicle(ctx, inventory.NewVehicle("Toyota", "Camry", 2021, "red", 21000, 55.7522, 37.6156))
	require.NoError(t, err)
	second, err := manager.AddVehicle(ctx, inventory.NewVehicle("Honda", "Civic", 2019, "blue", 18000, 55.7601, 37.6186))
	require.NoError(t, err)
	third, err := manager.AddVehicle(ctx, inventory.NewVehicle("Ford", "Focus", 2020, "red", 15000, 59.9386, 30.3141))
	require.NoError(t, err)

	vehicles, err := manager.GetVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)

	red, err := manager.FilterVehicles(ctx, inventory.Criteria{"color": "red"})
	require.NoError(t, err)
	require.Len(t, red, 2)
	assert.Equal(t, *first.ID, *red[0].ID)
	assert.Equal(t, *third.ID, *red[1].ID)

	nearest, err := manager.GetNearestVehicle(ctx, *first.ID)
	require.NoError(t, err)
	require.NotNil(t, nearest)
	assert.Equal(t, *second.ID, *nearest.ID)

	distance, err := manager.GetDistance(ctx, *first.ID, *second.ID)
	require.NoError(t, err)
	assert.InDelta(t, 898, distance, 5)

	second.Color = "black"
	updated, err := manager.UpdateVehicle(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "black", updated.Color)

	fetched, err := manager.GetVehicle(ctx, *second.ID)
	require.NoError(t, err)
	assert.Equal(t, "black", fetched.Color)

	resp, err := manager.DeleteVehicle(ctx, *second.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = manager.GetVehicle(ctx, *second.ID)
	assert.ErrorIs(t, err, inventory.ErrVehicleNotFound)

	nearest, err = manager.GetNearestVehicle(ctx, *first.ID)
	require.NoError(t, err)
	require.NotNil(t, nearest)
	assert.Equal(t, *third.ID, *nearest.ID)
}

func TestManager_UpdateUnknownVehicle(t *testing.T) {
	manager := newFakeInventory(t)

	vehicle := inventory.NewVehicle("Lada", "Niva", 1995, "green", 500, 0, 0)
	id := int64(404)
	vehicle.ID = &id

	_, err := manager.UpdateVehicle(context.Background(), vehicle)
	assert.ErrorIs(t, err, inventory.ErrVehicleNotFound)
}

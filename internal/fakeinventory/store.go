package fakeinventory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vehicle-manager/internal/inventory"
)

// ErrNotFound is returned when no vehicle has the requested id
var ErrNotFound = errors.New("vehicle not found")

// Store keeps vehicles in memory and hands out sequential ids
type Store struct {
	vehicles map[int64]inventory.Vehicle
	nextID   int64
	mu       sync.RWMutex
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		vehicles: make(map[int64]inventory.Vehicle),
		nextID:   1,
	}
}

// Create stores a copy of the vehicle under a fresh id, ignoring any id it carries
func (s *Store) Create(ctx context.Context, vehicle inventory.Vehicle) (inventory.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	vehicle.ID = &id
	s.vehicles[id] = vehicle
	return vehicle, nil
}

func (s *Store) Get(ctx context.Context, id int64) (inventory.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicle, exists := s.vehicles[id]
	if !exists {
		return inventory.Vehicle{}, ErrNotFound
	}
	return vehicle, nil
}

// Update replaces the vehicle stored under id
func (s *Store) Update(ctx context.Context, id int64, vehicle inventory.Vehicle) (inventory.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vehicles[id]; !exists {
		return inventory.Vehicle{}, ErrNotFound
	}

	vehicle.ID = &id
	s.vehicles[id] = vehicle
	return vehicle, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vehicles[id]; !exists {
		return ErrNotFound
	}

	delete(s.vehicles, id)
	return nil
}

// List returns all vehicles ordered by id
func (s *Store) List(ctx context.Context) ([]inventory.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]inventory.Vehicle, 0, len(s.vehicles))
	for _, vehicle := range s.vehicles {
		result = append(result, vehicle)
	}

	sort.Slice(result, func(i, j int) bool {
		return *result[i].ID < *result[j].ID
	})

	return result, nil
}

package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"saree-shop/internal/models"
)

// UserService stores user accounts and their embedded address books.
//
// Every address mutation leaves the owning user with exactly one default
// address whenever the list is non-empty. The fixup runs under the store
// lock, so concurrent edits to one address book cannot leave two defaults.
type UserService struct {
	mu      sync.RWMutex
	users   map[string]*models.User // user_id -> user
	byEmail map[string]string       // lowercase email -> user_id
}

func NewUserService() *UserService {
	return &UserService{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserService) GetByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return models.User{}, false
	}
	return cloneUser(user), true
}

func (s *UserService) GetByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byEmail[emailKey(email)]
	if !exists {
		return models.User{}, false
	}
	return cloneUser(s.users[id]), true
}

// Create registers a user with an empty address book. The password is
// stored as given; callers hash it first.
func (s *UserService) Create(data models.NewUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(data.Email)
	if _, exists := s.byEmail[key]; exists {
		return models.User{}, ErrEmailTaken
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     strings.TrimSpace(data.Email),
		Password:  data.Password,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Addresses: []models.Address{},
	}
	s.users[user.ID] = user
	s.byEmail[key] = user.ID

	return cloneUser(user), nil
}

func (s *UserService) ListAddresses(userID string) ([]models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	return cloneAddresses(user.Addresses), nil
}

// AddAddress appends an address. The first address, or one marked
// default, becomes the only default.
func (s *UserService) AddAddress(userID string, input models.AddressInput) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return models.Address{}, fmt.Errorf("add address: %w", ErrUserNotFound)
	}

	address := input.ToAddress(uuid.NewString())
	if len(user.Addresses) == 0 || input.IsDefault {
		clearDefault(user.Addresses)
		address.IsDefault = true
	}
	user.Addresses = append(user.Addresses, address)

	return address, nil
}

// UpdateAddress replaces the fields of one of the user's addresses.
func (s *UserService) UpdateAddress(userID, addressID string, input models.AddressInput) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return models.Address{}, fmt.Errorf("update address: %w", ErrUserNotFound)
	}

	index := indexOfAddress(user.Addresses, addressID)
	if index == -1 {
		return models.Address{}, ErrAddressNotFound
	}

	if input.IsDefault {
		clearDefault(user.Addresses)
	}
	user.Addresses[index] = input.ToAddress(addressID)
	ensureDefault(user.Addresses)

	return user.Addresses[index], nil
}

// DeleteAddress removes an address and reports whether one was removed.
// When the default goes, the first remaining address takes over.
func (s *UserService) DeleteAddress(userID, addressID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return false, fmt.Errorf("delete address: %w", ErrUserNotFound)
	}

	index := indexOfAddress(user.Addresses, addressID)
	if index == -1 {
		return false, nil
	}

	user.Addresses = append(user.Addresses[:index], user.Addresses[index+1:]...)
	ensureDefault(user.Addresses)

	return true, nil
}

func indexOfAddress(addresses []models.Address, id string) int {
	for i, a := range addresses {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func clearDefault(addresses []models.Address) {
	for i := range addresses {
		addresses[i].IsDefault = false
	}
}

// ensureDefault marks the first address default when none is.
func ensureDefault(addresses []models.Address) {
	if len(addresses) == 0 {
		return
	}
	for _, a := range addresses {
		if a.IsDefault {
			return
		}
	}
	addresses[0].IsDefault = true
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneUser(u *models.User) models.User {
	user := *u
	user.Addresses = cloneAddresses(u.Addresses)
	return user
}

func cloneAddresses(addresses []models.Address) []models.Address {
	return append(make([]models.Address, 0, len(addresses)), addresses...)
}

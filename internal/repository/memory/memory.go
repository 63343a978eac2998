// Package memory holds map-backed repositories for local runs and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/contact-service/internal/domain"
	"github.com/spec-kit/contact-service/internal/repository"
)

// AccountRepository keeps accounts in memory.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	now      func() time.Time
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository returns an empty account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]domain.Account), now: time.Now}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return repository.ErrAlreadyExists
		}
	}
	account.CreatedAt = r.now().UTC()
	r.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &account, nil
}

func (r *AccountRepository) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Username == username {
			a := account
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Remove deletes an account, simulating out-of-band removal.
func (r *AccountRepository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
}

type storedContact struct {
	contact domain.Contact
	seq     uint64
}

// ContactRepository keeps contacts in memory.
type ContactRepository struct {
	mu       sync.Mutex
	contacts map[string]storedContact
	seq      uint64
	now      func() time.Time
}

var _ repository.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository returns an empty contact store.
func NewContactRepository() *ContactRepository {
	return &ContactRepository{contacts: make(map[string]storedContact), now: time.Now}
}

// SetClock overrides the time source used for created_at/updated_at.
func (r *ContactRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *ContactRepository) List(_ context.Context, filter domain.ContactFilter) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	stored := make([]storedContact, 0, len(r.contacts))
	for _, sc := range r.contacts {
		if search != "" && !matches(sc.contact, search) {
			continue
		}
		stored = append(stored, sc)
	}
	sort.Slice(stored, func(i, j int) bool {
		a, b := stored[i], stored[j]
		if !a.contact.CreatedAt.Equal(b.contact.CreatedAt) {
			return a.contact.CreatedAt.After(b.contact.CreatedAt)
		}
		return a.seq > b.seq
	})

	result := make([]domain.Contact, 0, len(stored))
	for _, sc := range stored {
		result = append(result, copyContact(sc.contact))
	}
	return result, nil
}

func (r *ContactRepository) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sc, ok := r.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := copyContact(sc.contact)
	return &c, nil
}

func (r *ContactRepository) Create(_ context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contacts[contact.ID]; exists {
		return repository.ErrAlreadyExists
	}
	now := r.now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	r.seq++
	r.contacts[contact.ID] = storedContact{contact: copyContact(*contact), seq: r.seq}
	return nil
}

func (r *ContactRepository) Update(_ context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sc, ok := r.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		sc.contact.Name = *patch.Name
	}
	if patch.Email != nil {
		sc.contact.Email = *patch.Email
	}
	if patch.Phone != nil {
		sc.contact.Phone = *patch.Phone
	}
	if patch.Address != nil {
		addr := *patch.Address
		sc.contact.Address = &addr
	}
	sc.contact.UpdatedAt = r.now().UTC()
	r.contacts[id] = sc

	c := copyContact(sc.contact)
	return &c, nil
}

func (r *ContactRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}

func matches(c domain.Contact, search string) bool {
	return strings.Contains(strings.ToLower(c.Name), search) ||
		strings.Contains(strings.ToLower(c.Email), search) ||
		strings.Contains(strings.ToLower(c.Phone), search)
}

func copyContact(c domain.Contact) domain.Contact {
	if c.Address != nil {
		addr := *c.Address
		c.Address = &addr
	}
	return c
}

package user

import (
	"context"
	"errors"
	"maps"
	"testing"
)

type fakeUserRepo struct {
	nextID    int64
	users     map[int64]*User
	managers  map[int64]*Manager
	owners    map[int64]*PetOwner
	providers map[int64]*ServiceProvider

	calls        int
	failManagers bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[int64]*User),
		managers:  make(map[int64]*Manager),
		owners:    make(map[int64]*PetOwner),
		providers: make(map[int64]*ServiceProvider),
	}
}

// Transaction runs fn against a copy and keeps it only when fn succeeds.
func (r *fakeUserRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	r.calls++
	tx := &fakeUserRepo{
		nextID:       r.nextID,
		users:        maps.Clone(r.users),
		managers:     maps.Clone(r.managers),
		owners:       maps.Clone(r.owners),
		providers:    maps.Clone(r.providers),
		failManagers: r.failManagers,
	}
	if err := fn(tx); err != nil {
		return err
	}
	r.nextID = tx.nextID
	r.users, r.managers, r.owners, r.providers = tx.users, tx.managers, tx.owners, tx.providers
	return nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *User) error {
	r.calls++
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	r.calls++
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]User, error) {
	result := make([]User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *User) (bool, error) {
	r.calls++
	if _, ok := r.users[user.ID]; !ok {
		return false, nil
	}
	copied := *user
	r.users[user.ID] = &copied
	return true, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	r.calls++
	if _, ok := r.users[userID]; !ok {
		return false, nil
	}
	delete(r.users, userID)
	return true, nil
}

func (r *fakeUserRepo) CreateManager(ctx context.Context, manager *Manager) error {
	if r.failManagers {
		return errors.New("manager table unavailable")
	}
	r.managers[manager.ID] = manager
	return nil
}

func (r *fakeUserRepo) GetManagerByID(ctx context.Context, id int64) (*Manager, error) {
	manager, ok := r.managers[id]
	if !ok {
		return nil, ErrManagerNotFound
	}
	return manager, nil
}

func (r *fakeUserRepo) ListManagers(ctx context.Context) ([]Manager, error) {
	result := make([]Manager, 0, len(r.managers))
	for _, manager := range r.managers {
		result = append(result, *manager)
	}
	return result, nil
}

func (r *fakeUserRepo) CreatePetOwner(ctx context.Context, owner *PetOwner) error {
	r.owners[owner.ID] = owner
	return nil
}

func (r *fakeUserRepo) GetPetOwnerByID(ctx context.Context, id int64) (*PetOwner, error) {
	owner, ok := r.owners[id]
	if !ok {
		return nil, ErrPetOwnerNotFound
	}
	return owner, nil
}

func (r *fakeUserRepo) ListPetOwners(ctx context.Context) ([]PetOwner, error) {
	result := make([]PetOwner, 0, len(r.owners))
	for _, owner := range r.owners {
		result = append(result, *owner)
	}
	return result, nil
}

func (r *fakeUserRepo) UpdatePetOwner(ctx context.Context, owner *PetOwner) (bool, error) {
	if _, ok := r.owners[owner.ID]; !ok {
		return false, nil
	}
	r.owners[owner.ID] = owner
	return true, nil
}

func (r *fakeUserRepo) CreateServiceProvider(ctx context.Context, provider *ServiceProvider) error {
	r.providers[provider.ID] = provider
	return nil
}

func (r *fakeUserRepo) GetServiceProviderByID(ctx context.Context, id int64) (*ServiceProvider, error) {
	provider, ok := r.providers[id]
	if !ok {
		return nil, ErrServiceProviderNotFound
	}
	return provider, nil
}

func (r *fakeUserRepo) ListServiceProviders(ctx context.Context) ([]ServiceProvider, error) {
	result := make([]ServiceProvider, 0, len(r.providers))
	for _, provider := range r.providers {
		result = append(result, *provider)
	}
	return result, nil
}

func (r *fakeUserRepo) UpdateServiceProvider(ctx context.Context, provider *ServiceProvider) (bool, error) {
	if _, ok := r.providers[provider.ID]; !ok {
		return false, nil
	}
	r.providers[provider.ID] = provider
	return true, nil
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		value string
		want  Role
		err   error
	}{
		{value: "Manager", want: RoleManager},
		{value: "MANAGER", want: RoleManager},
		{value: "Pet Owner", want: RolePetOwner},
		{value: "  pet   owner ", want: RolePetOwner},
		{value: "service PROVIDER", want: RoleServiceProvider},
		{value: "admin", err: ErrInvalidRole},
		{value: "", err: ErrInvalidRole},
		{value: "petowner", err: ErrInvalidRole},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.value)
		if !errors.Is(err, tc.err) {
			t.Fatalf("ParseRole(%q) error = %v, want %v", tc.value, err, tc.err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestCreateUserInvalidRoleSkipsRepository(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo)

	_, err := service.CreateUser(context.Background(), CreateUserInput{
		Name: "Ann", Email: "ann@example.com", Password: "pw", Role: "owner",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected no repository calls, got %d", repo.calls)
	}
}

func TestCreateUserCreatesRoleRowWithSameID(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo)
	ctx := context.Background()

	owner, err := service.CreateUser(ctx, CreateUserInput{
		Name: " Bo ", Email: "bo@example.com", Password: "pw", Role: "Pet Owner",
	})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if owner.Name != "Bo" || owner.Role != RolePetOwner {
		t.Fatalf("unexpected user %+v", owner)
	}
	if _, err := service.GetPetOwnerByID(ctx, owner.ID); err != nil {
		t.Fatalf("expected pet owner row: %v", err)
	}

	manager, err := service.CreateUser(ctx, CreateUserInput{
		Name: "Cy", Email: "cy@example.com", Password: "pw", Role: "manager",
	})
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}
	if manager.ID == owner.ID {
		t.Fatalf("expected distinct ids")
	}
	if _, err := service.GetManagerByID(ctx, manager.ID); err != nil {
		t.Fatalf("expected manager row: %v", err)
	}
}

func TestCreateUserRoleFailureDiscardsUser(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failManagers = true
	service := NewService(repo)

	_, err := service.CreateUser(context.Background(), CreateUserInput{
		Name: "Dee", Email: "dee@example.com", Password: "pw", Role: "manager",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected user insert to be discarded, got %d users", len(repo.users))
	}
}

func TestCreateUserRequiresFields(t *testing.T) {
	service := NewService(newFakeUserRepo())

	_, err := service.CreateUser(context.Background(), CreateUserInput{Email: "x@example.com", Password: "pw", Role: "manager"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateUserKeepsRole(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.CreateUser(ctx, CreateUserInput{
		Name: "Eve", Email: "eve@example.com", Password: "pw", Role: "manager",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = service.UpdateUser(ctx, UpdateUserInput{
		ID: created.ID, Name: "Eve", Email: "eve@example.com", Password: "pw", Role: "pet owner",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for role change, got %v", err)
	}

	updated, err := service.UpdateUser(ctx, UpdateUserInput{
		ID: created.ID, Name: "Eve Smith", Email: "eve@example.com", Password: "pw2", Role: "MANAGER",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Eve Smith" || repo.users[created.ID].Password != "pw2" {
		t.Fatalf("update not applied: %+v", repo.users[created.ID])
	}
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	service := NewService(newFakeUserRepo())
	ctx := context.Background()

	_, err := service.UpdateUser(ctx, UpdateUserInput{ID: 9, Name: "x", Email: "x", Password: "x", Role: "manager"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := service.DeleteUser(ctx, 9); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := service.UpdatePetOwner(ctx, UpdatePetOwnerInput{ID: 9}); !errors.Is(err, ErrPetOwnerNotFound) {
		t.Fatalf("expected ErrPetOwnerNotFound, got %v", err)
	}
	if _, err := service.UpdateServiceProvider(ctx, UpdateServiceProviderInput{ID: 9}); !errors.Is(err, ErrServiceProviderNotFound) {
		t.Fatalf("expected ErrServiceProviderNotFound, got %v", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	blank := "   "
	if normalizePhone(&blank) != nil {
		t.Fatalf("expected blank phone to become nil")
	}
	padded := " 555-0100 "
	if got := normalizePhone(&padded); got == nil || *got != "555-0100" {
		t.Fatalf("unexpected phone %v", got)
	}
	if normalizePhone(nil) != nil {
		t.Fatalf("expected nil")
	}
}

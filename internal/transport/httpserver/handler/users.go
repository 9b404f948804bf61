package handler

import (
	"net/http"

	"github.com/samber/lo"

	userdomain "petcare-go/internal/domain/user"
)

type createUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Gender   string `json:"gender"`
	Role     string `json:"role" validate:"required"`
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

type updatePetOwnerRequest struct {
	Phone   *string `json:"phone" validate:"omitempty,max=32"`
	City    string  `json:"city"`
	Address string  `json:"address"`
}

type updateServiceProviderRequest struct {
	BusinessName string  `json:"business_name"`
	Logo         []byte  `json:"logo"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Website      string  `json:"website" validate:"omitempty,url"`
}

// userResponse never carries the password.
type userResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	Role   string `json:"role"`
}

type managerResponse struct {
	ID int64 `json:"id"`
}

type petOwnerResponse struct {
	ID      int64   `json:"id"`
	Phone   *string `json:"phone"`
	City    string  `json:"city"`
	Address string  `json:"address"`
}

type serviceProviderResponse struct {
	ID           int64   `json:"id"`
	BusinessName string  `json:"business_name"`
	Logo         []byte  `json:"logo"`
	Phone        *string `json:"phone"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Website      string  `json:"website"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) listResponse[T] {
	return listResponse[T]{Items: items, Total: len(items)}
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Users.CreateUser(r.Context(), userdomain.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	if err != nil {
		h.fail(w, r, "users.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(*created))
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Users.GetUserByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "users.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*found))
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, "users.list", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(users, func(u userdomain.User, _ int) userResponse {
		return toUserResponse(u)
	})))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Users.UpdateUser(r.Context(), userdomain.UpdateUserInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	if err != nil {
		h.fail(w, r, "users.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*updated))
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Users.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, r, "users.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) GetManager(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Users.GetManagerByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "managers.get", err)
		return
	}
	writeJSON(w, http.StatusOK, managerResponse{ID: found.ID})
}

func (h *Handlers) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.Users.ListManagers(r.Context())
	if err != nil {
		h.fail(w, r, "managers.list", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(managers, func(m userdomain.Manager, _ int) managerResponse {
		return managerResponse{ID: m.ID}
	})))
}

func (h *Handlers) GetPetOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Users.GetPetOwnerByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "pet_owners.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetOwnerResponse(*found))
}

func (h *Handlers) ListPetOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.Users.ListPetOwners(r.Context())
	if err != nil {
		h.fail(w, r, "pet_owners.list", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(owners, func(o userdomain.PetOwner, _ int) petOwnerResponse {
		return toPetOwnerResponse(o)
	})))
}

func (h *Handlers) UpdatePetOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updatePetOwnerRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Users.UpdatePetOwner(r.Context(), userdomain.UpdatePetOwnerInput{
		ID:      id,
		Phone:   req.Phone,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		h.fail(w, r, "pet_owners.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetOwnerResponse(*updated))
}

func (h *Handlers) GetServiceProvider(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Users.GetServiceProviderByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "service_providers.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceProviderResponse(*found))
}

func (h *Handlers) ListServiceProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.Users.ListServiceProviders(r.Context())
	if err != nil {
		h.fail(w, r, "service_providers.list", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(providers, func(p userdomain.ServiceProvider, _ int) serviceProviderResponse {
		return toServiceProviderResponse(p)
	})))
}

func (h *Handlers) UpdateServiceProvider(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateServiceProviderRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Users.UpdateServiceProvider(r.Context(), userdomain.UpdateServiceProviderInput{
		ID:           id,
		BusinessName: req.BusinessName,
		Logo:         req.Logo,
		Phone:        req.Phone,
		Description:  req.Description,
		Address:      req.Address,
		Website:      req.Website,
	})
	if err != nil {
		h.fail(w, r, "service_providers.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceProviderResponse(*updated))
}

func toUserResponse(u userdomain.User) userResponse {
	return userResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Gender: u.Gender,
		Role:   string(u.Role),
	}
}

func toPetOwnerResponse(o userdomain.PetOwner) petOwnerResponse {
	return petOwnerResponse{
		ID:      o.ID,
		Phone:   o.Phone,
		City:    o.City,
		Address: o.Address,
	}
}

func toServiceProviderResponse(p userdomain.ServiceProvider) serviceProviderResponse {
	return serviceProviderResponse{
		ID:           p.ID,
		BusinessName: p.BusinessName,
		Logo:         p.Logo,
		Phone:        p.Phone,
		Description:  p.Description,
		Address:      p.Address,
		Website:      p.Website,
	}
}

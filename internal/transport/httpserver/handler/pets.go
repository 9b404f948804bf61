package handler

import (
	"net/http"

	"github.com/samber/lo"

	petdomain "petcare-go/internal/domain/pet"
)

type petRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Breed       string `json:"breed" validate:"required,max=255"`
	Description string `json:"description"`
	Picture     []byte `json:"picture" validate:"required"`
	Age         int    `json:"age" validate:"min=0"`
	DOB         string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
}

type dietRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	PetID       int64  `json:"pet_id" validate:"required,gt=0"`
}

type activityRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	PetID       int64  `json:"pet_id" validate:"required,gt=0"`
}

type scheduleTargetRequest struct {
	Kind string `json:"kind" validate:"required,oneof=diet activity"`
	ID   int64  `json:"id" validate:"required,gt=0"`
}

type petScheduleRequest struct {
	StartDate    string                `json:"start_date" validate:"required,datetime=2006-01-02"`
	RepeatOption string                `json:"repeat_option"`
	Hour         int                   `json:"hour" validate:"min=0,max=23"`
	Minute       int                   `json:"minute" validate:"min=0,max=59"`
	Target       scheduleTargetRequest `json:"target" validate:"required"`
}

type petResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	Description string  `json:"description"`
	Picture     []byte  `json:"picture"`
	Age         int     `json:"age"`
	DOB         *string `json:"dob"`
	UserID      int64   `json:"user_id"`
}

type dietResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	PetID       int64  `json:"pet_id"`
}

type activityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PetID       int64  `json:"pet_id"`
}

type petScheduleResponse struct {
	ID           int64                    `json:"id"`
	StartDate    string                   `json:"start_date"`
	RepeatOption string                   `json:"repeat_option"`
	Hour         int                      `json:"hour"`
	Minute       int                      `json:"minute"`
	Target       petdomain.ScheduleTarget `json:"target"`
}

func (h *Handlers) CreatePet(w http.ResponseWriter, r *http.Request) {
	input, ok := h.petInput(w, r)
	if !ok {
		return
	}

	created, err := h.Pets.AddPet(r.Context(), input)
	if err != nil {
		h.fail(w, r, "pets.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPetResponse(*created))
}

func (h *Handlers) GetPet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Pets.GetPetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "pets.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetResponse(*found))
}

func (h *Handlers) ListOwnerPets(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	pets, err := h.Pets.ListPetsByUserID(r.Context(), ownerID)
	if err != nil {
		h.fail(w, r, "pets.list_by_owner", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(pets, func(p petdomain.Pet, _ int) petResponse {
		return toPetResponse(p)
	})))
}

func (h *Handlers) UpdatePet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	input, ok := h.petInput(w, r)
	if !ok {
		return
	}

	updated, err := h.Pets.UpdatePet(r.Context(), id, input)
	if err != nil {
		h.fail(w, r, "pets.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetResponse(*updated))
}

func (h *Handlers) DeletePet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Pets.DeletePet(r.Context(), id); err != nil {
		h.fail(w, r, "pets.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) CreateDiet(w http.ResponseWriter, r *http.Request) {
	var req dietRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Pets.AddDiet(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, "diets.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDietResponse(*created))
}

func (h *Handlers) GetDiet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Pets.GetDietByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "diets.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toDietResponse(*found))
}

func (h *Handlers) ListPetDiets(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	diets, err := h.Pets.ListDietsByPetID(r.Context(), petID)
	if err != nil {
		h.fail(w, r, "diets.list_by_pet", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(diets, func(d petdomain.Diet, _ int) dietResponse {
		return toDietResponse(d)
	})))
}

func (h *Handlers) UpdateDiet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dietRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Pets.UpdateDiet(r.Context(), id, req.input())
	if err != nil {
		h.fail(w, r, "diets.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toDietResponse(*updated))
}

func (h *Handlers) DeleteDiet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Pets.DeleteDiet(r.Context(), id); err != nil {
		h.fail(w, r, "diets.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Pets.AddActivity(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, "activities.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(*created))
}

func (h *Handlers) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Pets.GetActivityByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "activities.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*found))
}

func (h *Handlers) ListPetActivities(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	activities, err := h.Pets.ListActivitiesByPetID(r.Context(), petID)
	if err != nil {
		h.fail(w, r, "activities.list_by_pet", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(activities, func(a petdomain.Activity, _ int) activityResponse {
		return toActivityResponse(a)
	})))
}

func (h *Handlers) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req activityRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Pets.UpdateActivity(r.Context(), id, req.input())
	if err != nil {
		h.fail(w, r, "activities.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*updated))
}

func (h *Handlers) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Pets.DeleteActivity(r.Context(), id); err != nil {
		h.fail(w, r, "activities.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) CreatePetSchedule(w http.ResponseWriter, r *http.Request) {
	input, ok := h.petScheduleInput(w, r)
	if !ok {
		return
	}

	created, err := h.Pets.AddPetSchedule(r.Context(), input)
	if err != nil {
		h.fail(w, r, "pet_schedules.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPetScheduleResponse(*created))
}

func (h *Handlers) GetPetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Pets.GetPetScheduleByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "pet_schedules.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetScheduleResponse(*found))
}

func (h *Handlers) ListDietSchedules(w http.ResponseWriter, r *http.Request) {
	dietID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	schedules, err := h.Pets.ListPetSchedulesByDietID(r.Context(), dietID)
	if err != nil {
		h.fail(w, r, "pet_schedules.list_by_diet", err)
		return
	}
	writePetSchedules(w, schedules)
}

func (h *Handlers) ListActivitySchedules(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	schedules, err := h.Pets.ListPetSchedulesByActivityID(r.Context(), activityID)
	if err != nil {
		h.fail(w, r, "pet_schedules.list_by_activity", err)
		return
	}
	writePetSchedules(w, schedules)
}

func (h *Handlers) UpdatePetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	input, ok := h.petScheduleInput(w, r)
	if !ok {
		return
	}

	updated, err := h.Pets.UpdatePetSchedule(r.Context(), id, input)
	if err != nil {
		h.fail(w, r, "pet_schedules.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toPetScheduleResponse(*updated))
}

func (h *Handlers) DeletePetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Pets.DeletePetSchedule(r.Context(), id); err != nil {
		h.fail(w, r, "pet_schedules.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) petInput(w http.ResponseWriter, r *http.Request) (petdomain.PetInput, bool) {
	var req petRequest
	if !h.bind(w, r, &req) {
		return petdomain.PetInput{}, false
	}
	dob, err := parseDateOptional(req.DOB)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid dob")
		return petdomain.PetInput{}, false
	}

	return petdomain.PetInput{
		Name:        req.Name,
		Breed:       req.Breed,
		Description: req.Description,
		Picture:     req.Picture,
		Age:         req.Age,
		DOB:         dob,
		UserID:      req.UserID,
	}, true
}

func (h *Handlers) petScheduleInput(w http.ResponseWriter, r *http.Request) (petdomain.PetScheduleInput, bool) {
	var req petScheduleRequest
	if !h.bind(w, r, &req) {
		return petdomain.PetScheduleInput{}, false
	}
	start, err := parseDateRequired(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid start_date")
		return petdomain.PetScheduleInput{}, false
	}

	return petdomain.PetScheduleInput{
		StartDate:    start,
		RepeatOption: req.RepeatOption,
		Hour:         req.Hour,
		Minute:       req.Minute,
		Target: petdomain.ScheduleTarget{
			Kind: petdomain.TargetKind(req.Target.Kind),
			ID:   req.Target.ID,
		},
	}, true
}

func (req dietRequest) input() petdomain.DietInput {
	return petdomain.DietInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Description: req.Description,
		PetID:       req.PetID,
	}
}

func (req activityRequest) input() petdomain.ActivityInput {
	return petdomain.ActivityInput{
		Name:        req.Name,
		Description: req.Description,
		PetID:       req.PetID,
	}
}

func writePetSchedules(w http.ResponseWriter, schedules []petdomain.PetSchedule) {
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(schedules, func(s petdomain.PetSchedule, _ int) petScheduleResponse {
		return toPetScheduleResponse(s)
	})))
}

func toPetResponse(p petdomain.Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Breed:       p.Breed,
		Description: p.Description,
		Picture:     p.Picture,
		Age:         p.Age,
		DOB:         formatDateOptional(p.DOB),
		UserID:      p.UserID,
	}
}

func toDietResponse(d petdomain.Diet) dietResponse {
	return dietResponse{
		ID:          d.ID,
		Name:        d.Name,
		Amount:      d.Amount,
		Description: d.Description,
		PetID:       d.PetID,
	}
}

func toActivityResponse(a petdomain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		PetID:       a.PetID,
	}
}

func toPetScheduleResponse(s petdomain.PetSchedule) petScheduleResponse {
	return petScheduleResponse{
		ID:           s.ID,
		StartDate:    formatDate(s.StartDate),
		RepeatOption: s.RepeatOption,
		Hour:         s.Hour,
		Minute:       s.Minute,
		Target:       s.Target,
	}
}

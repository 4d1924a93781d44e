package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dailydiet/daily-diet-api/internal/api/middleware"
	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/dailydiet/daily-diet-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MealHandler struct {
	mealService *service.MealService
}

func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// MealRequest is the body contract shared by create and update. Fields are
// pointers so a missing field can be told apart from a zero value; every
// field is required.
type MealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsOnDiet    *bool   `json:"isOnDiet"`
	Date        *string `json:"date"`
}

// mealDateLayouts are tried in order when parsing the date field.
var mealDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (req *MealRequest) toInput() (service.MealInput, error) {
	if req.Name == nil || req.Description == nil || req.IsOnDiet == nil || req.Date == nil {
		return service.MealInput{}, errors.New("name, description, isOnDiet and date are required")
	}
	if *req.Name == "" {
		return service.MealInput{}, errors.New("name must not be empty")
	}

	date, err := parseMealDate(*req.Date)
	if err != nil {
		return service.MealInput{}, err
	}

	return service.MealInput{
		Name:        *req.Name,
		Description: *req.Description,
		IsOnDiet:    *req.IsOnDiet,
		Date:        date,
	}, nil
}

func parseMealDate(value string) (time.Time, error) {
	for _, layout := range mealDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}

// decodeMealRequest parses and validates the body before any storage access.
func decodeMealRequest(r *http.Request) (service.MealInput, error) {
	var req MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.MealInput{}, errors.New("invalid request body")
	}
	return req.toInput()
}

// mealIDParam validates the mealId path segment as a UUID before any lookup.
func mealIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "mealId"))
	if err != nil {
		return uuid.Nil, errors.New("mealId must be a valid UUID")
	}
	return id, nil
}

func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized Session")
		return
	}

	input, err := decodeMealRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.mealService.Create(r.Context(), user.ID, input); err != nil {
		log.Printf("ERROR [meal.Create] failed to create meal: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized Session")
		return
	}

	meals, err := h.mealService.ListForOwner(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [meal.List] failed to list meals: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]*domain.Meal{"meals": meals})
}

// Get fetches a meal by id alone. A miss is still a 200 with a null meal
// field, and ownership is not checked.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	mealID, err := mealIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	meal, err := h.mealService.GetByID(r.Context(), mealID)
	if err != nil {
		log.Printf("ERROR [meal.Get] failed to get meal: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]*domain.Meal{"meal": meal})
}

func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	mealID, err := mealIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	input, err := decodeMealRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.mealService.UpdateByID(r.Context(), mealID, input); err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			respondError(w, http.StatusNotFound, "Meal not found")
			return
		}
		log.Printf("ERROR [meal.Update] failed to update meal: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MealHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized Session")
		return
	}

	metrics, err := h.mealService.Metrics(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [meal.Metrics] failed to compute metrics: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

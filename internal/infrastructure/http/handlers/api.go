// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// APIHandlers handles REST API requests
type APIHandlers struct {
	planner  inbound.PlannerService
	shopping inbound.ShoppingListService
	prep     inbound.MealPrepService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	planner inbound.PlannerService,
	shopping inbound.ShoppingListService,
	prep inbound.MealPrepService,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		planner:  planner,
		shopping: shopping,
		prep:     prep,
		validate: validator.New(),
		logger:   logger,
	}
}

// Request bodies

type macroTargetsRequest struct {
	ProteinPct float64 `json:"protein_pct" validate:"gte=0,lte=100"`
	CarbsPct   float64 `json:"carbs_pct" validate:"gte=0,lte=100"`
	FatsPct    float64 `json:"fats_pct" validate:"gte=0,lte=100"`
}

type profileRequest struct {
	UserID              uuid.UUID            `json:"user_id" validate:"required"`
	BudgetAmount        float64              `json:"budget_amount" validate:"required,gt=0"`
	BudgetPeriod        string               `json:"budget_period" validate:"required,oneof=daily weekly"`
	PlanDays            int                  `json:"plan_days" validate:"required,min=1,max=14"`
	MealsPerDay         int                  `json:"meals_per_day" validate:"required,min=1,max=6"`
	DietaryPreferences  []string             `json:"dietary_preferences"`
	Allergens           []string             `json:"allergens"`
	ExcludedIngredients []string             `json:"excluded_ingredients"`
	MacroTargets        *macroTargetsRequest `json:"macro_targets"`
	CalorieTarget       int                  `json:"calorie_target" validate:"gte=0"`
}

func (r profileRequest) toDomain() mealplan.UserProfile {
	prefs := make([]mealplan.DietaryPreference, 0, len(r.DietaryPreferences))
	for _, p := range r.DietaryPreferences {
		prefs = append(prefs, mealplan.DietaryPreference(p))
	}
	profile := mealplan.UserProfile{
		UserID:              r.UserID,
		BudgetAmount:        r.BudgetAmount,
		BudgetPeriod:        mealplan.BudgetPeriod(r.BudgetPeriod),
		PlanDays:            r.PlanDays,
		MealsPerDay:         r.MealsPerDay,
		DietaryPreferences:  prefs,
		Allergens:           r.Allergens,
		ExcludedIngredients: r.ExcludedIngredients,
		CalorieTarget:       float64(r.CalorieTarget),
	}
	if r.MacroTargets != nil {
		profile.MacroTargets = &mealplan.MacroTargets{
			ProteinPct: r.MacroTargets.ProteinPct,
			CarbsPct:   r.MacroTargets.CarbsPct,
			FatsPct:    r.MacroTargets.FatsPct,
		}
	}
	return profile
}

type generatePlanRequest struct {
	profileRequest
	Seed int64 `json:"seed"`
}

type envelopeRequest struct {
	profileRequest
}

type portionRequest struct {
	profileRequest
	Multiplier float64 `json:"multiplier" validate:"required,gt=0"`
}

type swapRequest struct {
	profileRequest
	Candidate mealplan.Meal `json:"candidate" validate:"required"`
}

type pinRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// CreatePlan handles POST /api/v1/plans
func (h *APIHandlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.planner.GeneratePlan(r.Context(), inbound.GeneratePlanCommand{
		Profile: req.toDomain(),
		Seed:    req.Seed,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, plan)
}

// GetPlan handles GET /api/v1/plans/{id}
func (h *APIHandlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	plan, err := h.planner.GetPlan(r.Context(), planID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// GetShoppingList handles GET /api/v1/plans/{id}/shopping-list
func (h *APIHandlers) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.shopping.BuildShoppingListByPlanID(r.Context(), planID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// GetPrepPlan handles GET /api/v1/plans/{id}/prep-plan
func (h *APIHandlers) GetPrepPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	prep, err := h.prep.BuildPrepPlanByPlanID(r.Context(), planID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, prep)
}

// ComputeEnvelope handles POST /api/v1/plans/{id}/meals/{mealID}/envelope
func (h *APIHandlers) ComputeEnvelope(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	mealID, ok := h.pathID(w, r, "mealID")
	if !ok {
		return
	}

	var req envelopeRequest
	if !h.decode(w, r, &req) {
		return
	}

	envelope, err := h.planner.ComputeSubstitutionEnvelope(r.Context(), planID, mealID, req.toDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope)
}

// SwapMeal handles POST /api/v1/plans/{id}/meals/{mealID}/swap
func (h *APIHandlers) SwapMeal(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	mealID, ok := h.pathID(w, r, "mealID")
	if !ok {
		return
	}

	var req swapRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.planner.SwapMeal(r.Context(), inbound.SwapMealCommand{
		PlanID:    planID,
		MealID:    mealID,
		Profile:   req.toDomain(),
		Candidate: req.Candidate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// AdjustPortion handles POST /api/v1/plans/{id}/meals/{mealID}/portion
func (h *APIHandlers) AdjustPortion(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	mealID, ok := h.pathID(w, r, "mealID")
	if !ok {
		return
	}

	var req portionRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.planner.AdjustPortion(r.Context(), inbound.AdjustPortionCommand{
		PlanID:     planID,
		MealID:     mealID,
		Profile:    req.toDomain(),
		Multiplier: req.Multiplier,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// PinPlan handles POST /api/v1/plans/{id}/pin
func (h *APIHandlers) PinPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req pinRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.planner.PinPlan(r.Context(), planID, req.UserID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "pinned"})
}

// UnpinPlan handles DELETE /api/v1/plans/{id}/pin
func (h *APIHandlers) UnpinPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req pinRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.planner.UnpinPlan(r.Context(), planID, req.UserID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "unpinned"})
}

// ListPinnedPlans handles GET /api/v1/users/{userID}/pinned-plans
func (h *APIHandlers) ListPinnedPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	plans, err := h.planner.ListPinnedPlans(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plans)
}

// GetCurrentPlan handles GET /api/v1/users/{userID}/current-plan
func (h *APIHandlers) GetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	plan, err := h.planner.GetCurrentPlan(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// HealthCheck handles GET /api/v1/health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// decode parses and validates a JSON request body
func (h *APIHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid JSON body").WithCause(err))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, r, errors.NewAppError(errors.CodeValidationFailed, "Validation failed", err.Error()))
		return false
	}
	return true
}

// pathID parses a UUID path parameter
func (h *APIHandlers) pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid "+param+" path parameter"))
		return uuid.Nil, false
	}
	return id, true
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error to the structured error response
func (h *APIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= 500 {
		h.logger.Error("Request error",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.Error(err),
		)
	}

	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}

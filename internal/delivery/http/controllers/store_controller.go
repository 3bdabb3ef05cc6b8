package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"mezcaltasting/internal/delivery/http/helpers"
	"mezcaltasting/internal/delivery/http/middleware"
	"mezcaltasting/internal/domain"
)

type StoreController struct {
	Logger     *slog.Logger
	Service    domain.StoreService
	Categories domain.CategoryRepository
	Beverages  domain.BeverageRepository
	Users      domain.UserRepository
}

func NewStoreController(
	logger *slog.Logger,
	svc domain.StoreService,
	categories domain.CategoryRepository,
	beverages domain.BeverageRepository,
	users domain.UserRepository,
) *StoreController {
	return &StoreController{
		Logger:     logger,
		Service:    svc,
		Categories: categories,
		Beverages:  beverages,
		Users:      users,
	}
}

func (c *StoreController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteDomainError(w, err)
}

// ListBeverages godoc
// @Summary List beverages with live stock
// @Tags store
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Beverage}
// @Router /store/beverages [get]
func (c *StoreController) ListBeverages(w http.ResponseWriter, r *http.Request) {
	beverages, err := c.Service.ListBeverages(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, beverages)
}

// ListBeveragesByCategory godoc
// @Summary List beverages in a category
// @Tags store
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Beverage}
// @Router /store/beverages/category/{name} [get]
func (c *StoreController) ListBeveragesByCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing category name")
		return
	}
	beverages, err := c.Beverages.ListByCategory(r.Context(), name)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, beverages)
}

// GetBeverage godoc
// @Summary Get a beverage by ID
// @Tags store
// @Produce json
// @Param id path int true "Beverage ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Beverage}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /store/beverages/{id} [get]
func (c *StoreController) GetBeverage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	beverage, err := c.Beverages.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, beverage)
}

// CreateBeverageRequest is the request body for POST /store/beverages.
type CreateBeverageRequest struct {
	Name        string           `json:"nombre"`
	Description string           `json:"descripcion"`
	Price       float64          `json:"precio"`
	Stock       int              `json:"stock"`
	Image       string           `json:"imagen"`
	Category    *domain.Category `json:"categoria,omitempty"`
}

// Validate implements helpers.Validator.
func (req *CreateBeverageRequest) Validate() []string {
	var errs []string
	if req.Name == "" {
		errs = append(errs, "nombre is required")
	}
	if req.Price < 0 {
		errs = append(errs, "precio cannot be negative")
	}
	if req.Stock < 0 {
		errs = append(errs, "stock cannot be negative")
	}
	return errs
}

// CreateBeverage godoc
// @Summary Create a beverage
// @Tags store
// @Accept json
// @Produce json
// @Param request body controllers.CreateBeverageRequest true "Beverage"
// @Success 201 {object} helpers.APIResponse{data=domain.Beverage}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /store/beverages [post]
func (c *StoreController) CreateBeverage(w http.ResponseWriter, r *http.Request) {
	var req CreateBeverageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Beverages.Create(r.Context(), &domain.Beverage{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Category:    req.Category,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// UpdateBeverage godoc
// @Summary Update a beverage
// @Tags store
// @Accept json
// @Produce json
// @Param id path int true "Beverage ID"
// @Param request body domain.BeveragePatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse{data=domain.Beverage}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /store/beverages/{id} [patch]
func (c *StoreController) UpdateBeverage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch domain.BeveragePatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	updated, err := c.Beverages.Update(r.Context(), id, patch)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteBeverage godoc
// @Summary Delete a beverage
// @Tags store
// @Produce json
// @Param id path int true "Beverage ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /store/beverages/{id} [delete]
func (c *StoreController) DeleteBeverage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Beverages.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int{"deleted": id})
}

// ListProducts godoc
// @Summary Catalog projection of the beverage list
// @Tags store
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Product}
// @Router /store/products [get]
func (c *StoreController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.Service.ListProducts(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, products)
}

// ListCategories godoc
// @Summary List beverage categories
// @Tags store
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Category}
// @Router /store/categories [get]
func (c *StoreController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Categories.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, categories)
}

// ListUsers godoc
// @Summary List users eligible for store verification
// @Tags store
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.User}
// @Router /store/users [get]
func (c *StoreController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.ListUsers(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update a user record
// @Description Patches the user on the backend, typically to review a registration's status.
// @Tags store
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body domain.UserPatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse{data=domain.User}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /store/users/{id} [patch]
func (c *StoreController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch domain.UserPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	updated, err := c.Users.Update(r.Context(), id, patch)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// VerifyRequest is the request body for POST /store/verify.
type VerifyRequest struct {
	UserID int    `json:"usuarioID"`
	Email  string `json:"email"`
}

// Validate implements helpers.Validator.
func (req *VerifyRequest) Validate() []string {
	var errs []string
	if req.UserID <= 0 {
		errs = append(errs, "usuarioID is required")
	}
	if req.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// verifyResponse carries the verification token for subsequent mutations.
type verifyResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"usuario"`
}

// Verify godoc
// @Summary Verify a user's identity by email match
// @Description Compares the entered email (case-insensitive, trimmed) against the selected user record and issues a short-lived verification token on match. This is a UX confirmation gate before mutation actions, explicitly not an access-control mechanism.
// @Tags store
// @Accept json
// @Produce json
// @Param request body controllers.VerifyRequest true "User and entered email"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (email mismatch)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /store/verify [post]
func (c *StoreController) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.VerifyUser(r.Context(), req.UserID, req.Email)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, verifyResponse{Token: token, User: user})
}

// ReserveRequest is the request body for POST /store/reservations.
type ReserveRequest struct {
	BeverageID int `json:"bebidasID"`
	Quantity   int `json:"cantidad"`
	Staged     int `json:"staged,omitempty"`
}

// Validate implements helpers.Validator.
func (req *ReserveRequest) Validate() []string {
	var errs []string
	if req.BeverageID <= 0 {
		errs = append(errs, "bebidasID is required")
	}
	if req.Quantity <= 0 {
		errs = append(errs, "cantidad must be greater than zero")
	}
	return errs
}

// reserveResponse is the reservation plus the reloaded, server-confirmed
// beverage list.
type reserveResponse struct {
	Reservation *domain.Reservation `json:"apartado"`
	Beverages   []*domain.Beverage  `json:"bebidas"`
}

// Reserve godoc
// @Summary Place a reservation ("apartado") against a beverage's stock
// @Description Creates the reservation, decrements the beverage stock as a dependent second call, then reloads the beverage list so only server-confirmed state is returned. Requires a verification token. A stock patch failure after a successful create is reported with code partial_failure and not rolled back.
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body controllers.ReserveRequest true "Reservation"
// @Success 201 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (quantity exceeds displayed stock)"
// @Failure 502 {object} helpers.APIResponse "error.code: partial_failure"
// @Router /store/reservations [post]
func (c *StoreController) Reserve(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.VerifiedUserFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, domain.ErrVerificationRequired.Error())
		return
	}
	var req ReserveRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reservation, beverages, err := c.Service.Reserve(r.Context(), userID, req.BeverageID, req.Quantity, req.Staged)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "reserve failed", "user_id", userID, "beverage_id", req.BeverageID, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reserveResponse{Reservation: reservation, Beverages: beverages})
}

// CancelReservation godoc
// @Summary Cancel a reservation and restore stock
// @Description Deletes the reservation, fetches the beverage's current stock, patches it back up by the reserved quantity, and reloads the beverage list. Each step's failure is reported distinctly; a failed restore after a successful delete uses code partial_failure.
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param bebidasID query int true "Beverage ID of the reservation"
// @Param cantidad query int true "Reserved quantity to restore"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: partial_failure"
// @Router /store/reservations/{id} [delete]
func (c *StoreController) CancelReservation(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.VerifiedUserFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, domain.ErrVerificationRequired.Error())
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	beverageID, err := strconv.Atoi(r.URL.Query().Get("bebidasID"))
	if err != nil || beverageID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid bebidasID")
		return
	}
	quantity, err := strconv.Atoi(r.URL.Query().Get("cantidad"))
	if err != nil || quantity <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid cantidad")
		return
	}

	beverages, err := c.Service.CancelReservation(r.Context(), id, beverageID, quantity)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "cancel reservation failed", "reservation_id", id, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reserveResponse{Beverages: beverages})
}

// MyReservations godoc
// @Summary List the verified user's reservations
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.Reservation}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /store/reservations [get]
func (c *StoreController) MyReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.VerifiedUserFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, domain.ErrVerificationRequired.Error())
		return
	}
	reservations, err := c.Service.ListUserReservations(r.Context(), userID)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reservations)
}

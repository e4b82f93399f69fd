package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/catalog-cart/internal/form"
	"github.com/vyrodovalexey/catalog-cart/internal/model"
	"github.com/vyrodovalexey/catalog-cart/internal/session"
	"github.com/vyrodovalexey/catalog-cart/internal/view"
)

// RESTHandler handles the JSON API.
type RESTHandler struct {
	session Session
	logger  *zap.Logger
}

// NewRESTHandler creates a new RESTHandler instance.
func NewRESTHandler(s Session, logger *zap.Logger) *RESTHandler {
	return &RESTHandler{
		session: s,
		logger:  logger,
	}
}

// RegisterRoutes registers the REST API routes with the router.
func (h *RESTHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet).Name("health")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet).Name("list_categories")

	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet).Name("list_products")
	api.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost).Name("create_product")
	api.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet).Name("get_product")
	api.HandleFunc("/products/{id}", h.UpdateProduct).Methods(http.MethodPut).Name("update_product")
	api.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete).Name("delete_product")
	api.HandleFunc("/products/{id}/form", h.GetProductForm).Methods(http.MethodGet).Name("edit_product_form")

	api.HandleFunc("/view", h.ComputeView).Methods(http.MethodGet).Name("compute_view")
	api.HandleFunc("/pager", h.GetPager).Methods(http.MethodGet).Name("get_pager")
	api.HandleFunc("/pager", h.UpdatePager).Methods(http.MethodPut).Name("update_pager")

	api.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet).Name("get_cart")
	api.HandleFunc("/cart", h.ClearCart).Methods(http.MethodDelete).Name("clear_cart")
	api.HandleFunc("/cart/items", h.AddToCart).Methods(http.MethodPost).Name("add_to_cart")
	api.HandleFunc("/cart/items/{id}", h.SetCartQuantity).Methods(http.MethodPut).Name("set_cart_quantity")
	api.HandleFunc("/cart/items/{id}", h.RemoveFromCart).Methods(http.MethodDelete).Name("remove_from_cart")
	api.HandleFunc("/cart/checkout", h.Checkout).Methods(http.MethodPost).Name("checkout")

	api.HandleFunc("/session/reset", h.ResetSession).Methods(http.MethodPost).Name("reset_session")
}

// HealthCheck handles GET /health requests.
func (h *RESTHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(HealthResponse{
		Status:  "healthy",
		Version: Version,
	}))
}

// ListCategories handles GET /api/v1/categories requests.
func (h *RESTHandler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(model.Categories))
}

// ListProducts handles GET /api/v1/products requests.
func (h *RESTHandler) ListProducts(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(h.session.ListProducts()))
}

// GetProduct handles GET /api/v1/products/{id} requests.
func (h *RESTHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, ok := h.session.GetProduct(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(product))
}

// GetProductForm handles GET /api/v1/products/{id}/form requests. It returns
// the product's current values as form strings to pre-fill an edit form.
func (h *RESTHandler) GetProductForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, ok := h.session.GetProduct(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(form.FromProduct(product)))
}

// CreateProduct handles POST /api/v1/products requests.
func (h *RESTHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeProductForm(w, r)
	if !ok {
		return
	}

	product := h.session.CreateProduct(input)
	h.writeJSON(w, http.StatusCreated, model.NewSuccessResponse(product))
}

// UpdateProduct handles PUT /api/v1/products/{id} requests.
// An unknown ID is not an error; the response reports changed=false.
func (h *RESTHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	input, ok := h.decodeProductForm(w, r)
	if !ok {
		return
	}

	changed := h.session.UpdateProduct(input.WithID(id))
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(MutationResponse{Changed: changed}))
}

// DeleteProduct handles DELETE /api/v1/products/{id} requests.
func (h *RESTHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	changed := h.session.DeleteProduct(id)
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(MutationResponse{Changed: changed}))
}

// ComputeView handles GET /api/v1/view?search=&page=&page_size= requests.
func (h *RESTHandler) ComputeView(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := intParam(query.Get("page"), 1)
	if err != nil || page < 1 {
		h.writeErrorDetails(w, http.StatusBadRequest, "page must be a positive integer", query.Get("page"))
		return
	}

	pageSize, err := intParam(query.Get("page_size"), view.DefaultPageSize)
	if err != nil || pageSize < 1 {
		h.writeErrorDetails(w, http.StatusBadRequest, "page_size must be a positive integer", query.Get("page_size"))
		return
	}

	result := h.session.ComputeView(query.Get("search"), page, pageSize)
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(result))
}

// GetPager handles GET /api/v1/pager requests.
func (h *RESTHandler) GetPager(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(h.pagerResponse()))
}

// UpdatePager handles PUT /api/v1/pager requests.
func (h *RESTHandler) UpdatePager(w http.ResponseWriter, r *http.Request) {
	var req PagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeErrorDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Move != "" && req.Move != MoveNext && req.Move != MovePrev {
		h.writeError(w, http.StatusBadRequest, "move must be one of: next, prev")
		return
	}

	if req.PageSize != nil {
		if err := h.session.SetPageSize(*req.PageSize); err != nil {
			h.writeErrorDetails(w, http.StatusBadRequest, view.ErrInvalidPageSize.Error(), err.Error())
			return
		}
	}
	if req.Search != nil {
		h.session.SetSearch(*req.Search)
	}
	if req.Page != nil {
		h.session.SetPage(*req.Page)
	}
	switch req.Move {
	case MoveNext:
		h.session.NextPage()
	case MovePrev:
		h.session.PrevPage()
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(h.pagerResponse()))
}

// GetCart handles GET /api/v1/cart requests.
func (h *RESTHandler) GetCart(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(h.session.Cart()))
}

// AddToCart handles POST /api/v1/cart/items requests. The cart receives a
// snapshot of the product as it is in the catalog right now.
func (h *RESTHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeErrorDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, ok := h.session.GetProduct(req.ProductID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	changed := h.session.AddToCart(product)
	h.writeCart(w, changed)
}

// SetCartQuantity handles PUT /api/v1/cart/items/{id} requests.
func (h *RESTHandler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeErrorDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	changed := h.session.SetCartQuantity(id, req.Quantity)
	h.writeCart(w, changed)
}

// RemoveFromCart handles DELETE /api/v1/cart/items/{id} requests.
func (h *RESTHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	changed := h.session.RemoveFromCart(mux.Vars(r)["id"])
	h.writeCart(w, changed)
}

// ClearCart handles DELETE /api/v1/cart requests.
func (h *RESTHandler) ClearCart(w http.ResponseWriter, _ *http.Request) {
	changed := h.session.ClearCart()
	h.writeCart(w, changed)
}

// Checkout handles POST /api/v1/cart/checkout requests. Checkout is disabled
// and never changes state.
func (h *RESTHandler) Checkout(w http.ResponseWriter, _ *http.Request) {
	err := h.session.Checkout()
	if errors.Is(err, session.ErrCheckoutDisabled) {
		h.writeError(w, http.StatusNotImplemented, session.ErrCheckoutDisabled.Error())
		return
	}
	if err != nil {
		h.logger.Error("checkout failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(h.session.Cart()))
}

// ResetSession handles POST /api/v1/session/reset requests.
func (h *RESTHandler) ResetSession(w http.ResponseWriter, _ *http.Request) {
	h.session.Reset()
	h.writeJSON(w, http.StatusNoContent, nil)
}

// decodeProductForm decodes and validates a product form. On failure it
// writes the response and returns false.
func (h *RESTHandler) decodeProductForm(w http.ResponseWriter, r *http.Request) (model.ProductInput, bool) {
	var f form.ProductForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeErrorDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return model.ProductInput{}, false
	}

	input, err := form.Parse(f)
	if err != nil {
		vErr, ok := form.AsValidationError(err)
		if !ok {
			h.logger.Error("form parsing failed", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "internal server error")
			return model.ProductInput{}, false
		}
		h.logger.Debug("validation failed", zap.Error(err))
		resp := model.NewErrorResponse[form.FieldErrors]("validation failed")
		resp.Data = vErr.Fields
		h.writeJSON(w, http.StatusUnprocessableEntity, resp)
		return model.ProductInput{}, false
	}

	return input, true
}

func (h *RESTHandler) pagerResponse() PagerResponse {
	return PagerResponse{
		State: h.session.PagerState(),
		Page:  h.session.View(),
	}
}

func (h *RESTHandler) writeCart(w http.ResponseWriter, changed bool) {
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(CartResponse{
		Changed: changed,
		Cart:    h.session.Cart(),
	}))
}

// writeJSON writes a JSON response with the given status code.
func (h *RESTHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes an error response with the given status code and message.
func (h *RESTHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeErrorDetails(w, status, message, "")
}

// writeErrorDetails writes an error response carrying the offending input or
// the underlying error in Details.
func (h *RESTHandler) writeErrorDetails(w http.ResponseWriter, status int, message, details string) {
	h.writeJSON(w, status, model.ErrorResponse{
		Code:    status,
		Message: message,
		Details: details,
	})
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

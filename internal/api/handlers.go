package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/example/shopfront/internal/api/middleware"
	"github.com/example/shopfront/internal/domain/cart"
	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/example/shopfront/internal/domain/user"
	"github.com/example/shopfront/internal/infrastructure/blob"
)

type Handlers struct {
	carts    *cart.Service
	products *catalog.Service
	blobs    blob.Store
}

func NewHandlers(carts *cart.Service, products *catalog.Service, blobs blob.Store) *Handlers {
	return &Handlers{
		carts:    carts,
		products: products,
		blobs:    blobs,
	}
}

// Cart handlers. All three sit behind the session middleware; the identity
// in the context is already verified.

type cartItemRequest struct {
	ItemID int `json:"itemid"`
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "missing token"})
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, "invalid request body")
		return
	}

	if err := h.carts.Increment(r.Context(), identity, req.ItemID); err != nil {
		h.respondCartError(w, identity, err)
		return
	}

	// Fire-and-forget: success has no body
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "missing token"})
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, "invalid request body")
		return
	}

	if err := h.carts.Decrement(r.Context(), identity, req.ItemID); err != nil {
		h.respondCartError(w, identity, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "missing token"})
		return
	}

	snapshot, err := h.carts.Read(r.Context(), identity)
	if err != nil {
		h.respondCartError(w, identity, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

func (h *Handlers) respondCartError(w http.ResponseWriter, identity string, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidSlot):
		respondFailure(w, "invalid slot")
	case errors.Is(err, user.ErrEmptySlot):
		respondFailure(w, "slot is empty")
	case errors.Is(err, user.ErrUnknownIdentity):
		respondFailure(w, "unknown identity")
	default:
		log.Printf("[API] Cart operation failed for %s: %v", identity, err)
		respondInternalError(w)
	}
}

// Catalog handlers. Reachable without a token, exactly like the legacy
// backend.

type productNameResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

func (h *Handlers) AddProduct(w http.ResponseWriter, r *http.Request) {
	var np catalog.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&np); err != nil {
		respondFailure(w, "invalid request body")
		return
	}

	product, err := h.products.Create(r.Context(), np)
	if err != nil {
		log.Printf("[API] Failed to create product: %v", err)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, productNameResponse{Success: true, Name: product.Name})
}

func (h *Handlers) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, "invalid request body")
		return
	}

	removed, err := h.products.Delete(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondFailure(w, "product not found")
			return
		}
		log.Printf("[API] Failed to delete product %d: %v", req.ID, err)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, productNameResponse{Success: true, Name: removed.Name})
}

func (h *Handlers) AllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		log.Printf("[API] Failed to list products: %v", err)
		respondInternalError(w)
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}

	respondJSON(w, http.StatusOK, products)
}

// Upload accepts a multipart image under the "product" field and returns its
// public URL
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("product")
	if err != nil {
		respondFailure(w, "missing product file")
		return
	}
	defer file.Close()

	url, err := h.blobs.Save("product", header.Filename, file)
	if err != nil {
		log.Printf("[API] Failed to store upload: %v", err)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "image_url": url})
}

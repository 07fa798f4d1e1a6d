package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rkleiv/pos-backend/internal/catalog"
	"github.com/rkleiv/pos-backend/internal/label"
	"github.com/rkleiv/pos-backend/internal/sales"
	"github.com/rkleiv/pos-backend/internal/stock"
	"github.com/rkleiv/pos-backend/internal/tabular"
)

const Version = "1.3.0"

type SaleRecorder interface {
	RecordSale(ctx context.Context, req sales.Request) (sales.Result, error)
}

type POSHandler struct {
	Sales   SaleRecorder
	Catalog catalog.Resolver
	Stock   stock.Service
	Port    string
}

type SaleReq struct {
	ResellerID    string `json:"reseller_id"`
	ProductID     string `json:"product_id"`
	ShortID       string `json:"short_id"`
	Qty           *int   `json:"qty"`
	CustomerID    string `json:"customer_id"`
	PaymentMethod string `json:"payment_method"`
	AsOf          string `json:"as_of"`
}

func (h *POSHandler) Register(r *chi.Mux) {
	r.Get("/health", h.health)
	r.Get("/pos/stock", h.getStock)
	r.Post("/pos/sale", h.postSale)
	r.Get("/pos/label/{productID}", h.getLabel)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *POSHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": Version,
		"port":    h.Port,
	})
}

func (h *POSHandler) getStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.Stock.List(r.Context(), r.URL.Query().Get("reseller_id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if items == nil {
		items = []tabular.Row{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *POSHandler) postSale(w http.ResponseWriter, r *http.Request) {
	var req SaleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	qty := 1
	if req.Qty != nil {
		qty = *req.Qty
	}
	if req.CustomerID == "" {
		req.CustomerID = "C-000"
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}
	var asOf time.Time
	if req.AsOf != "" {
		d, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "as_of must be YYYY-MM-DD"})
			return
		}
		asOf = d
	}

	res, err := h.Sales.RecordSale(r.Context(), sales.Request{
		ResellerID:    req.ResellerID,
		ProductID:     req.ProductID,
		ShortID:       req.ShortID,
		Qty:           qty,
		CustomerID:    req.CustomerID,
		PaymentMethod: req.PaymentMethod,
		AsOf:          asOf,
	})
	if err != nil {
		writeSaleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeSaleError(w http.ResponseWriter, err error) {
	var ve sales.ValidationError
	var nf sales.NotFoundError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": nf.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *POSHandler) getLabel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	prod, err := h.Catalog.Resolve(r.Context(), id, "")
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	img, err := label.Render(prod)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

// Package api exposes the order service over HTTP/JSON.
package api

import (
	"errors"
	"io"
	"net/http"
	"path"

	"demo/printshop/internal/config"
	"demo/printshop/internal/model"
	"demo/printshop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	svc           *service.Service
	origins       []string
	exposeDetails bool
}

type Options struct {
	CORSOrigins        []string
	ExposeErrorDetails bool
}

func NewHandler(svc *service.Service, opts Options) *Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Handler{svc: svc, origins: origins, exposeDetails: opts.ExposeErrorDetails}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
	}))
	r.Use(middleware.RequestSize(config.MaxBodyBytes))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Print shop order API"))
	})
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/healthz", h.health)
	r.Get("/invoices/{name}", h.document)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Post("/products/{productId}/variations", h.addVariation)
		r.Put("/variations/{id}/price", h.updateVariationPrice)
		r.Delete("/variations/{id}", h.deleteVariation)

		r.Get("/customers", h.searchCustomers)
		r.Post("/customers/upsert", h.upsertCustomer)

		r.Route("/estimates", func(r chi.Router) {
			r.Get("/", h.listEstimates)
			r.Post("/", h.createEstimate)
			r.Get("/{id}", h.getEstimate)
			r.Put("/{id}", h.updateEstimate)
			r.Delete("/{id}", h.deleteEstimate)
			r.Get("/{id}/items", h.estimateItems)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.listInvoices)
			r.Post("/", h.createInvoice)
			r.Get("/{id}", h.getInvoice)
			r.Delete("/{id}", h.deleteInvoice)
			r.Get("/{id}/items", h.invoiceItems)
			r.Put("/{id}/pdf", h.attachInvoicePDF)
		})
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.svc.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("db unavailable"))
		return
	}
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) document(w http.ResponseWriter, r *http.Request) {
	name := path.Base(chi.URLParam(r, "name"))
	b, err := h.svc.Document(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			http.NotFound(w, r)
			return
		}
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(b))
	_, _ = w.Write(b)
}

// Catalog

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *Handler) addVariation(w http.ResponseWriter, r *http.Request) {
	productID, ok := idParam(w, r, "productId")
	if !ok {
		return
	}
	var in model.VariationInput
	if !decode(w, r, &in) {
		return
	}
	v, err := h.svc.AddVariation(r.Context(), productID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) updateVariationPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var in model.PriceInput
	if !decode(w, r, &in) {
		return
	}
	if err := h.svc.UpdateVariationPrice(r.Context(), id, in); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Price updated"})
}

func (h *Handler) deleteVariation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteVariation(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Variation deleted"})
}

// Customers

func (h *Handler) searchCustomers(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.SearchCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *Handler) upsertCustomer(w http.ResponseWriter, r *http.Request) {
	var in model.CustomerInput
	if !decode(w, r, &in) {
		return
	}
	id, err := h.svc.UpsertCustomer(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Estimates

func (h *Handler) listEstimates(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.ListEstimates(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, es)
}

func (h *Handler) createEstimate(w http.ResponseWriter, r *http.Request) {
	var in model.DraftInput
	if !decode(w, r, &in) {
		return
	}
	saved, err := h.svc.CreateEstimate(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) getEstimate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	e, err := h.svc.GetEstimate(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) updateEstimate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var in model.DraftInput
	if !decode(w, r, &in) {
		return
	}
	saved, err := h.svc.UpdateEstimate(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) deleteEstimate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEstimate(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Estimate deleted"})
}

func (h *Handler) estimateItems(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	items, err := h.svc.EstimateItems(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Invoices

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.ListInvoices(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invs)
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var in model.DraftInput
	if !decode(w, r, &in) {
		return
	}
	saved, err := h.svc.CreateInvoice(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	inv, err := h.svc.GetInvoice(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteInvoice(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Invoice deleted"})
}

func (h *Handler) invoiceItems(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	items, err := h.svc.InvoiceItems(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) attachInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read body"})
		return
	}
	link, err := h.svc.AttachInvoicePDF(r.Context(), id, body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"link": link})
}

package rcatalog

import (
	"log/slog"
	"net/http"

	"fixmarkt/server/pkg/fuzzyfinder"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mbrand"
	"fixmarkt/server/pkg/model/mdevice"
	"fixmarkt/server/pkg/ordering"
	"fixmarkt/server/pkg/service/sbrand"
	"fixmarkt/server/pkg/service/sbrandsection"
	"fixmarkt/server/pkg/service/sdevice"
	"fixmarkt/server/pkg/service/srepair"
	"fixmarkt/server/pkg/service/srepairtype"

	"github.com/goccy/go-json"
)

// CatalogServiceRPC serves the ordered catalog listings the admin pages
// render, plus a fuzzy name search.
type CatalogServiceRPC struct {
	sections sbrandsection.BrandSectionService
	brands   sbrand.BrandService
	devices  sdevice.DeviceService
	types    srepairtype.RepairTypeService
	repairs  srepair.RepairService
	logger   *slog.Logger
}

func New(
	sections sbrandsection.BrandSectionService,
	brands sbrand.BrandService,
	devices sdevice.DeviceService,
	types srepairtype.RepairTypeService,
	repairs srepair.RepairService,
	logger *slog.Logger,
) *CatalogServiceRPC {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogServiceRPC{
		sections: sections,
		brands:   brands,
		devices:  devices,
		types:    types,
		repairs:  repairs,
		logger:   logger,
	}
}

// Routes returns the handler mounted under /catalog.v1/.
func (h *CatalogServiceRPC) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog.v1/BrandSections", h.BrandSections)
	mux.HandleFunc("GET /catalog.v1/Brands", h.Brands)
	mux.HandleFunc("GET /catalog.v1/Devices", h.Devices)
	mux.HandleFunc("GET /catalog.v1/RepairTypes", h.RepairTypes)
	mux.HandleFunc("GET /catalog.v1/Repairs", h.Repairs)
	mux.HandleFunc("GET /catalog.v1/SearchDevices", h.SearchDevices)
	return mux
}

func (h *CatalogServiceRPC) BrandSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sections.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// Brands lists one section's sequence. sectionId may be an id, the
// "__none__" sentinel, or absent for all brands.
func (h *CatalogServiceRPC) Brands(w http.ResponseWriter, r *http.Request) {
	sectionParam := r.URL.Query().Get("sectionId")

	var brands []mbrand.Brand
	var err error
	switch sectionParam {
	case "":
		brands, err = h.brands.List(r.Context())
	case ordering.NoSection:
		brands, err = h.brands.ListBySection(r.Context(), nil)
	default:
		var sectionID idwrap.IDWrap
		sectionID, err = idwrap.NewText(sectionParam)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		brands, err = h.brands.ListBySection(r.Context(), &sectionID)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

// Devices lists by brandId or by deviceType; exactly one must be given.
func (h *CatalogServiceRPC) Devices(w http.ResponseWriter, r *http.Request) {
	brandParam := r.URL.Query().Get("brandId")
	typeParam := r.URL.Query().Get("deviceType")

	var devices []mdevice.Device
	var err error
	switch {
	case brandParam != "" && typeParam == "":
		var brandID idwrap.IDWrap
		brandID, err = idwrap.NewText(brandParam)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		devices, err = h.devices.ListByBrand(r.Context(), brandID)
	case typeParam != "" && brandParam == "":
		devices, err = h.devices.ListByType(r.Context(), typeParam)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pass brandId or deviceType"})
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

func (h *CatalogServiceRPC) RepairTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.types.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *CatalogServiceRPC) Repairs(w http.ResponseWriter, r *http.Request) {
	deviceID, err := idwrap.NewText(r.URL.Query().Get("deviceId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	repairs, err := h.repairs.ListByDevice(r.Context(), deviceID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, repairs)
}

type searchHit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchDevices fuzzy-matches device names for the admin quick-jump box.
func (h *CatalogServiceRPC) SearchDevices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusOK, []searchHit{})
		return
	}

	devices, err := h.devices.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.Name
	}

	ranks := fuzzyfinder.RankFind(names, query)
	hits := make([]searchHit, 0, len(ranks))
	for _, rank := range ranks {
		d := devices[rank.OriginalIndex]
		hits = append(hits, searchHit{ID: d.ID.String(), Name: d.Name})
	}
	writeJSON(w, http.StatusOK, hits)
}

func (h *CatalogServiceRPC) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "catalog request failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package application

import (
	"bytes"
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hydrologics/api-hydrodata/internal/pkg/application/services/hydrology"
	"github.com/hydrologics/api-hydrodata/internal/pkg/application/services/stations"
	"github.com/hydrologics/api-hydrodata/internal/pkg/application/services/watersheds"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/clients/nldi"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/clients/nwis"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/repositories/basincache"
	"github.com/hydrologics/api-hydrodata/internal/pkg/presentation/handlers"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type hydrodataAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, openapiResponse *bytes.Buffer) API {
	return newHydrodataAPI(r, ctx, openapiResponse)
}

func newHydrodataAPI(r chi.Router, ctx context.Context, openapiResponse *bytes.Buffer) *hydrodataAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"application/json", "application/geo+json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-hydrodata", otelchi.WithChiRoutes(r)))

	a := &hydrodataAPI{
		router: r,
		log:    log,
	}

	a.addHydrodataHandlers(r, log, ctx)
	a.addProbeHandlers(r)

	a.router.Get("/api/openapi", a.newRetrieveOpenAPIHandler(log, openapiResponse))

	return a
}

func (a *hydrodataAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-hydrodata on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *hydrodataAPI) addHydrodataHandlers(r chi.Router, log zerolog.Logger, ctx context.Context) {
	siteServiceURL := env.GetVariableOrDefault(log, "HYDRODATA_NWIS_URL", nwis.DefaultSiteServiceURL)
	drainageServiceURL := env.GetVariableOrDefault(log, "HYDRODATA_NLDI_URL", nldi.DefaultDrainageServiceURL)
	cacheDir := env.GetVariableOrDefault(log, "HYDRODATA_CACHE_DIR", "data")

	stationSvc := stations.NewStationService(ctx, log, nwis.NewSiteDirectory(siteServiceURL), stations.DefaultSearchHalfWidth)
	watershedSvc := watersheds.NewWatershedService(ctx, log, nldi.NewNetworkClient(drainageServiceURL), basincache.New(cacheDir))
	hydrologySvc := hydrology.NewHydrologyService(ctx, log, stationSvc, watershedSvc)

	r.Get(
		"/api/stations/nearest",
		handlers.NewRetrieveNearestStationHandler(log, stationSvc),
	)
	r.Get(
		"/api/stations/{id}",
		handlers.NewRetrieveStationByIDHandler(log, stationSvc),
	)
	r.Get(
		"/api/stations/{id}/watershed",
		handlers.NewRetrieveWatershedHandler(log, hydrologySvc),
	)
}

func (a *hydrodataAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (a *hydrodataAPI) newRetrieveOpenAPIHandler(log zerolog.Logger, openapiResponse *bytes.Buffer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openapiResponse == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(openapiResponse.Bytes())
	})
}

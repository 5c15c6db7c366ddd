package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/hydrologics/api-hydrodata/internal/pkg/application/services/stations"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-hydrodata/api")

func NewRetrieveStationByIDHandler(logger zerolog.Logger, svc stations.StationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-station-by-id")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		stationID, _ := url.QueryUnescape(chi.URLParam(r, "id"))
		if stationID == "" {
			err = fmt.Errorf("no station id supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		record, err := svc.ResolveByID(ctx, stationID)
		if err != nil {
			log.Error().Err(err).Msgf("failed to resolve station %s", stationID)
			w.WriteHeader(statusFromError(err))
			return
		}

		body, err := json.Marshal(record)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal station record")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		stationJSON := "{\n  \"data\": " + string(body) + "\n}"

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=3600")
		w.Write([]byte(stationJSON))
	})
}

func NewRetrieveNearestStationHandler(logger zerolog.Logger, svc stations.StationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-nearest-station")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		coordinate, err := getCoordinateFromURL(r)
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		record, err := svc.ResolveByCoordinate(ctx, coordinate)
		if err != nil {
			log.Error().Err(err).Msgf("failed to resolve station near (%f,%f)", coordinate.Longitude, coordinate.Latitude)
			w.WriteHeader(statusFromError(err))
			return
		}

		body, err := json.Marshal(record)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal station record")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		stationJSON := "{\n  \"data\": " + string(body) + "\n}"

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=3600")
		w.Write([]byte(stationJSON))
	})
}

// getCoordinateFromURL reads the coordinates query parameter on the form
// longitude,latitude.
func getCoordinateFromURL(r *http.Request) (domain.Coordinate, error) {
	coordinates := r.URL.Query().Get("coordinates")
	if coordinates == "" {
		return domain.Coordinate{}, fmt.Errorf("no coordinates supplied in query")
	}

	coords := strings.Split(coordinates, ",")
	if len(coords) != 2 {
		return domain.Coordinate{}, fmt.Errorf("coordinates must be supplied as longitude,latitude")
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("failed to parse longitude: %s", err.Error())
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("failed to parse latitude: %s", err.Error())
	}

	return domain.NewCoordinate(longitude, latitude), nil
}

func statusFromError(err error) int {
	if errors.Is(err, domain.ErrInvalidArgument) {
		return http.StatusBadRequest
	}

	if errors.Is(err, domain.ErrStationNotFound) || errors.Is(err, domain.ErrNoStationFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, domain.ErrUpstreamService) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

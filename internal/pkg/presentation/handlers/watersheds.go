package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/hydrologics/api-hydrodata/internal/pkg/application/services/hydrology"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"github.com/rs/zerolog"
)

const YearMonthDayISO8601 string = "2006-01-02"

type WatershedOut struct {
	Station          domain.StationRecord     `json:"station"`
	NetworkID        string                   `json:"networkId"`
	DrainageAreaSqKm float64                  `json:"drainageAreaSqKm"`
	TributaryCount   int                      `json:"tributaryCount"`
	MainChannel      []string                 `json:"mainChannel"`
	Basin            domain.FeatureCollection `json:"basin"`
}

func NewRetrieveWatershedHandler(logger zerolog.Logger, svc hydrology.HydrologyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-watershed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		stationID, _ := url.QueryUnescape(chi.URLParam(r, "id"))
		if stationID == "" {
			err = fmt.Errorf("no station id supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		start, end, err := getPeriodFromURL(r)
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		station, err := svc.NewStation(ctx, hydrology.NewStationParams{
			Start:     start,
			End:       end,
			StationID: stationID,
		})
		if err != nil {
			log.Error().Err(err).Msgf("failed to derive watershed for station %s", stationID)
			w.WriteHeader(statusFromError(err))
			return
		}

		network := station.Network()

		out := &WatershedOut{
			Station:          station.Record(),
			NetworkID:        network.NetworkID,
			DrainageAreaSqKm: network.DrainageAreaSqKm,
			TributaryCount:   len(network.Tributaries),
			MainChannel:      network.MainChannel,
			Basin:            network.Basin,
		}

		body, err := json.Marshal(out)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal watershed")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		watershedJSON := "{\n  \"data\": " + string(body) + "\n}"

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=3600")
		w.Write([]byte(watershedJSON))
	})
}

// getPeriodFromURL reads the optional start and end query parameters as
// dates, defaulting to the last day. The period rides along to downstream
// retrieval and is not range checked here.
func getPeriodFromURL(r *http.Request) (time.Time, time.Time, error) {
	var err error

	startTime := time.Now().UTC().Add(-1 * 24 * time.Hour)
	endTime := time.Now().UTC()

	from := r.URL.Query().Get("start")
	if from != "" {
		startTime, err = time.Parse(YearMonthDayISO8601, from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse start date: %s", err.Error())
		}
	}

	to := r.URL.Query().Get("end")
	if to != "" {
		endTime, err = time.Parse(YearMonthDayISO8601, to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse end date: %s", err.Error())
		}
	}

	return startTime, endTime, nil
}

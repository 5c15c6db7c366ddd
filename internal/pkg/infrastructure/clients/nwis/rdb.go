package nwis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
)

// Columns of the site service RDB output that we consume.
const (
	colSiteNo    = "site_no"
	colName      = "station_nm"
	colLatitude  = "dec_lat_va"
	colLongitude = "dec_long_va"
	colAltitude  = "alt_va"
	colDatum     = "alt_datum_cd"
)

// siteRow is one data row of an RDB site response. Numeric fields are nil
// when the corresponding column is blank, which happens for sites that lack
// a surveyed gage altitude.
type siteRow struct {
	siteNo    string
	name      string
	latitude  *float64
	longitude *float64
	altitude  *float64
	datum     string
}

// record converts a row to a station record, reporting false when the row
// lacks the fields a usable record needs. Altitudes arrive in feet above the
// local datum and are converted to meters here.
func (r siteRow) record() (domain.StationRecord, bool) {
	if r.siteNo == "" || r.latitude == nil || r.longitude == nil || r.altitude == nil {
		return domain.StationRecord{}, false
	}

	return domain.StationRecord{
		ID:         r.siteNo,
		Name:       r.name,
		Coordinate: domain.NewCoordinate(*r.longitude, *r.latitude),
		AltitudeM:  domain.FeetToMeters(*r.altitude),
		Datum:      r.datum,
	}, true
}

// parseRDB decodes the tab delimited RDB format used by the site service.
// Lines starting with a hash are comments, the first row holds column names
// and the row after it carries column widths.
func parseRDB(r io.Reader) ([]siteRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rdb body: %s", err.Error())
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("rdb body contains no header")
	}

	index := map[string]int{}
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range []string{colSiteNo, colName, colLatitude, colLongitude, colAltitude, colDatum} {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("rdb body is missing column %s", name)
		}
	}

	rows := make([]siteRow, 0, len(records)-2)

	for _, record := range records[2:] {
		if row, ok := decodeRow(index, record); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// decodeRow types a single data row, reporting false for rows whose numeric
// columns cannot be parsed. A malformed row is skipped on its own, it must
// not fail the rows around it.
func decodeRow(index map[string]int, record []string) (siteRow, bool) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	row := siteRow{
		siteNo: field(colSiteNo),
		name:   field(colName),
		datum:  field(colDatum),
	}

	var ok bool
	if row.latitude, ok = optionalFloat(field(colLatitude)); !ok {
		return siteRow{}, false
	}
	if row.longitude, ok = optionalFloat(field(colLongitude)); !ok {
		return siteRow{}, false
	}
	if row.altitude, ok = optionalFloat(field(colAltitude)); !ok {
		return siteRow{}, false
	}

	return row, true
}

// optionalFloat parses a possibly blank numeric column. Blank stays nil,
// anything unparseable reports false.
func optionalFloat(value string) (*float64, bool) {
	if value == "" {
		return nil, true
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, false
	}

	return &f, true
}

package repositories

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	intdb "skyrio/internal/db"
	"skyrio/internal/domain"
	"skyrio/internal/domain/models"
)

//go:embed fixtures/airports.json
var defaultAirports []byte

const airportsTable = "airports"

// AirportRepository is an immutable in-memory airport catalog. Safe for
// concurrent reads once built.
type AirportRepository struct {
	airports []models.Airport
	names    []string
	codes    []string
}

// NewAirportRepository validates records and precomputes the lowercased
// match keys. Every record needs a name and a code.
func NewAirportRepository(list []models.Airport) (*AirportRepository, error) {
	r := &AirportRepository{
		airports: make([]models.Airport, 0, len(list)),
		names:    make([]string, 0, len(list)),
		codes:    make([]string, 0, len(list)),
	}
	for i, a := range list {
		a.Name = strings.TrimSpace(a.Name)
		a.Code = strings.TrimSpace(a.Code)
		if a.Name == "" || a.Code == "" {
			return nil, domain.ValidationError{
				Field: fmt.Sprintf("airports[%d]", i),
				Msg:   "name and code are required",
			}
		}
		r.airports = append(r.airports, a)
		r.names = append(r.names, strings.ToLower(a.Name))
		r.codes = append(r.codes, strings.ToLower(a.Code))
	}
	return r, nil
}

func (r *AirportRepository) Len() int {
	return len(r.airports)
}

// Search returns, in catalog order, the airports whose name or code contains
// q case-insensitively. An empty q matches everything. Never returns nil.
func (r *AirportRepository) Search(q string) []models.Airport {
	q = strings.ToLower(q)
	out := make([]models.Airport, 0)
	for i := range r.airports {
		if strings.Contains(r.names[i], q) || strings.Contains(r.codes[i], q) {
			out = append(out, r.airports[i])
		}
	}
	return out
}

// LoadAirportsJSON decodes a JSON array of airport records.
func LoadAirportsJSON(rd io.Reader) ([]models.Airport, error) {
	var list []models.Airport
	if err := json.NewDecoder(rd).Decode(&list); err != nil {
		return nil, domain.ValidationError{Field: "airports", Msg: "invalid airport fixture", Err: err}
	}
	return list, nil
}

// LoadAirportsFile reads a fixture from disk. An empty path selects the
// embedded default fixture.
func LoadAirportsFile(path string) ([]models.Airport, error) {
	if strings.TrimSpace(path) == "" {
		return LoadAirportsJSON(bytes.NewReader(defaultAirports))
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NotFoundError{Resource: "airport fixture " + path, Err: err}
		}
		return nil, domain.InternalError{Msg: "open airport fixture", Err: err}
	}
	defer f.Close()
	return LoadAirportsJSON(f)
}

// LoadAirportsDB snapshots the airports table. The table is only read.
// A connection or permission failure surfaces as InternalError, never as a
// missing table.
func LoadAirportsDB(ctx context.Context, conn *sql.DB) ([]models.Airport, error) {
	ok, err := intdb.HasTable(ctx, conn, airportsTable)
	if err != nil {
		return nil, domain.InternalError{Msg: "check airports table", Err: err}
	}
	if !ok {
		return nil, domain.NotFoundError{Resource: "table " + airportsTable}
	}

	rows, err := conn.QueryContext(ctx, `
		SELECT name, code,
		       COALESCE(city, ''), COALESCE(country, ''),
		       COALESCE(lat, 0), COALESCE(lon, 0)
		FROM airports
		ORDER BY name
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "query airports", Err: err}
	}
	defer rows.Close()

	list := []models.Airport{}
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.Name, &a.Code, &a.City, &a.Country, &a.Lat, &a.Lon); err != nil {
			return nil, domain.InternalError{Msg: "scan airport", Err: err}
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate airports", Err: err}
	}
	return list, nil
}

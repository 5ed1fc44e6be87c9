package sar

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Geocoder resolves place names and coordinates via an external service.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (float64, float64, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}

// ImagerySource fetches satellite products for a point and date window.
// Implementations return an empty map rather than failing.
type ImagerySource interface {
	Products(ctx context.Context, lat, lon float64, startDate, endDate string) map[string]interface{}
}

// imageryWindow is how far back the product search looks.
const imageryWindow = 30 * 24 * time.Hour

type Service struct {
	repo    Repository
	geo     Geocoder
	imagery ImagerySource
	now     func() time.Time
}

func NewService(repo Repository, geo Geocoder, imagery ImagerySource) *Service {
	return &Service{repo: repo, geo: geo, imagery: imagery, now: time.Now}
}

func (s *Service) validate(r *Request) error {
	r.EmergencyType = strings.TrimSpace(r.EmergencyType)
	r.Location = strings.TrimSpace(r.Location)
	if r.EmergencyType == "" {
		return fmt.Errorf("emergency_type is required")
	}
	if r.Location == "" {
		return fmt.Errorf("location is required")
	}
	if r.Urgency == "" {
		return fmt.Errorf("urgency is required")
	}
	return nil
}

// Create stores a request as given, without any geo enrichment.
func (s *Service) Create(ctx context.Context, r *Request) (*Request, error) {
	if err := s.validate(r); err != nil {
		return nil, err
	}
	if r.SatelliteData == nil {
		r.SatelliteData = map[string]interface{}{}
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ErrUnresolvedLocation reports a place name the geocoder could not resolve.
type ErrUnresolvedLocation struct{ Name string }

func (e *ErrUnresolvedLocation) Error() string {
	return fmt.Sprintf("could not geocode location %q", e.Name)
}

// CreateWithImagery resolves the request location to coordinates, attaches
// recent satellite products for the point, and stores the request. Location
// is either "lat,lon" or a place name. A place name that geocodes keeps the
// stored form "NAME[lat,lon]"; raw coordinates are replaced by the
// reverse-geocoded display name.
func (s *Service) CreateWithImagery(ctx context.Context, r *Request) (*Request, error) {
	if err := s.validate(r); err != nil {
		return nil, err
	}

	lat, lon, isCoords := parseCoords(r.Location)
	label := ""
	if !isCoords {
		var err error
		lat, lon, err = s.geo.Geocode(ctx, r.Location)
		if err != nil {
			return nil, &ErrUnresolvedLocation{Name: r.Location}
		}
		label = r.Location
	}

	end := s.now()
	start := end.Add(-imageryWindow)
	r.SatelliteData = s.imagery.Products(ctx, lat, lon,
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	display := s.geo.ReverseGeocode(ctx, lat, lon)
	if label != "" {
		r.Location = fmt.Sprintf("%s[%s,%s]", label,
			strconv.FormatFloat(lat, 'f', -1, 64),
			strconv.FormatFloat(lon, 'f', -1, 64))
	} else {
		r.Location = display
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Request, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update rewrites the mutable fields of an existing request.
func (s *Service) Update(ctx context.Context, r *Request) error {
	if r.SatelliteData == nil {
		r.SatelliteData = map[string]interface{}{}
	}
	return s.repo.Update(ctx, r)
}

// parseCoords accepts "lat,lon" with optional whitespace.
func parseCoords(location string) (float64, float64, bool) {
	parts := strings.SplitN(location, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

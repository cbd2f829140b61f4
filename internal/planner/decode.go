package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"yatra/internal/models/response_models"
)

var (
	errMissingDestination = errors.New("document has no destination")
	errMissingItinerary   = errors.New("document itinerary is missing or not an array")
	errEmptyItinerary     = errors.New("document itinerary is empty")
)

var firstIntegerPattern = regexp.MustCompile(`\d+`)

// lenientText accepts strings, numbers, booleans and arrays of those, since the
// generator does not always respect the declared field types.
type lenientText string

func (t *lenientText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = lenientText(s)
	case '[':
		var parts []lenientText
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			if p != "" {
				items = append(items, string(p))
			}
		}
		*t = lenientText(strings.Join(items, ", "))
	case '{':
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return err
		}
		*t = lenientText(compact.String())
	default:
		*t = lenientText(data)
	}
	return nil
}

// lenientList accepts an array or a single scalar.
type lenientList []string

func (l *lenientList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []lenientText
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s := strings.TrimSpace(string(it)); s != "" {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	}
	var single lenientText
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if s := strings.TrimSpace(string(single)); s != "" {
		*l = lenientList{s}
	} else {
		*l = nil
	}
	return nil
}

// lenientNumber accepts a JSON number or a string holding one ("4.5", "Day 2").
type lenientNumber float64

func (n *lenientNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*n = lenientNumber(f)
			return nil
		}
		if m := firstIntegerPattern.FindString(s); m != "" {
			f, _ := strconv.ParseFloat(m, 64)
			*n = lenientNumber(f)
			return nil
		}
		*n = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = lenientNumber(f)
	return nil
}

type wireDay struct {
	Day        lenientNumber `json:"day"`
	Activities lenientList   `json:"activities"`
}

type wireHotel struct {
	Name        lenientText   `json:"name"`
	Description lenientText   `json:"description"`
	Image       lenientText   `json:"image"`
	PriceRange  lenientText   `json:"priceRange"`
	Rating      lenientNumber `json:"rating"`
	Amenities   lenientList   `json:"amenities"`
}

type wireDocument struct {
	Destination          lenientText     `json:"destination"`
	DestinationImage     lenientText     `json:"destinationImage"`
	Dates                lenientText     `json:"dates"`
	Itinerary            json.RawMessage `json:"itinerary"`
	Accommodations       lenientText     `json:"accommodations"`
	Transportation       lenientText     `json:"transportation"`
	LocalTips            lenientText     `json:"localTips"`
	EstimatedCost        lenientText     `json:"estimatedCost"`
	HotelRecommendations json.RawMessage `json:"hotelRecommendations"`
}

// decodeTripPlan parses candidate as a single trip plan document and applies
// the validity check: a destination and a non-empty itinerary array.
func decodeTripPlan(candidate string) (*response_models.TripPlan, error) {
	var doc wireDocument
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(string(doc.Destination))
	if destination == "" {
		return nil, errMissingDestination
	}

	itinerary := bytes.TrimSpace(doc.Itinerary)
	if len(itinerary) == 0 || itinerary[0] != '[' {
		return nil, errMissingItinerary
	}
	var days []wireDay
	if err := json.Unmarshal(itinerary, &days); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, errEmptyItinerary
	}

	plan := &response_models.TripPlan{
		Destination:      destination,
		DestinationImage: strings.TrimSpace(string(doc.DestinationImage)),
		Dates:            string(doc.Dates),
		Itinerary:        make([]response_models.DayPlan, 0, len(days)),
		Accommodations:   string(doc.Accommodations),
		Transportation:   string(doc.Transportation),
		LocalTips:        string(doc.LocalTips),
		EstimatedCost:    string(doc.EstimatedCost),
	}
	for i, d := range days {
		day := int(d.Day)
		if day < 1 {
			day = i + 1
		}
		plan.Itinerary = append(plan.Itinerary, response_models.DayPlan{
			Day:        day,
			Activities: []string(d.Activities),
		})
	}
	plan.HotelRecommendations = decodeHotels(doc.HotelRecommendations)

	return plan, nil
}

// decodeHotels is best-effort: a malformed hotel list drops the hotels, not the plan.
func decodeHotels(raw json.RawMessage) []response_models.HotelSuggestion {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []response_models.HotelSuggestion{}
	}
	var hotels []wireHotel
	if err := json.Unmarshal(raw, &hotels); err != nil {
		return []response_models.HotelSuggestion{}
	}
	out := make([]response_models.HotelSuggestion, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, response_models.HotelSuggestion{
			Name:        strings.TrimSpace(string(h.Name)),
			Description: string(h.Description),
			Image:       strings.TrimSpace(string(h.Image)),
			PriceRange:  string(h.PriceRange),
			Rating:      float64(h.Rating),
			Amenities:   []string(h.Amenities),
		})
	}
	return out
}

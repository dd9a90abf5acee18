package venues

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
)

const (
	PageSize        = 30
	DefaultMaxPrice = 10000
)

type Sort string

const (
	SortRecommended Sort = "recommended"
	SortPriceLow    Sort = "price-low"
	SortPriceHigh   Sort = "price-high"
	SortRating      Sort = "rating"
)

type Query struct {
	Search    string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Guests    int
	Amenities []string
	City      string
	Country   string
	Sort      Sort
	Page      int
}

type Result struct {
	Venues  []Summary `json:"venues"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	HasMore bool      `json:"hasMore"`
}

// ParseQuery reads the list page's query string. Amenities may repeat or be comma separated.
func ParseQuery(v url.Values) (Query, error) {
	q := Query{
		Search:   strings.TrimSpace(v.Get("q")),
		MaxPrice: DefaultMaxPrice,
		City:     strings.TrimSpace(v.Get("city")),
		Country:  strings.TrimSpace(v.Get("country")),
		Sort:     SortRecommended,
		Page:     1,
	}

	var err error
	if q.MinPrice, err = floatParam(v, "minPrice", q.MinPrice); err != nil {
		return Query{}, err
	}
	if q.MaxPrice, err = floatParam(v, "maxPrice", q.MaxPrice); err != nil {
		return Query{}, err
	}
	if q.MinRating, err = floatParam(v, "minRating", q.MinRating); err != nil {
		return Query{}, err
	}
	if q.Guests, err = intParam(v, "guests", q.Guests); err != nil {
		return Query{}, err
	}
	if q.Page, err = intParam(v, "page", q.Page); err != nil {
		return Query{}, err
	}
	if q.Page < 1 {
		return Query{}, fmt.Errorf("page must be at least 1")
	}

	if s := v.Get("sort"); s != "" {
		switch Sort(s) {
		case SortRecommended, SortPriceLow, SortPriceHigh, SortRating:
			q.Sort = Sort(s)
		default:
			return Query{}, fmt.Errorf("unknown sort %q", s)
		}
	}

	for _, raw := range v["amenities"] {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				q.Amenities = append(q.Amenities, a)
			}
		}
	}

	return q, nil
}

func floatParam(v url.Values, key string, def float64) (float64, error) {
	s := v.Get(key)
	if s == "" {
		return def, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}

	return f, nil
}

func intParam(v url.Values, key string, def int) (int, error) {
	s := v.Get(key)
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}

	return n, nil
}

// Search filters, sorts and pages the venues. "Recommended" keeps the API order.
func Search(all []Summary, q Query) Result {
	matched := make([]Summary, 0, len(all))
	for _, v := range all {
		if q.matches(v) {
			matched = append(matched, v)
		}
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Rating > matched[j].Rating })
	}

	page := max(q.Page, 1)
	shown := min(page*PageSize, len(matched))

	return Result{
		Venues:  matched[:shown],
		Total:   len(matched),
		Page:    page,
		HasMore: shown < len(matched),
	}
}

func (q Query) matches(v Summary) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(v.Name), needle) &&
			!strings.Contains(strings.ToLower(v.Location), needle) &&
			!strings.Contains(strings.ToLower(v.Description), needle) {
			return false
		}
	}

	maxPrice := q.MaxPrice
	if maxPrice <= 0 {
		maxPrice = DefaultMaxPrice
	}
	if (q.MinPrice > 0 || maxPrice < DefaultMaxPrice) && (v.Price < q.MinPrice || v.Price > maxPrice) {
		return false
	}

	if q.MinRating > 0 && v.Rating < q.MinRating {
		return false
	}

	if q.Guests > 0 && v.MaxGuests < q.Guests {
		return false
	}

	for _, a := range q.Amenities {
		if !slices.Contains(v.Amenities, a) {
			return false
		}
	}

	if q.City != "" && !strings.EqualFold(v.City, q.City) {
		return false
	}

	if q.Country != "" && !strings.EqualFold(v.Country, q.Country) {
		return false
	}

	return true
}

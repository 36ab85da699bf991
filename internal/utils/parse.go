package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePattern parses a comma-separated list of point identifiers, e.g.
// "15,23,41,10,39".
func ParsePattern(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("pattern is empty")
	}

	parts := strings.Split(s, ",")
	points := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern point %q: must be a number", part)
		}
		points = append(points, n)
	}

	return points, nil
}

// ParseCoordinates parses a "latitude,longitude" pair, e.g. "-36.85,174.76".
func ParseCoordinates(s string) (lat, lon float64, err error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coordinates must be latitude,longitude")
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q", strings.TrimSpace(parts[0]))
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q", strings.TrimSpace(parts[1]))
	}

	return lat, lon, nil
}

package utils

import (
	"reflect"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"basic", "15,23,41,10,39", []int{15, 23, 41, 10, 39}, false},
		{"with spaces", " 1, 2 ,3 , 4", []int{1, 2, 3, 4}, false},
		{"single point", "7", []int{7}, false},
		{"empty", "", nil, true},
		{"whitespace only", "   ", nil, true},
		{"non-numeric", "1,2,x,4", nil, true},
		{"trailing comma", "1,2,3,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePattern(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePattern(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"basic", "-36.85,174.76", -36.85, 174.76, false},
		{"integers", "0,0", 0, 0, false},
		{"with spaces", " 12.5 , -7.25 ", 12.5, -7.25, false},
		{"missing part", "12.5", 0, 0, true},
		{"too many parts", "1,2,3", 0, 0, true},
		{"non-numeric", "north,south", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := ParseCoordinates(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoordinates(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if lat != tt.lat || lon != tt.lon {
				t.Errorf("ParseCoordinates(%q) = (%v, %v), want (%v, %v)", tt.input, lat, lon, tt.lat, tt.lon)
			}
		})
	}
}

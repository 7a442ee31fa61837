package handlers

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSalary_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{`85000`, 85000, false},
		{`"85000"`, 85000, false},
		{`" 120 "`, 120, false},
		{`0`, 0, false},
		{`-5`, -5, false},
		{`"not-a-number"`, 0, true},
		{`12.5`, 0, true},
		{`""`, 0, true},
		{`true`, 0, true},
	}
	for _, tt := range tests {
		var s Salary
		err := json.Unmarshal([]byte(tt.in), &s)
		if tt.wantErr {
			if !errors.Is(err, errSalaryNotWhole) {
				t.Errorf("%s: expected errSalaryNotWhole, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || int(s) != tt.want {
			t.Errorf("%s: got %d, %v; want %d", tt.in, s, err, tt.want)
		}
	}
}

func TestSalary_InsideRequest(t *testing.T) {
	var req createJobRequest
	err := json.Unmarshal([]byte(`{"title":"x","salary":"not-a-number"}`), &req)
	if !errors.Is(err, errSalaryNotWhole) {
		t.Fatalf("expected errSalaryNotWhole, got %v", err)
	}
}

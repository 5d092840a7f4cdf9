package service_test

import (
	"testing"
	"time"

	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/service"
)

func sampleLog() []domain.Exercise {
	return []domain.Exercise{
		{Description: "run", Duration: 30, Date: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{Description: "swim", Duration: 45, Date: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Description: "lift", Duration: 20, Date: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)},
		{Description: "row", Duration: 25, Date: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
}

func descriptions(exercises []domain.Exercise) []string {
	out := make([]string, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, e.Description)
	}
	return out
}

func TestParseLogFilter(t *testing.T) {
	testCases := []struct {
		name      string
		in        service.LogInput
		wantFrom  bool
		wantTo    bool
		wantLimit bool
	}{
		{"all absent", service.LogInput{UserID: "abc1234"}, false, false, false},
		{"all present", service.LogInput{UserID: "abc1234", From: "2023-01-01", To: "2023-12-31", Limit: "5"}, true, true, true},
		{"malformed from", service.LogInput{UserID: "abc1234", From: "January 1st"}, false, false, false},
		{"malformed to", service.LogInput{UserID: "abc1234", To: "31/12/2023"}, false, false, false},
		{"malformed limit", service.LogInput{UserID: "abc1234", Limit: "five"}, false, false, false},
		{"negative limit", service.LogInput{UserID: "abc1234", Limit: "-1"}, false, false, false},
		{"zero limit", service.LogInput{UserID: "abc1234", Limit: "0"}, false, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := service.ParseLogFilter(tc.in)
			if (f.From != nil) != tc.wantFrom {
				t.Errorf("From set = %v, expected %v", f.From != nil, tc.wantFrom)
			}
			if (f.To != nil) != tc.wantTo {
				t.Errorf("To set = %v, expected %v", f.To != nil, tc.wantTo)
			}
			if (f.Limit != nil) != tc.wantLimit {
				t.Errorf("Limit set = %v, expected %v", f.Limit != nil, tc.wantLimit)
			}
		})
	}
}

func TestFilterLog(t *testing.T) {
	date := func(value string) *time.Time {
		d, err := time.ParseInLocation("2006-01-02", value, time.UTC)
		if err != nil {
			t.Fatalf("bad test date %q: %v", value, err)
		}
		return &d
	}
	limit := func(n int) *int { return &n }

	testCases := []struct {
		name     string
		filter   domain.LogFilter
		expected []string
	}{
		{"no filter", domain.LogFilter{}, []string{"run", "swim", "lift", "row"}},
		{"from only", domain.LogFilter{From: date("2023-02-01")}, []string{"swim", "lift", "row"}},
		{"to only", domain.LogFilter{To: date("2023-02-01")}, []string{"run", "swim"}},
		{"window", domain.LogFilter{From: date("2023-01-20"), To: date("2023-02-15")}, []string{"swim"}},
		{"boundaries inclusive", domain.LogFilter{From: date("2023-01-15"), To: date("2023-03-10")}, []string{"run", "swim", "lift", "row"}},
		{"empty window", domain.LogFilter{From: date("2023-06-01"), To: date("2023-07-01")}, []string{}},
		{"limit truncates head", domain.LogFilter{Limit: limit(2)}, []string{"run", "swim"}},
		{"limit beyond length", domain.LogFilter{Limit: limit(10)}, []string{"run", "swim", "lift", "row"}},
		{"limit zero", domain.LogFilter{Limit: limit(0)}, []string{}},
		{"window then limit", domain.LogFilter{From: date("2023-02-01"), Limit: limit(1)}, []string{"swim"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := descriptions(service.FilterLog(sampleLog(), tc.filter))
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			for i := range tc.expected {
				if got[i] != tc.expected[i] {
					t.Errorf("position %d: expected %s, got %s", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestFilterLog_DoesNotMutateInput(t *testing.T) {
	exercises := sampleLog()
	n := 1

	service.FilterLog(exercises, domain.LogFilter{Limit: &n})

	if len(exercises) != 4 {
		t.Fatalf("input slice mutated: %d entries", len(exercises))
	}
	if exercises[3].Description != "row" {
		t.Errorf("input slice reordered: %+v", exercises)
	}
}

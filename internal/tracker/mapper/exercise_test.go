package mapper_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/mapper"
)

func TestFormatDate(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"sunday", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), "Sun Jan 15 2023"},
		{"single digit day padded", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), "Wed Feb 01 2023"},
		{"year boundary", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "Tue Dec 31 2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapper.FormatDate(tc.date); got != tc.expected {
				t.Errorf("FormatDate = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestCreatedExerciseToDTO(t *testing.T) {
	user := domain.User{ID: "abc1234", Username: "alice"}
	exercise := domain.Exercise{
		Description: "run",
		Duration:    30,
		Date:        time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	dto := mapper.CreatedExerciseToDTO(user, exercise)

	if dto.Username != "alice" || dto.ID != "abc1234" {
		t.Errorf("user fields mismatch: %+v", dto)
	}
	if dto.Description != "run" || dto.Duration != 30 {
		t.Errorf("exercise fields mismatch: %+v", dto)
	}
	if dto.Date != "Sun Jan 15 2023" {
		t.Errorf("expected formatted date, got %q", dto.Date)
	}
}

func TestLogToDTO(t *testing.T) {
	user := domain.User{ID: "abc1234", Username: "alice"}
	exercises := []domain.Exercise{
		{Description: "run", Duration: 30, Date: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{Description: "swim", Duration: 45, Date: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	dto := mapper.LogToDTO(user, exercises)

	if dto.Count != 2 {
		t.Errorf("expected count 2, got %d", dto.Count)
	}
	if len(dto.Log) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(dto.Log))
	}
	if dto.Log[0].Description != "run" || dto.Log[1].Description != "swim" {
		t.Errorf("log order mismatch: %+v", dto.Log)
	}
}

func TestLogToDTO_EmptyLogSerializesAsArray(t *testing.T) {
	user := domain.User{ID: "abc1234", Username: "alice"}

	body, err := json.Marshal(mapper.LogToDTO(user, nil))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !strings.Contains(string(body), `"log":[]`) {
		t.Errorf("expected empty array for log, got %s", body)
	}
	if !strings.Contains(string(body), `"count":0`) {
		t.Errorf("expected zero count, got %s", body)
	}
}

func TestUsersToDTO_EmptySerializesAsArray(t *testing.T) {
	body, err := json.Marshal(mapper.UsersToDTO(nil))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if string(body) != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}

package mapper

import (
	"time"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/constants"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
)

type UserDTO struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

type ExerciseDTO struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type CreatedExerciseDTO struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

type LogDTO struct {
	Username string        `json:"username"`
	Count    int           `json:"count"`
	ID       string        `json:"id"`
	Log      []ExerciseDTO `json:"log"`
}

// FormatDate renders a stored calendar date in the fixed
// day-of-week form, e.g. "Sun Jan 15 2023".
func FormatDate(t time.Time) string {
	return t.Format(constants.ResponseDateLayout)
}

func UserToDTO(user domain.User) UserDTO {
	return UserDTO{
		Username: user.Username,
		ID:       string(user.ID),
	}
}

func UsersToDTO(users []domain.User) []UserDTO {
	result := make([]UserDTO, len(users))
	for i, u := range users {
		result[i] = UserToDTO(u)
	}
	return result
}

func ExerciseToDTO(e domain.Exercise) ExerciseDTO {
	return ExerciseDTO{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
	}
}

func CreatedExerciseToDTO(user domain.User, e domain.Exercise) CreatedExerciseDTO {
	return CreatedExerciseDTO{
		Username:    user.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
		ID:          string(user.ID),
	}
}

func LogToDTO(user domain.User, exercises []domain.Exercise) LogDTO {
	log := make([]ExerciseDTO, len(exercises))
	for i, e := range exercises {
		log[i] = ExerciseToDTO(e)
	}
	return LogDTO{
		Username: user.Username,
		Count:    len(log),
		ID:       string(user.ID),
		Log:      log,
	}
}

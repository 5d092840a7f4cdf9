package domain

import "time"

type ID string

// User is immutable after creation. Usernames are not unique; only ids
// identify a user.
type User struct {
	ID        ID
	Username  string
	CreatedAt time.Time
}

package domain

import "time"

// Exercise is a logged activity record owned by exactly one user.
// Date holds a calendar date as UTC midnight.
type Exercise struct {
	Description string
	Duration    int
	Date        time.Time
}

// LogFilter narrows a user's exercise sequence. Nil fields mean the
// corresponding filter is absent.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

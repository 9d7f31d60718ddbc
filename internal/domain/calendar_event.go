package domain

const UntitledEvent = "(Untitled)"

type CalendarEvent struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	IsAllDay bool    `json:"is_all_day"`
	MeetLink *string `json:"meet_link"`
	Location *string `json:"location"`
	HTMLLink *string `json:"html_link"`
}

type UpcomingEventsReport struct {
	UpdatedAt  string          `json:"updatedAt"`
	CalendarID string          `json:"calendar_id"`
	TimeZone   *string         `json:"time_zone"`
	Events     []CalendarEvent `json:"events"`
}

// CalendarEvents é a lista normalizada de próximos eventos de uma agenda
type CalendarEvents struct {
	TimeZone *string
	Events   []CalendarEvent
}

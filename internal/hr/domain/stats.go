package domain

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalEmployees       int
	PresentToday         int
	PendingLeaveRequests int
	Departments          map[string]int // department name -> headcount
}

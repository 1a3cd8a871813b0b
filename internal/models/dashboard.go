package models

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	Title       string `json:"title" yaml:"title"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
	Trend       Trend  `json:"trend" yaml:"trend"`
}

// Trend is the percentage change badge on a stat card.
type Trend struct {
	Value      int  `json:"value" yaml:"value"`
	IsPositive bool `json:"is_positive" yaml:"is_positive"`
}

// BookingPoint is a single day of the weekly booking chart.
type BookingPoint struct {
	Day      string `json:"day" yaml:"day"`
	Bookings int    `json:"bookings" yaml:"bookings"`
}

// AdminProfile is the signed-in administrator card.
type AdminProfile struct {
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Role       string `json:"role" yaml:"role"`
	Department string `json:"department" yaml:"department"`
}

// DashboardSummary aggregates the dashboard view.
type DashboardSummary struct {
	Stats          []StatCard     `json:"stats"`
	WeeklyBookings []BookingPoint `json:"weekly_bookings"`
	Profile        AdminProfile   `json:"profile"`
}

// StatusSlice is one segment of a grouped count.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MaintenanceStats groups tickets for the maintenance statistics view.
type MaintenanceStats struct {
	Total      int           `json:"total"`
	ByStatus   []StatusSlice `json:"by_status"`
	ByPriority []StatusSlice `json:"by_priority"`
}

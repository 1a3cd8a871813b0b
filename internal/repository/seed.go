package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

//go:embed fixtures/seed.yaml
var seedFixture []byte

// DashboardSeed holds the static dashboard figures.
type DashboardSeed struct {
	Stats          []models.StatCard     `yaml:"stats"`
	WeeklyBookings []models.BookingPoint `yaml:"weekly_bookings"`
	Profile        models.AdminProfile   `yaml:"profile"`
}

// Seed is the mock data every store starts from.
type Seed struct {
	Tickets   []models.Ticket           `yaml:"tickets"`
	Requests  []models.Request          `yaml:"requests"`
	Rooms     []models.Room             `yaml:"rooms"`
	Lecturers []models.Lecturer         `yaml:"lecturers"`
	Users     []models.User             `yaml:"users"`
	Settings  models.SystemSettings     `yaml:"settings"`
	Reports   []models.ReportDefinition `yaml:"reports"`
	Dashboard DashboardSeed             `yaml:"dashboard"`
}

// LoadSeed parses the embedded fixture. Each call returns fresh data.
func LoadSeed() (*Seed, error) {
	return ParseSeed(seedFixture)
}

// ParseSeed decodes a seed document.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}
	return &seed, nil
}

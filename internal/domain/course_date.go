package domain

import (
	"time"

	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// BookingUserStatus статус назначения участника на дату курса
type BookingUserStatus string

const (
	BookingActive    BookingUserStatus = "active"
	BookingCancelled BookingUserStatus = "cancelled"
)

// CourseDate represents one concrete scheduled occurrence of a course.
type CourseDate struct {
	ID         types.NumericID
	IntervalID *types.NumericID
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Groups     []CourseGroup
}

// CourseGroup partitions a course date's participants by degree (skill level).
type CourseGroup struct {
	ID        types.NumericID
	DegreeID  types.NumericID
	Subgroups []CourseSubgroup
}

// CourseSubgroup is a capacity-bounded unit within a degree/date combination.
type CourseSubgroup struct {
	ID       types.NumericID
	DegreeID types.NumericID
	// MaxParticipants вместимость подгруппы; 0 = без лимита
	MaxParticipants int
	MonitorID       *types.NumericID
	Bookings        []BookingUser
}

// BookingUser is the assignment of one participant to one course date and subgroup.
type BookingUser struct {
	ID            types.NumericID
	ParticipantID types.NumericID
	CourseDateID  types.NumericID
	SubgroupID    types.NumericID
	DegreeID      types.NumericID
	Status        BookingUserStatus
	Attended      *bool
}

// Participant represents an individual taking part in a booking
// (may differ from the paying client).
type Participant struct {
	ID   types.NumericID
	Name string
	Age  int
}

// IsActive returns true if the assignment counts towards occupancy.
func (b *BookingUser) IsActive() bool {
	return b.Status == BookingActive
}

// GroupByDegree возвращает группу даты для указанного уровня (или nil)
func (d *CourseDate) GroupByDegree(degreeID types.NumericID) *CourseGroup {
	for i := range d.Groups {
		if d.Groups[i].DegreeID == degreeID {
			return &d.Groups[i]
		}
	}
	return nil
}

// IsUnlimited returns true if the subgroup has no capacity limit.
func (s *CourseSubgroup) IsUnlimited() bool {
	return s.MaxParticipants == UnlimitedParticipants
}

// Occupancy считает занятость подгруппы: уникальные участники с активным
// статусом. Участник с несколькими записями на одну подгруппу/дату
// считается один раз, отменённые записи не учитываются.
func (s *CourseSubgroup) Occupancy() int {
	seen := make(map[types.NumericID]struct{})
	for i := range s.Bookings {
		b := &s.Bookings[i]
		if !b.IsActive() {
			continue
		}
		seen[b.ParticipantID] = struct{}{}
	}
	return len(seen)
}

// FreeSlots количество свободных мест; -1 для безлимитной подгруппы,
// вместимость которой не выражается числом
func (s *CourseSubgroup) FreeSlots() int {
	if s.IsUnlimited() {
		return -1
	}
	free := s.MaxParticipants - s.Occupancy()
	if free < 0 {
		return 0
	}
	return free
}

// HasCapacityFor reports whether the subgroup can take neededSlots more
// unique participants.
func (s *CourseSubgroup) HasCapacityFor(neededSlots int) bool {
	if s.IsUnlimited() {
		return true
	}
	return s.MaxParticipants-s.Occupancy() >= neededSlots
}

// HasBookings returns true if the subgroup holds at least one active assignment.
func (s *CourseSubgroup) HasBookings() bool {
	for i := range s.Bookings {
		if s.Bookings[i].IsActive() {
			return true
		}
	}
	return false
}

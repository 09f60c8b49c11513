package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	PaywallCompleted    bool      `json:"paywall_completed"`
	CreatedAt           time.Time `json:"created_at"`
}

type Category string

const (
	CategoryCareer       Category = "Career"
	CategoryHealth       Category = "Health"
	CategoryRelationship Category = "Relationship"
	CategoryFinance      Category = "Finance"
	CategoryPersonal     Category = "Personal"
)

var Categories = []Category{
	CategoryCareer,
	CategoryHealth,
	CategoryRelationship,
	CategoryFinance,
	CategoryPersonal,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type PracticeMethod string

const (
	MethodHandwriting PracticeMethod = "Handwriting"
	MethodTyping      PracticeMethod = "Typing"
	MethodVoice       PracticeMethod = "Voice"
)

func (m PracticeMethod) Valid() bool {
	switch m {
	case MethodHandwriting, MethodTyping, MethodVoice:
		return true
	}
	return false
}

// Affirmation is a user-authored statement practiced for DurationDays days.
// IsActive and IsCompleted never hold at the same time.
type Affirmation struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	Text         string    `json:"text"`
	Category     Category  `json:"category"`
	DurationDays int       `json:"duration_days"`
	CurrentDay   int       `json:"current_day"`
	IsActive     bool      `json:"is_active"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// DailyTask schedules one affirmation into the user's ordered list.
// Order is 1-based and dense across a user's tasks.
type DailyTask struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"uid"`
	AffirmationID uuid.UUID      `json:"affirmation_id"`
	Order         int            `json:"order"`
	Method        PracticeMethod `json:"method"`
	IsCompleted   bool           `json:"is_completed"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type PracticePeriod string

const (
	PeriodMorning   PracticePeriod = "morning"
	PeriodAfternoon PracticePeriod = "afternoon"
	PeriodEvening   PracticePeriod = "evening"
)

var Periods = []PracticePeriod{PeriodMorning, PeriodAfternoon, PeriodEvening}

// Target returns how many repetitions the period asks for (3, 6, 9).
// Unknown periods return 0.
func (p PracticePeriod) Target() int {
	switch p {
	case PeriodMorning:
		return 3
	case PeriodAfternoon:
		return 6
	case PeriodEvening:
		return 9
	}
	return 0
}

type PracticeSession struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"uid"`
	AffirmationID uuid.UUID      `json:"affirmation_id"`
	Period        PracticePeriod `json:"period"`
	Index         int            `json:"index"`
	PracticeDay   time.Time      `json:"practice_day"`
	CompletedAt   time.Time      `json:"completed_at"`
}

type PeriodProgress struct {
	Period    PracticePeriod `json:"period"`
	Completed int            `json:"completed"`
	Total     int            `json:"total"`
}

type PracticeStats struct {
	UserID           uuid.UUID  `json:"uid"`
	TotalRepetitions int        `json:"total_repetitions"`
	CurrentStreak    int        `json:"current_streak"`
	MaxStreak        int        `json:"max_streak"`
	LastPractice     *time.Time `json:"last_practice,omitempty"`
}

type FeedItem struct {
	UserName     string         `json:"user_name"`
	Category     Category       `json:"category"`
	Period       PracticePeriod `json:"period"`
	Index        int            `json:"index"`
	CurrentDay   int            `json:"current_day"`
	DurationDays int            `json:"duration_days"`
	CompletedAt  time.Time      `json:"completed_at"`
}

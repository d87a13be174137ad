package models

import "fmt"

// WorkoutType is the kind of activity a workout records
type WorkoutType string

const (
	WorkoutCardio           WorkoutType = "cardio"
	WorkoutStrengthTraining WorkoutType = "strength_training"
	WorkoutYoga             WorkoutType = "yoga"
	WorkoutPilates          WorkoutType = "pilates"
	WorkoutRunning          WorkoutType = "running"
	WorkoutCycling          WorkoutType = "cycling"
	WorkoutSwimming         WorkoutType = "swimming"
	WorkoutWalking          WorkoutType = "walking"
	WorkoutHIIT             WorkoutType = "hiit"
	WorkoutOther            WorkoutType = "other"
)

// WorkoutTypes lists every accepted workout type
var WorkoutTypes = []WorkoutType{
	WorkoutCardio, WorkoutStrengthTraining, WorkoutYoga, WorkoutPilates, WorkoutRunning,
	WorkoutCycling, WorkoutSwimming, WorkoutWalking, WorkoutHIIT, WorkoutOther,
}

func (t WorkoutType) Valid() bool { return contains(WorkoutTypes, t) }

// Intensity is how hard a workout was
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

var Intensities = []Intensity{IntensityLow, IntensityModerate, IntensityHigh}

func (i Intensity) Valid() bool { return contains(Intensities, i) }

// MealType is the meal a nutrition entry belongs to
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) Valid() bool { return contains(MealTypes, m) }

// Gender is used only for the BMR formula
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) Valid() bool { return contains(Genders, g) }

// ActivityLevel scales BMR into TDEE
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive,
}

func (a ActivityLevel) Valid() bool { return contains(ActivityLevels, a) }

// ParseWorkoutType converts a raw query value into a WorkoutType
func ParseWorkoutType(raw string) (WorkoutType, error) {
	t := WorkoutType(raw)
	if !t.Valid() {
		return "", fmt.Errorf("invalid workout type %q", raw)
	}
	return t, nil
}

// ParseMealType converts a raw query value into a MealType
func ParseMealType(raw string) (MealType, error) {
	m := MealType(raw)
	if !m.Valid() {
		return "", fmt.Errorf("invalid meal type %q", raw)
	}
	return m, nil
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

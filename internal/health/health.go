// Package health derives body metrics from a user's stored biometrics.
// Every function is pure; absent inputs yield an unavailable result rather
// than an error.
package health

import (
	"math"

	"github.com/pageza/fitlog/backend/internal/models"
)

// BMICategory classifies a BMI value
type BMICategory string

const (
	CategoryUnavailable BMICategory = ""
	CategoryUnderweight BMICategory = "underweight"
	CategoryNormal      BMICategory = "normal"
	CategoryOverweight  BMICategory = "overweight"
	CategoryObese       BMICategory = "obese"
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtremelyActive:  1.9,
}

// BMI returns weight / height_m^2 rounded half-up to one decimal.
// ok is false when either input is missing.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return roundHalfUp(weightKg/(m*m), 1), true
}

// Category buckets a BMI. Non-positive values are unavailable.
func Category(bmi float64) BMICategory {
	switch {
	case bmi <= 0:
		return CategoryUnavailable
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
// Genders other than male and female use the mean of both formulas.
func BMR(weightKg, heightCm float64, age int, gender models.Gender) (int, bool) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, false
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	male, female := base+5, base-161

	var v float64
	switch gender {
	case models.GenderMale:
		v = male
	case models.GenderFemale:
		v = female
	default:
		v = (male + female) / 2
	}
	return int(math.Round(v)), true
}

// TDEE scales bmr by the activity multiplier; unknown levels use 1.0.
func TDEE(bmr int, level models.ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = 1
	}
	return int(math.Round(float64(bmr) * mult))
}

// Profile is the biometric snapshot the derivations read. Zero means absent.
type Profile struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        models.Gender
	ActivityLevel models.ActivityLevel
}

// ProfileOf reads the nullable biometrics of u
func ProfileOf(u *models.User) Profile {
	p := Profile{Gender: u.Gender, ActivityLevel: u.ActivityLevel}
	if u.Weight != nil {
		p.WeightKg = *u.Weight
	}
	if u.Height != nil {
		p.HeightCm = *u.Height
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	return p
}

// Metrics holds every derived value; nil fields are unavailable and
// serialize as null.
type Metrics struct {
	BMI         *float64     `json:"bmi"`
	BMICategory *BMICategory `json:"bmiCategory"`
	BMR         *int         `json:"bmr"`
	TDEE        *int         `json:"tdee"`
}

// Derive computes all metrics for p
func Derive(p Profile) Metrics {
	var m Metrics
	if bmi, ok := BMI(p.WeightKg, p.HeightCm); ok {
		cat := Category(bmi)
		m.BMI = &bmi
		m.BMICategory = &cat
	}
	if bmr, ok := BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender); ok {
		tdee := TDEE(bmr, p.ActivityLevel)
		m.BMR = &bmr
		m.TDEE = &tdee
	}
	return m
}

func roundHalfUp(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Floor(v*p+0.5) / p
}

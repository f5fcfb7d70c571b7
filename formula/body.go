package formula

import "math"

// NavyBodyFatMale applies the U.S. Navy circumference method, all lengths in
// centimetres.
func NavyBodyFatMale(height, neck, waist float64) float64 {
	return 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(height)) - 450
}

// NavyBodyFatFemale is the female variant, which also uses hip circumference.
func NavyBodyFatFemale(height, neck, waist, hip float64) float64 {
	return 495/(1.29579-0.35004*math.Log10(waist+hip-neck)+0.22100*math.Log10(height)) - 450
}

// MifflinStJeor returns basal metabolic rate in kcal/day. weight in kg,
// height in cm, age in years.
func MifflinStJeor(weight, height, age float64, male bool) float64 {
	bmr := 10*weight + 6.25*height - 5*age
	if male {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultipliers maps activity levels to their TDEE factor.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// TDEE scales a BMR by the named activity level. ok is false for an unknown
// level.
func TDEE(bmr float64, activity string) (float64, bool) {
	m, ok := ActivityMultipliers[activity]
	if !ok {
		return 0, false
	}
	return bmr * m, true
}

// BMI divides weight (kg) by the square of height (cm converted to m).
func BMI(weight, height float64) float64 {
	m := height / 100
	return weight / (m * m)
}

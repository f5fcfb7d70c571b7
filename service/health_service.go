package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/formula"
)

type HealthService struct {
	logger *zap.Logger
}

func NewHealthService(logger *zap.Logger) *HealthService {
	return &HealthService{logger: logger.Named("health")}
}

// isMale normalizes gender input; anything other than male/female is
// reported and treated as male.
func isMale(val domain.Validation, gender string) bool {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m":
		return true
	case "female", "f":
		return false
	}
	val["gender"] = "gender must be male or female, using male"
	return true
}

// Body fat category thresholds (lower bounds, percent) for
// essential, athletes, fitness, average, obese.
var (
	maleFatBands   = []float64{2, 6, 14, 18, 25}
	femaleFatBands = []float64{10, 14, 21, 25, 32}
	fatCategories  = []string{"essential", "athletes", "fitness", "average", "obese"}
)

func bodyFatCategory(bf float64, male bool) string {
	bands := femaleFatBands
	if male {
		bands = maleFatBands
	}
	if bf < bands[0] {
		return "below essential"
	}
	category := fatCategories[0]
	for i, lo := range bands {
		if bf >= lo {
			category = fatCategories[i]
		}
	}
	return category
}

// CalculateBodyFat estimates body fat with the U.S. Navy method.
func (s *HealthService) CalculateBodyFat(
	input domain.BodyFatInput,
) (domain.BodyFatResult, error) {

	val := domain.Validation{}
	male := isMale(val, input.Gender)
	advisePositive(val, "height_cm", "height", input.Height)
	advisePositive(val, "neck_cm", "neck", input.Neck)
	advisePositive(val, "waist_cm", "waist", input.Waist)
	adviseNonNegative(val, "weight_kg", "weight", input.Weight)

	var bf float64
	if male {
		if input.Waist <= input.Neck {
			val["waist_cm"] = "waist must be larger than neck"
		}
		bf = formula.NavyBodyFatMale(input.Height, input.Neck, input.Waist)
	} else {
		advisePositive(val, "hip_cm", "hip", input.Hip)
		bf = formula.NavyBodyFatFemale(input.Height, input.Neck, input.Waist, input.Hip)
	}
	bf = finite(val, "body_fat_percent", bf)

	result := domain.BodyFatResult{
		BodyFat: roundTo(bf, 2),
	}
	if _, undefined := val["body_fat_percent"]; !undefined {
		result.Category = bodyFatCategory(bf, male)
	}
	if input.Weight > 0 {
		fat := input.Weight * bf / 100
		result.FatMass = roundTo(fat, 2)
		result.LeanMass = roundTo(input.Weight-fat, 2)
	}

	lines := []string{
		"Body fat: " + formatPercent(result.BodyFat),
		"Category: " + result.Category,
	}
	if input.Weight > 0 {
		lines = append(lines,
			fmt.Sprintf("Fat mass: %.2f kg", result.FatMass),
			fmt.Sprintf("Lean mass: %.2f kg", result.LeanMass),
		)
	}
	result.Presentation = present(val, summary("Body fat (U.S. Navy method)", lines...))

	if len(val) > 0 {
		s.logger.Debug("degenerate body fat input", zap.Any("validation", val))
	}
	return result, nil
}

// CalculateBMR applies Mifflin-St Jeor and, when an activity level is
// given, the matching TDEE multiplier.
func (s *HealthService) CalculateBMR(
	input domain.BMRInput,
) (domain.BMRResult, error) {

	val := domain.Validation{}
	male := isMale(val, input.Gender)
	advisePositive(val, "weight_kg", "weight", input.Weight)
	advisePositive(val, "height_cm", "height", input.Height)
	advisePositive(val, "age", "age", input.Age)

	bmr := formula.MifflinStJeor(input.Weight, input.Height, input.Age, male)
	result := domain.BMRResult{BMR: roundTo(bmr, 0)}
	lines := []string{fmt.Sprintf("BMR: %.0f kcal/day", result.BMR)}

	if input.Activity != "" {
		tdee, ok := formula.TDEE(bmr, input.Activity)
		if ok {
			result.TDEE = roundTo(tdee, 0)
			result.Multiplier = formula.ActivityMultipliers[input.Activity]
			lines = append(lines, fmt.Sprintf("TDEE (%s): %.0f kcal/day", input.Activity, result.TDEE))
		} else {
			val["activity"] = "unknown activity level " + input.Activity
		}
	}

	result.Presentation = present(val, summary("Basal metabolic rate", lines...))
	return result, nil
}

var bmiBands = []struct {
	below    float64
	category string
}{
	{18.5, "underweight"},
	{25, "normal"},
	{30, "overweight"},
}

// CalculateBMI classifies weight by the WHO adult bands.
func (s *HealthService) CalculateBMI(
	input domain.BMIInput,
) (domain.BMIResult, error) {

	val := domain.Validation{}
	advisePositive(val, "weight_kg", "weight", input.Weight)
	advisePositive(val, "height_cm", "height", input.Height)

	bmi := finite(val, "bmi", formula.BMI(input.Weight, input.Height))
	result := domain.BMIResult{BMI: roundTo(bmi, 1)}

	if len(val) == 0 {
		result.Category = "obese"
		for _, band := range bmiBands {
			if bmi < band.below {
				result.Category = band.category
				break
			}
		}
	}

	result.Presentation = present(val, summary("Body mass index",
		fmt.Sprintf("BMI: %.1f", result.BMI),
		"Category: "+result.Category,
	))
	return result, nil
}

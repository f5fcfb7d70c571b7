package domain

type BodyFatInput struct {
	Gender string  `json:"gender"`
	Height float64 `json:"height_cm"`
	Neck   float64 `json:"neck_cm"`
	Waist  float64 `json:"waist_cm"`
	Hip    float64 `json:"hip_cm,omitempty"`
	Weight float64 `json:"weight_kg,omitempty"`
}

type BodyFatResult struct {
	BodyFat  float64 `json:"body_fat_percent"`
	Category string  `json:"category"`
	FatMass  float64 `json:"fat_mass_kg,omitempty"`
	LeanMass float64 `json:"lean_mass_kg,omitempty"`

	Presentation
}

type BMRInput struct {
	Gender   string  `json:"gender"`
	Weight   float64 `json:"weight_kg"`
	Height   float64 `json:"height_cm"`
	Age      float64 `json:"age"`
	Activity string  `json:"activity,omitempty"`
}

type BMRResult struct {
	BMR        float64 `json:"bmr"`
	TDEE       float64 `json:"tdee,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`

	Presentation
}

type BMIInput struct {
	Weight float64 `json:"weight_kg"`
	Height float64 `json:"height_cm"`
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`

	Presentation
}

// Package dataset loads the stroke risk CSV and turns each row into a
// transaction of discrete item labels suitable for itemset mining.
package dataset

// Record holds one raw CSV row keyed by column name.
type Record map[string]string

// Columns of the stroke risk dataset.
const (
	colID            = "id"
	colGender        = "gender"
	colAge           = "age"
	colHypertension  = "hypertension"
	colHeartDisease  = "heart_disease"
	colEverMarried   = "ever_married"
	colWorkType      = "work_type"
	colResidenceType = "Residence_type"
	colGlucose       = "avg_glucose_level"
	colBMI           = "bmi"
	colSmokingStatus = "smoking_status"
	colStroke        = "stroke"
)

// requiredColumns is the fixed header the loader validates against.
var requiredColumns = []string{
	colID,
	colGender,
	colAge,
	colHypertension,
	colHeartDisease,
	colEverMarried,
	colWorkType,
	colResidenceType,
	colGlucose,
	colBMI,
	colSmokingStatus,
	colStroke,
}

// continuousColumns are discretized into bands before encoding. The map
// value is the short field name used in item labels.
var continuousColumns = map[string]string{
	colAge:     "age",
	colBMI:     "bmi",
	colGlucose: "glucose",
}

// categoricalColumns map directly to field=value items. Binary 0/1
// columns are handled the same way: the raw value becomes the label.
var categoricalColumns = map[string]string{
	colGender:        "gender",
	colHypertension:  "hypertension",
	colHeartDisease:  "heart_disease",
	colEverMarried:   "ever_married",
	colWorkType:      "work_type",
	colResidenceType: "residence",
	colSmokingStatus: "smoking_status",
	colStroke:        "stroke",
}

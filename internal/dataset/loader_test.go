package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = "id,gender,age,hypertension,heart_disease,ever_married,work_type,Residence_type,avg_glucose_level,bmi,smoking_status,stroke"

func TestLoadReader(t *testing.T) {
	input := sampleHeader + "\n" +
		"9046,Male,67,0,1,Yes,Private,Urban,228.69,36.6,formerly smoked,1\n" +
		"51676,Female,61,0,0,Yes,Self-employed,Rural,202.21,N/A,never smoked,1\n"

	records, err := LoadReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Male", records[0][colGender])
	assert.Equal(t, "67", records[0][colAge])
	assert.Equal(t, "N/A", records[1][colBMI])
	assert.Equal(t, "1", records[1][colStroke])
}

func TestLoadReader_MissingColumn(t *testing.T) {
	input := "id,gender,age\n1,Male,67\n"

	_, err := LoadReader(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestLoadReader_Empty(t *testing.T) {
	_, err := LoadReader(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadReader_RaggedRow(t *testing.T) {
	input := sampleHeader + "\n9046,Male,67\n"

	_, err := LoadReader(strings.NewReader(input))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.csv")
	require.Error(t, err)
}

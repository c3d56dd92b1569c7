package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRangeBounds(t *testing.T) {
	r := Range{23966, 60278}
	assert.True(t, r.Valid())
	assert.Equal(t, 23966.0, r.Low())
	assert.Equal(t, 60278.0, r.High())

	single := Range{1750}
	assert.Equal(t, single.Low(), single.High())

	assert.False(t, Range{1, math.NaN()}.Valid())
	assert.False(t, Range(nil).Valid())
	assert.True(t, math.IsNaN(Range(nil).High()))
}

func TestRangeMarshalNaNAsNull(t *testing.T) {
	data, err := json.Marshal(Range{0, math.NaN()})
	require.NoError(t, err)
	assert.JSONEq(t, `[0, null]`, string(data))

	data, err = yaml.Marshal(map[string]Range{"bonus": {math.Inf(1)}})
	require.NoError(t, err)
	assert.Equal(t, "bonus:\n    - null\n", string(data))
}

func TestFootnoteValue(t *testing.T) {
	tests := []struct {
		value FootnoteValue
		kind  string
		json  string
	}{
		{NumberValue(180), "number", `180`},
		{DateValue(1451606400), "date", `1451606400`},
		{TextValue("USD"), "text", `"USD"`},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind.String())
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))
		})
	}
}

func TestFootnoteValueNotFinite(t *testing.T) {
	for _, n := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		v := NumberValue(n)
		assert.Nil(t, v.Value())
		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	}
}

func TestSetSalary(t *testing.T) {
	stub := JobStub{Name: "Actuary"}
	assert.True(t, stub.Salary.Empty())

	stub.SetSalary(SalaryRecord{
		Annual:   FieldMap{"salary": {1, 2}},
		Footnote: FootnoteMap{"currency": TextValue("USD")},
	})
	assert.False(t, stub.Salary.Empty())
	assert.Equal(t, Range{1, 2}, stub.Salary.Annual["salary"])
	assert.Nil(t, stub.Salary.Hourly)
	assert.Equal(t, "Actuary", stub.Name)
}

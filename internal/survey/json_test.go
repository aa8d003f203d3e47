package survey

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/antifragile"
)

func TestFloat_JSON(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"Finite", 2.5, `2.5`},
		{"Zero", 0, `0`},
		{"NaN", math.NaN(), `"NaN"`},
		{"PosInf", math.Inf(1), `"+Inf"`},
		{"NegInf", math.Inf(-1), `"-Inf"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(Float(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Float
			require.NoError(t, json.Unmarshal(data, &back))
			if math.IsNaN(tt.in) {
				assert.True(t, math.IsNaN(float64(back)))
			} else {
				assert.Equal(t, tt.in, float64(back))
			}
		})
	}
}

func TestFloat_JSONRejectsFiniteStrings(t *testing.T) {
	var f Float
	assert.Error(t, json.Unmarshal([]byte(`"1.5"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestResult_JSONWithNaNPayoff(t *testing.T) {
	jobs := []Job{{
		Name:   "log",
		System: antifragile.Func[float64, float64](math.Log),
		At:     0.5,
		Delta:  1,
	}}

	results, err := Run(t.Context(), jobs, Config{Workers: 1})
	require.NoError(t, err)
	require.True(t, math.IsNaN(results[0].Below))
	assert.Equal(t, antifragile.Robust, results[0].Classification)

	data, err := json.Marshal(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"below":"NaN"`)
	assert.Contains(t, string(data), `"sum":"NaN"`)
	assert.Contains(t, string(data), `"classification":"robust"`)

	var back []Result
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 1)
	assert.Equal(t, "log", back[0].Name)
	assert.Equal(t, 0.5, back[0].At)
	assert.True(t, math.IsNaN(back[0].Sum))
	assert.False(t, math.IsNaN(back[0].Center))
}

func TestResult_JSONFields(t *testing.T) {
	want := triad(antifragile.Fragile)
	r := Result{
		Name:           "root",
		At:             10,
		Delta:          1,
		Below:          3,
		Center:         3.1,
		Above:          3.2,
		Sum:            6.2,
		Twin:           6.2,
		Classification: antifragile.Robust,
		Expect:         want,
		Error:          "boom",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "root", "at": 10, "delta": 1,
		"below": 3, "center": 3.1, "above": 3.2, "sum": 6.2, "twin": 6.2,
		"classification": "robust", "expect": "fragile", "error": "boom"
	}`, string(data))

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

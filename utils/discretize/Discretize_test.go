package discretize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		want        int
	}{
		{name: "Lower boundary maps to bucket 0", temperature: 10, want: 0},
		{name: "Upper boundary maps to the last bucket", temperature: 30, want: 40},
		{name: "Setpoint region", temperature: 20, want: 20},
		{name: "Mid-bucket temperature floors", temperature: 19.7, want: 19},
		{name: "Bucket edge", temperature: 19.5, want: 19},
		{name: "Below range saturates to bucket 0", temperature: 3.2, want: 0},
		{name: "Slightly below range floors toward zero", temperature: 9.99, want: 0},
		{name: "Above range saturates to the last bucket", temperature: 55, want: 40},
		{name: "Far below range", temperature: -40, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bucket(tt.temperature))
		})
	}
}

func TestBucketMonotonicAndBounded(t *testing.T) {
	prev := Bucket(-50)
	for temperature := -50.0; temperature <= 80.0; temperature += 0.1 {
		bucket := Bucket(temperature)

		assert.GreaterOrEqual(t, bucket, 0)
		assert.LessOrEqual(t, bucket, Buckets-1)
		assert.GreaterOrEqual(t, bucket, prev,
			"bucket decreased at %v °C", temperature)

		prev = bucket
	}
}

func TestTemperatureInvertsBucket(t *testing.T) {
	for bucket := 0; bucket < Buckets; bucket++ {
		assert.Equal(t, bucket, Bucket(Temperature(bucket)))
	}
}

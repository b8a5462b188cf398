// Package discretize maps continuous room temperatures into a bounded
// set of integer state buckets for tabular learning algorithms
package discretize

import "math"

const (
	// MinTemp is the temperature of bucket 0
	MinTemp float64 = 10.0

	// BucketWidth is the temperature span of a single bucket
	BucketWidth float64 = 0.5

	// Buckets is the total number of state buckets. Bucket 0
	// corresponds to 10 °C and bucket 40 to 30 °C.
	Buckets int = 41
)

// Bucket discretizes a temperature into a state bucket index in
// [0, Buckets-1]. Temperatures outside the covered range saturate to
// the nearest boundary bucket so that the table stays bounded.
//
// math.Floor is used rather than integer truncation so that
// temperatures below MinTemp floor toward negative infinity and clamp
// to bucket 0 instead of producing a negative index.
func Bucket(temperature float64) int {
	bucket := int(math.Floor((temperature - MinTemp) / BucketWidth))
	if bucket < 0 {
		return 0
	}
	if bucket > Buckets-1 {
		return Buckets - 1
	}
	return bucket
}

// Temperature returns the temperature at the lower edge of a bucket.
// It is the inverse of Bucket up to bucket resolution.
func Temperature(bucket int) float64 {
	return MinTemp + float64(bucket)*BucketWidth
}

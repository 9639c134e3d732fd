// Package sanitizer provides input normalization for marketplace data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Phone numbers: convert host contact numbers to E.164 format
//   - URLs: enforce HTTPS, lowercase domains, preserve paths
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Amenities: lowercase, collapse whitespace - "Free WiFi " becomes "free wifi"
//   - Slices: remove duplicates and empty values after normalization
//   - Numbers: clamp to valid ranges
package sanitizer

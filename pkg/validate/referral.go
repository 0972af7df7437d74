package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// ReferralCodeLength includes the trailing Luhn check digit.
const ReferralCodeLength = 10

// NewReferralCode returns a numeric code whose last digit is the Luhn check digit,
// so typos are rejected before the store is queried.
func NewReferralCode() string {
	return goluhn.Generate(ReferralCodeLength)
}

func IsReferralCode(s string) bool {
	if len(s) != ReferralCodeLength {
		return false
	}
	return goluhn.Validate(s) == nil
}

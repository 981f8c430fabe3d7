package shipment

import (
	"fmt"

	"shipments/internal/pkg/errs"
)

// ServiceTier represents the selected delivery service level.
// The tier affects pricing (Express carries a fixed surcharge) and,
// outside this system, delivery speed.
type ServiceTier int

const (
	// TierUnknown represents an invalid or undefined tier.
	TierUnknown ServiceTier = iota

	// TierStandard is the default service level.
	TierStandard

	// TierExpress is the expedited service level with a fixed surcharge.
	TierExpress
)

func getTierStrings() map[ServiceTier]string {
	return map[ServiceTier]string{
		TierUnknown:  "Unknown",
		TierStandard: "Standard",
		TierExpress:  "Express",
	}
}

func getValidTierStrings() map[ServiceTier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[ServiceTier]string{
		TierStandard: "Standard",
		TierExpress:  "Express",
	}
}

// ServiceTierFromString parses a service tier from its display string
// ("Standard" or "Express"). Returns a ValueIsInvalidError otherwise.
func ServiceTierFromString(s string) (ServiceTier, error) {
	for tier, str := range getValidTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service tier",
		fmt.Errorf("%q is not a valid service tier", s),
	)
}

// Validate checks if the ServiceTier value belongs to the enumerated set.
func (t ServiceTier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service tier",
			fmt.Errorf("%d is not a valid service tier", t),
		)
	}
	return nil
}

// String returns the human-readable name of the tier.
func (t ServiceTier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

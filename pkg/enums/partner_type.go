package enums

import "fmt"

// PartnerType categorizes a partner business in the directory.
type PartnerType string

const (
	PartnerTypeCourt PartnerType = "court"
	PartnerTypeShop  PartnerType = "shop"
	PartnerTypeBrand PartnerType = "brand"
	PartnerTypeOther PartnerType = "other"
)

var validPartnerTypes = []PartnerType{
	PartnerTypeCourt,
	PartnerTypeShop,
	PartnerTypeBrand,
	PartnerTypeOther,
}

// String implements fmt.Stringer.
func (p PartnerType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PartnerType.
func (p PartnerType) IsValid() bool {
	for _, candidate := range validPartnerTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePartnerType converts raw input into a PartnerType.
func ParsePartnerType(value string) (PartnerType, error) {
	for _, candidate := range validPartnerTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid partner type %q", value)
}

package lookups

import "fmt"

// Kind selects one of the admin-seeded lookup tables.
type Kind string

const (
	KindOrderStatus Kind = "order_statuses"
	KindPaymentType Kind = "payment_types"
)

var validKinds = []Kind{
	KindOrderStatus,
	KindPaymentType,
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether the value names a known lookup table.
func (k Kind) IsValid() bool {
	for _, candidate := range validKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseKind converts raw input into a Kind.
func ParseKind(value string) (Kind, error) {
	for _, candidate := range validKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lookup kind %q", value)
}

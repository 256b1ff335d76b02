package enums

import "fmt"

// VehicleStatus tracks a vehicle through the inventory lifecycle. A vehicle
// only leaves "available" through an explicit sale or reservation action and
// never reverts on its own.
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusReserved  VehicleStatus = "reserved"
	VehicleStatusSold      VehicleStatus = "sold"
)

var validVehicleStatuses = []VehicleStatus{
	VehicleStatusAvailable,
	VehicleStatusReserved,
	VehicleStatusSold,
}

// String implements fmt.Stringer.
func (s VehicleStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known VehicleStatus.
func (s VehicleStatus) IsValid() bool {
	for _, candidate := range validVehicleStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseVehicleStatus converts raw input into a VehicleStatus.
func ParseVehicleStatus(value string) (VehicleStatus, error) {
	for _, candidate := range validVehicleStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vehicle status %q", value)
}

// BodyType classifies the vehicle silhouette shown in inventory.
type BodyType string

const (
	BodyTypeSedan  BodyType = "sedan"
	BodyTypeSUV    BodyType = "suv"
	BodyTypePickup BodyType = "pickup"
	BodyTypeSports BodyType = "sports"
)

var validBodyTypes = []BodyType{
	BodyTypeSedan,
	BodyTypeSUV,
	BodyTypePickup,
	BodyTypeSports,
}

// String implements fmt.Stringer.
func (b BodyType) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BodyType.
func (b BodyType) IsValid() bool {
	for _, candidate := range validBodyTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBodyType converts raw input into a BodyType.
func ParseBodyType(value string) (BodyType, error) {
	for _, candidate := range validBodyTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid body type %q", value)
}

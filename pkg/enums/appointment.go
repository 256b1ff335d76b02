package enums

import "fmt"

// AppointmentType is the reason a customer books time at the dealership.
type AppointmentType string

const (
	AppointmentTypeMaintenance AppointmentType = "maintenance"
	AppointmentTypeRepair      AppointmentType = "repair"
	AppointmentTypeInspection  AppointmentType = "inspection"
	AppointmentTypeTestDrive   AppointmentType = "test_drive"
)

var validAppointmentTypes = []AppointmentType{
	AppointmentTypeMaintenance,
	AppointmentTypeRepair,
	AppointmentTypeInspection,
	AppointmentTypeTestDrive,
}

// String implements fmt.Stringer.
func (a AppointmentType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AppointmentType.
func (a AppointmentType) IsValid() bool {
	for _, candidate := range validAppointmentTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppointmentType converts raw input into an AppointmentType.
func ParseAppointmentType(value string) (AppointmentType, error) {
	for _, candidate := range validAppointmentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid appointment type %q", value)
}

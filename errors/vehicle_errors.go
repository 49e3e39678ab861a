// errors/vehicle_errors.go
package errors

import "errors"

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidVehicleData = errors.New("invalid vehicle data")
	ErrVehicleConflict    = errors.New("vehicle conflict")
	ErrClaimConflict      = errors.New("vehicle already claimed")

	ErrRepairNotFound    = errors.New("repair not found")
	ErrInvalidRepairData = errors.New("invalid repair data")

	ErrSelfCheckNotFound    = errors.New("self check not found")
	ErrInvalidSelfCheckData = errors.New("invalid self check data")

	ErrRepairStationNotFound = errors.New("repair station not found")
)

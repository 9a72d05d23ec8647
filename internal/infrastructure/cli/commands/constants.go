package commands

// Report lines
const (
	MsgValidationPassed = "Validation passed (%d checks).\n"
	MsgValidationFailed = "Validation failed:"
	FailedCheckFormat   = " - %s\n"
	MsgDoctorSummary    = "%d ok, %d warn, %d error\n"
)

// Error messages
const (
	ErrValidateServiceUnavailable = "validate service unavailable"
	ErrDoctorServiceUnavailable   = "doctor service unavailable"
)

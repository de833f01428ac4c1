package domain

import "errors"

// AppError carries a user-facing message and the HTTP status it maps to
type AppError struct {
	Message string
	Code    int
}

func (e *AppError) Error() string {
	return e.Message
}

// Entity lookup errors
var (
	ErrClientNotFound = &AppError{
		Message: "client not found",
		Code:    404,
	}
	ErrLeadNotFound = &AppError{
		Message: "lead not found",
		Code:    404,
	}
	ErrQuoteNotFound = &AppError{
		Message: "quote not found",
		Code:    404,
	}
	ErrFlightNotFound = &AppError{
		Message: "flight not found",
		Code:    404,
	}
	ErrUserNotFound = &AppError{
		Message: "user not found",
		Code:    404,
	}
	ErrCompanyNotFound = &AppError{
		Message: "company not found",
		Code:    404,
	}
	ErrInvalidID = &AppError{
		Message: "invalid id",
		Code:    400,
	}
)

// Validation errors raised before any database write
var (
	ErrClientRequired = &AppError{
		Message: "a resolved client is required",
		Code:    400,
	}
	ErrEmailAlreadyExists = &AppError{
		Message: "user with this email already exists",
		Code:    409,
	}
	ErrInvalidStatus = &AppError{
		Message: "invalid quote status",
		Code:    400,
	}
	ErrInvalidDirection = &AppError{
		Message: "flight direction must be IDA, VOLTA or INTERNO",
		Code:    400,
	}
	ErrFlightFieldsRequired = &AppError{
		Message: "flight origin, destination, class, carrier, flight number, departure time and arrival time are required",
		Code:    400,
	}
	ErrDepartureDateRequired = &AppError{
		Message: "outbound and internal flights require a departure date",
		Code:    400,
	}
	ErrReturnDateRequired = &AppError{
		Message: "return flights require a return date",
		Code:    400,
	}
	ErrPassengerLimitExceeded = &AppError{
		Message: "a quote may carry at most 9 passengers",
		Code:    400,
	}
	ErrDuplicatePassenger = &AppError{
		Message: "client is already a passenger on this quote",
		Code:    400,
	}
	ErrInvalidPassengerType = &AppError{
		Message: "passenger type must be adulto, crianca or bebe",
		Code:    400,
	}
)

// Pipeline transition errors
var (
	ErrLeadOnlyConvertsToQuote = &AppError{
		Message: "a lead card can only be dropped on COTAR",
		Code:    400,
	}
	ErrQuoteCannotRegressToLead = &AppError{
		Message: "a quote never goes back to being a lead",
		Code:    400,
	}
	ErrLaunchedMoveNeedsConfirmation = &AppError{
		Message: "moving a launched quote deletes its ledger rows and needs confirmation",
		Code:    409,
	}
	ErrQuoteNotLaunched = &AppError{
		Message: "quote has no launched sale",
		Code:    400,
	}
	ErrSaleModeItemized = &AppError{
		Message: "itemized sale items are only available for approved or launched quotes",
		Code:    400,
	}
)

// Standard error types for repositories
var (
	ErrNotFound = errors.New("not found")
)

package wsrp

import (
	"fmt"

	"github.com/pkg/errors"
)

// FaultCode names a WSRP protocol fault. The values match the fault element
// names of the WSRP v1 and v2 schemas.
type FaultCode string

const (
	InvalidHandle              FaultCode = "InvalidHandle"
	OperationFailed            FaultCode = "OperationFailed"
	InvalidRegistration        FaultCode = "InvalidRegistration"
	MissingParameters          FaultCode = "MissingParameters"
	UnsupportedMode            FaultCode = "UnsupportedMode"
	UnsupportedWindowState     FaultCode = "UnsupportedWindowState"
	UnsupportedLocale          FaultCode = "UnsupportedLocale"
	UnsupportedMimeType        FaultCode = "UnsupportedMimeType"
	InvalidSession             FaultCode = "InvalidSession"
	InvalidCookie              FaultCode = "InvalidCookie"
	AccessDenied               FaultCode = "AccessDenied"
	InconsistentParameters     FaultCode = "InconsistentParameters"
	InvalidUserCategory        FaultCode = "InvalidUserCategory"
	PortletStateChangeRequired FaultCode = "PortletStateChangeRequired"
	ModifyRegistrationRequired FaultCode = "ModifyRegistrationRequired"

	// v2 only
	OperationNotSupported     FaultCode = "OperationNotSupported"
	ResourceSuspended         FaultCode = "ResourceSuspended"
	ExportByValueNotSupported FaultCode = "ExportByValueNotSupported"
)

var faultCodes = map[FaultCode]bool{
	InvalidHandle:              true,
	OperationFailed:            true,
	InvalidRegistration:        true,
	MissingParameters:          true,
	UnsupportedMode:            true,
	UnsupportedWindowState:     true,
	UnsupportedLocale:          true,
	UnsupportedMimeType:        true,
	InvalidSession:             true,
	InvalidCookie:              true,
	AccessDenied:               true,
	InconsistentParameters:     true,
	InvalidUserCategory:        true,
	PortletStateChangeRequired: true,
	ModifyRegistrationRequired: true,
	OperationNotSupported:      true,
	ResourceSuspended:          true,
	ExportByValueNotSupported:  true,
}

// ParseFaultCode returns the fault code named s, or false when s names no
// WSRP fault.
func ParseFaultCode(s string) (FaultCode, bool) {
	code := FaultCode(s)
	return code, faultCodes[code]
}

// Fault is a protocol visible error. Bindings carry the code and message to
// the consumer, where it is rebuilt as a *Fault.
type Fault struct {
	Code    FaultCode `msgpack:"code"`
	Message string    `msgpack:"message"`
	cause   error
}

func (f *Fault) Error() string {
	if f.Message == "" {
		return string(f.Code)
	}
	return string(f.Code) + ": " + f.Message
}

func (f *Fault) Unwrap() error {
	return f.cause
}

// NewFault creates a fault with a formatted message.
func NewFault(code FaultCode, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapFault creates a fault that keeps err as its cause.
func WrapFault(code FaultCode, err error, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}

// AsFault returns the first fault in err's chain.
func AsFault(err error) (*Fault, bool) {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault, true
	}
	return nil, false
}

// IsFault reports whether err carries a fault with the given code.
func IsFault(err error, code FaultCode) bool {
	fault, ok := AsFault(err)
	return ok && fault.Code == code
}

// ErrNotYetImplemented marks a behavior operation no test has stubbed. It is
// not a protocol fault and must never be swallowed.
var ErrNotYetImplemented = errors.New("not yet implemented")

func notYetImplemented(operation Operation) error {
	return errors.Wrapf(ErrNotYetImplemented, "%s", operation)
}

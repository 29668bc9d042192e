package wsrp

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Envelope is the binding independent form of an operation call or result.
// Payload holds the msgpack encoded request or response value.
type Envelope struct {
	Operation         Operation `msgpack:"operation"`
	Version           Version   `msgpack:"version"`
	Payload           []byte    `msgpack:"payload"`
	Fault             *Fault    `msgpack:"fault"`
	NotYetImplemented string    `msgpack:"notYetImplemented"`
}

// NewRequestEnvelope encodes req for operation.
func NewRequestEnvelope(version Version, operation Operation, req any) (*Envelope, error) {
	payload, err := msgpack.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s request", operation)
	}
	return &Envelope{
		Operation: operation,
		Version:   version,
		Payload:   payload,
	}, nil
}

// Err rebuilds the error carried by a result envelope.
func (e *Envelope) Err() error {
	if e.NotYetImplemented != "" {
		return errors.Wrapf(ErrNotYetImplemented, "remote %s", e.Operation)
	}
	if e.Fault != nil {
		return &Fault{Code: e.Fault.Code, Message: e.Fault.Message}
	}
	return nil
}

// Decode unmarshals the payload into v. An empty payload leaves v untouched.
func (e *Envelope) Decode(v any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	if err := msgpack.Unmarshal(e.Payload, v); err != nil {
		return errors.Wrapf(err, "failed to decode %s payload", e.Operation)
	}
	return nil
}

// MarshalEnvelope and UnmarshalEnvelope are used by bindings that move
// envelopes as bytes.
func MarshalEnvelope(e *Envelope) ([]byte, error) {
	return msgpack.Marshal(e)
}

func UnmarshalEnvelope(data []byte) (*Envelope, error) {
	e := &Envelope{}
	if err := msgpack.Unmarshal(data, e); err != nil {
		return nil, errors.Wrap(err, "failed to decode envelope")
	}
	return e, nil
}

type operationHandler func(p *Producer, payload []byte) (any, error)

func handler[Req any, Res any](call func(p *Producer, req *Req) (*Res, error)) operationHandler {
	return func(p *Producer, payload []byte) (any, error) {
		req := new(Req)
		if err := msgpack.Unmarshal(payload, req); err != nil {
			return nil, WrapFault(MissingParameters, err, "cannot decode request")
		}
		return call(p, req)
	}
}

var operationHandlers = map[Operation]operationHandler{
	OpGetMarkup:                  handler((*Producer).GetMarkup),
	OpPerformBlockingInteraction: handler((*Producer).PerformBlockingInteraction),
	OpInitCookie:                 handler((*Producer).InitCookie),
	OpReleaseSessions:            handler((*Producer).ReleaseSessions),
	OpGetResource:                handler((*Producer).GetResource),
	OpHandleEvents:               handler((*Producer).HandleEvents),

	OpGetServiceDescription: handler((*Producer).GetServiceDescription),

	OpRegister:                handler((*Producer).Register),
	OpDeregister:              handler((*Producer).Deregister),
	OpModifyRegistration:      handler((*Producer).ModifyRegistration),
	OpGetRegistrationLifetime: handler((*Producer).GetRegistrationLifetime),
	OpSetRegistrationLifetime: handler((*Producer).SetRegistrationLifetime),

	OpGetPortletDescription:         handler((*Producer).GetPortletDescription),
	OpClonePortlet:                  handler((*Producer).ClonePortlet),
	OpDestroyPortlets:               handler((*Producer).DestroyPortlets),
	OpSetPortletProperties:          handler((*Producer).SetPortletProperties),
	OpGetPortletProperties:          handler((*Producer).GetPortletProperties),
	OpGetPortletPropertyDescription: handler((*Producer).GetPortletPropertyDescription),
	OpCopyPortlets:                  handler((*Producer).CopyPortlets),
	OpExportPortlets:                handler((*Producer).ExportPortlets),
	OpImportPortlets:                handler((*Producer).ImportPortlets),
	OpReleaseExport:                 handler((*Producer).ReleaseExport),
	OpSetExportLifetime:             handler((*Producer).SetExportLifetime),
	OpGetPortletsLifetime:           handler((*Producer).GetPortletsLifetime),
	OpSetPortletsLifetime:           handler((*Producer).SetPortletsLifetime),
}

// HandleEnvelope decodes a request envelope, dispatches it and encodes the
// result. Errors that are neither faults nor ErrNotYetImplemented are
// reported as OperationFailed.
func (p *Producer) HandleEnvelope(req *Envelope) *Envelope {
	res := &Envelope{
		Operation: req.Operation,
		Version:   p.Version,
	}

	call, ok := operationHandlers[req.Operation]
	if !ok {
		res.Fault = NewFault(OperationFailed, "unknown operation %q", req.Operation)
		return res
	}
	if req.Version != p.Version {
		res.Fault = NewFault(OperationFailed, "%s request sent to a %s producer", req.Version, p.Version)
		return res
	}

	value, err := call(p, req.Payload)
	if err != nil {
		setEnvelopeError(res, err)
		return res
	}

	payload, err := msgpack.Marshal(value)
	if err != nil {
		setEnvelopeError(res, errors.Wrapf(err, "failed to encode %s response", req.Operation))
		return res
	}
	res.Payload = payload
	return res
}

func setEnvelopeError(e *Envelope, err error) {
	if errors.Is(err, ErrNotYetImplemented) {
		e.NotYetImplemented = err.Error()
		return
	}
	if fault, ok := AsFault(err); ok {
		e.Fault = &Fault{Code: fault.Code, Message: fault.Message}
		return
	}
	e.Fault = NewFault(OperationFailed, "%v", err)
}

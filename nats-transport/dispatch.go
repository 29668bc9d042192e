package natstransport

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/telemetrytv/wsrp"
)

const DispatchTimeout = 30 * time.Second

func (c *NatsTransport) Dispatch(producerName string, envelope *wsrp.Envelope) (*wsrp.Envelope, error) {
	requestSubject := namespace("producer", producerName)
	transportNatsDispatchDebug.Tracef("Dispatching %s to %s", envelope.Operation, requestSubject)

	requestBytes, err := wsrp.MarshalEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	responseMsg, err := c.NatsConnection.Request(requestSubject, requestBytes, DispatchTimeout)
	if err != nil {
		transportNatsDispatchDebug.Tracef("Request to %s failed: %v", requestSubject, err)
		return nil, errors.Wrapf(err, "failed to dispatch %s to producer %s", envelope.Operation, producerName)
	}

	return wsrp.UnmarshalEnvelope(responseMsg.Data)
}

func (c *NatsTransport) BindDispatch(producerName string, handler func(envelope *wsrp.Envelope) *wsrp.Envelope) error {
	dispatchSubject := namespace("producer", producerName)
	transportNatsDispatchDebug.Tracef("Binding dispatch on %s", dispatchSubject)

	sub, err := c.NatsConnection.QueueSubscribe(dispatchSubject, dispatchSubject, func(msg *nats.Msg) {
		if err := c.handleDispatch(msg, handler); err != nil {
			transportNatsDispatchDebug.Errorf("Failed to handle dispatch on %s: %v", dispatchSubject, err)
		}
	})
	if err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", dispatchSubject)
	}

	c.mu.Lock()
	c.unbindDispatch[producerName] = append(c.unbindDispatch[producerName], sub.Unsubscribe)
	c.mu.Unlock()
	return nil
}

func (c *NatsTransport) handleDispatch(msg *nats.Msg, handler func(envelope *wsrp.Envelope) *wsrp.Envelope) error {
	request, err := wsrp.UnmarshalEnvelope(msg.Data)
	if err != nil {
		return err
	}
	transportNatsDispatchDebug.Tracef("Handling %s", request.Operation)

	response := func() (response *wsrp.Envelope) {
		defer func() {
			if recovered := recover(); recovered != nil {
				transportNatsDispatchDebug.Tracef("Recovered from panic in handler: %v", recovered)
				response = &wsrp.Envelope{
					Operation: request.Operation,
					Version:   request.Version,
					Fault:     wsrp.NewFault(wsrp.OperationFailed, "%s", fmt.Sprint(recovered)),
				}
			}
		}()
		return handler(request)
	}()

	responseBytes, err := wsrp.MarshalEnvelope(response)
	if err != nil {
		return err
	}
	return msg.Respond(responseBytes)
}

func (c *NatsTransport) UnbindDispatch(producerName string) error {
	c.mu.Lock()
	unbinders := c.unbindDispatch[producerName]
	delete(c.unbindDispatch, producerName)
	c.mu.Unlock()

	return unbindAll(unbinders)
}

package httpbinding

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/RobertWHurst/navaros"
	"github.com/pkg/errors"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/logging"
)

var bindingHTTPDebug = logging.Bind("wsrp:binding:http")

const (
	// ContentType is the media type of request and response bodies.
	ContentType = "application/msgpack"
	// VersionHeader carries the protocol version of a request.
	VersionHeader = "X-WSRP-Version"
	// PathPrefix is where operations are mounted.
	PathPrefix = "/wsrp/"
)

// Binding exposes a producer over HTTP. Each operation is a POST to
// /wsrp/<operation> whose body is the msgpack encoded request; the response
// body is the msgpack encoded result envelope. Faulted calls answer 500, as
// SOAP faults do.
type Binding struct {
	Producer *wsrp.Producer
	router   *navaros.Router
}

func New(producer *wsrp.Producer) *Binding {
	b := &Binding{
		Producer: producer,
		router:   navaros.NewRouter(),
	}
	b.router.Post(PathPrefix+":operation", b.handleOperation)
	return b
}

func (b *Binding) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	b.router.ServeHTTP(res, req)
}

func (b *Binding) handleOperation(ctx *navaros.Context) {
	operation := wsrp.Operation(ctx.Params()["operation"])
	bindingHTTPDebug.Tracef("Received %s", operation)

	version := b.Producer.Version
	if rawVersion := ctx.RequestHeaders().Get(VersionHeader); rawVersion != "" {
		parsedVersion, err := wsrp.ParseVersion(rawVersion)
		if err != nil {
			ctx.Status = http.StatusBadRequest
			ctx.Body = err.Error()
			return
		}
		version = parsedVersion
	}

	payload, err := io.ReadAll(ctx.RequestBodyReader())
	if err != nil {
		bindingHTTPDebug.Tracef("Failed to read %s body: %v", operation, err)
		ctx.Status = http.StatusBadRequest
		ctx.Body = err.Error()
		return
	}

	result := b.Producer.HandleEnvelope(&wsrp.Envelope{
		Operation: operation,
		Version:   version,
		Payload:   payload,
	})

	resultBytes, err := wsrp.MarshalEnvelope(result)
	if err != nil {
		ctx.Status = http.StatusInternalServerError
		ctx.Body = err.Error()
		return
	}

	ctx.Headers.Set("Content-Type", ContentType)
	if result.Fault != nil || result.NotYetImplemented != "" {
		ctx.Status = http.StatusInternalServerError
	} else {
		ctx.Status = http.StatusOK
	}
	ctx.Body = resultBytes
}

// Dispatch posts a request envelope to a producer mounted at baseURL and
// returns its result envelope.
func Dispatch(client *http.Client, baseURL string, envelope *wsrp.Envelope) (*wsrp.Envelope, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+PathPrefix+string(envelope.Operation), bytes.NewReader(envelope.Payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set(VersionHeader, strconv.Itoa(int(envelope.Version)))

	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to post %s", envelope.Operation)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.Header.Get("Content-Type") != ContentType {
		return nil, errors.Errorf("unexpected %s response: %d %s", envelope.Operation, res.StatusCode, string(body))
	}
	return wsrp.UnmarshalEnvelope(body)
}

package wsrp

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/telemetrytv/wsrp/logging"
)

var serviceFactoryDebug = logging.Bind("wsrp:service-factory")

var (
	// ErrServiceFactoryFailed is returned by Start while the factory is
	// marked failed.
	ErrServiceFactoryFailed = errors.New("service factory is failed")
	// ErrServiceFactoryUnavailable is returned when services are requested
	// before a successful Start.
	ErrServiceFactoryUnavailable = errors.New("service factory is not available")
)

// FactoryState is the lifecycle state of a ServiceFactory.
type FactoryState int

const (
	FactoryUninitialized FactoryState = iota
	FactoryAvailable
	FactoryFailed
)

func (s FactoryState) String() string {
	switch s {
	case FactoryUninitialized:
		return "uninitialized"
	case FactoryAvailable:
		return "available"
	case FactoryFailed:
		return "failed"
	}
	return fmt.Sprintf("FactoryState(%d)", int(s))
}

// DefaultWSOperationTimeout is the operation timeout in milliseconds.
const DefaultWSOperationTimeout = 10000

// ServiceFactory hands the consumer side the producer's capabilities. It can
// be marked failed to simulate an unreachable producer; while failed it
// neither starts nor hands out services.
type ServiceFactory struct {
	services Services
	version  Version

	mu        sync.RWMutex
	state     FactoryState
	timeoutMs int
	wsdlURL   string
}

func NewServiceFactory(version Version, services Services) *ServiceFactory {
	return &ServiceFactory{
		services:  services,
		version:   version,
		timeoutMs: DefaultWSOperationTimeout,
		wsdlURL:   "behavior-backed://" + version.String(),
	}
}

func (f *ServiceFactory) Version() Version {
	return f.version
}

func (f *ServiceFactory) State() FactoryState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

func (f *ServiceFactory) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FactoryFailed {
		serviceFactoryDebug.Trace("Refusing to start failed service factory")
		return ErrServiceFactoryFailed
	}
	if f.services == nil {
		return errors.Wrap(ErrServiceFactoryUnavailable, "no services to start")
	}
	f.state = FactoryAvailable
	serviceFactoryDebug.Tracef("Started %s service factory", f.version)
	return nil
}

// Stop returns an available factory to uninitialized. A failed factory stays
// failed.
func (f *ServiceFactory) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FactoryAvailable {
		f.state = FactoryUninitialized
	}
}

// SetFailed marks the factory failed, or clears the failure back to
// uninitialized.
func (f *ServiceFactory) SetFailed(failed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if failed {
		f.state = FactoryFailed
	} else if f.state == FactoryFailed {
		f.state = FactoryUninitialized
	}
	serviceFactoryDebug.Tracef("Service factory state is now %s", f.state)
}

func (f *ServiceFactory) IsFailed() bool {
	return f.State() == FactoryFailed
}

func (f *ServiceFactory) IsAvailable() bool {
	return f.State() == FactoryAvailable
}

// Refresh starts the factory if it is not available or if force is set. It
// reports whether a start happened.
func (f *ServiceFactory) Refresh(force bool) (bool, error) {
	if f.IsAvailable() && !force {
		return false, nil
	}
	if err := f.Start(); err != nil {
		return false, err
	}
	return true, nil
}

func (f *ServiceFactory) WSOperationTimeout() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.timeoutMs
}

func (f *ServiceFactory) SetWSOperationTimeout(timeoutMs int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if timeoutMs <= 0 {
		timeoutMs = DefaultWSOperationTimeout
	}
	f.timeoutMs = timeoutMs
}

func (f *ServiceFactory) WSDLDefinitionURL() string {
	return f.wsdlURL
}

func (f *ServiceFactory) available() (Services, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	switch f.state {
	case FactoryAvailable:
		return f.services, nil
	case FactoryFailed:
		return nil, ErrServiceFactoryFailed
	}
	return nil, ErrServiceFactoryUnavailable
}

func (f *ServiceFactory) MarkupService() (MarkupCapability, error) {
	return f.available()
}

func (f *ServiceFactory) ServiceDescriptionService() (ServiceDescriptionCapability, error) {
	return f.available()
}

func (f *ServiceFactory) RegistrationService() (RegistrationCapability, error) {
	return f.available()
}

func (f *ServiceFactory) PortletManagementService() (PortletManagementCapability, error) {
	return f.available()
}

package wsrp

import (
	"sync"
)

// MarkupBehavior answers the markup operations of the portlets it serves.
type MarkupBehavior interface {
	MarkupCapability
	SupportedHandles() []string
	CallCount() int
}

// MarkupRenderer produces the markup string of a GetMarkup call. It may
// return any fault to exercise consumer error handling.
type MarkupRenderer interface {
	MarkupString(mode Mode, windowState WindowState, navigationalState string, req *GetMarkup) (string, error)
}

// ResponseModifier is implemented by renderers that post process the
// generated markup response before it is returned.
type ResponseModifier interface {
	ModifyResponseIfNeeded(resp *MarkupResponse)
}

// BaseMarkupBehavior implements MarkupBehavior on top of a MarkupRenderer.
// Concrete behaviors embed it and override the operations they exercise.
type BaseMarkupBehavior struct {
	CallCounter
	registry *BehaviorRegistry
	renderer MarkupRenderer

	mu      sync.RWMutex
	handles []string
}

var _ MarkupBehavior = &BaseMarkupBehavior{}

func NewBaseMarkupBehavior(registry *BehaviorRegistry, renderer MarkupRenderer) *BaseMarkupBehavior {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if renderer == nil {
		panic("renderer cannot be nil")
	}
	return &BaseMarkupBehavior{
		registry: registry,
		renderer: renderer,
	}
}

// RegisterHandle adds handle to the served set and publishes a portlet
// description for it through the registry's service description behavior.
// The handle is not routable until the behavior is passed to
// RegisterMarkupBehavior.
func (b *BaseMarkupBehavior) RegisterHandle(handle string) {
	b.mu.Lock()
	b.handles = append(b.handles, handle)
	b.mu.Unlock()

	b.registry.ServiceDescriptionBehavior().AddPortletDescription(CreatePortletDescription(handle))
}

func (b *BaseMarkupBehavior) SupportedHandles() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handles := make([]string, len(b.handles))
	copy(handles, b.handles)
	return handles
}

func (b *BaseMarkupBehavior) Registry() *BehaviorRegistry {
	return b.registry
}

func (b *BaseMarkupBehavior) GetMarkup(req *GetMarkup) (*MarkupResponse, error) {
	b.IncrementCallCount()

	params := req.MarkupParams
	markup, err := b.renderer.MarkupString(params.Mode, params.WindowState, params.NavigationalState, req)
	if err != nil {
		return nil, err
	}

	resp := &MarkupResponse{
		MarkupContext: MarkupContext{
			MimeType:          MimeTypeHTML,
			MarkupString:      markup,
			RequiresRewriting: true,
		},
	}
	if len(params.Locales) > 0 {
		resp.MarkupContext.Locale = params.Locales[0]
	}

	if modifier, ok := b.renderer.(ResponseModifier); ok {
		modifier.ModifyResponseIfNeeded(resp)
	}
	return resp, nil
}

func (b *BaseMarkupBehavior) InitCookie(req *InitCookie) (*InitCookieResponse, error) {
	b.IncrementCallCount()
	return &InitCookieResponse{}, nil
}

func (b *BaseMarkupBehavior) ReleaseSessions(req *ReleaseSessions) (*ReleaseSessionsResponse, error) {
	b.IncrementCallCount()
	return &ReleaseSessionsResponse{}, nil
}

func (b *BaseMarkupBehavior) PerformBlockingInteraction(req *PerformBlockingInteraction) (*BlockingInteractionResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpPerformBlockingInteraction)
}

func (b *BaseMarkupBehavior) GetResource(req *GetResource) (*ResourceResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpGetResource)
}

func (b *BaseMarkupBehavior) HandleEvents(req *HandleEvents) (*HandleEventsResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpHandleEvents)
}

package behaviors

import "github.com/telemetrytv/wsrp"

const (
	BasicPortletHandle = "markup"
	BasicMarkup        = "markup"
)

// BasicMarkupBehavior renders a fixed literal for any mode and window state.
type BasicMarkupBehavior struct {
	*wsrp.BaseMarkupBehavior
}

func NewBasicMarkupBehavior(registry *wsrp.BehaviorRegistry) *BasicMarkupBehavior {
	b := &BasicMarkupBehavior{}
	b.BaseMarkupBehavior = wsrp.NewBaseMarkupBehavior(registry, b)
	b.RegisterHandle(BasicPortletHandle)
	return b
}

func (b *BasicMarkupBehavior) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	return BasicMarkup, nil
}

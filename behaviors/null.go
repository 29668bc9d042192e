package behaviors

import "github.com/telemetrytv/wsrp"

const NullPortletHandle = "null"

// NullMarkupBehavior renders empty markup, which consumers must accept.
type NullMarkupBehavior struct {
	*wsrp.BaseMarkupBehavior
}

func NewNullMarkupBehavior(registry *wsrp.BehaviorRegistry) *NullMarkupBehavior {
	b := &NullMarkupBehavior{}
	b.BaseMarkupBehavior = wsrp.NewBaseMarkupBehavior(registry, b)
	b.RegisterHandle(NullPortletHandle)
	return b
}

func (b *NullMarkupBehavior) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	return "", nil
}

package behaviors

import "github.com/telemetrytv/wsrp"

const (
	ModifyingPortletHandle = "modified"
	ModifiedTitle          = "modified"
)

// ModifyingMarkupBehavior renders like BasicMarkupBehavior and then rewrites
// the generated response to turn off URL rewriting and set a preferred title.
type ModifyingMarkupBehavior struct {
	*wsrp.BaseMarkupBehavior
}

var _ wsrp.ResponseModifier = &ModifyingMarkupBehavior{}

func NewModifyingMarkupBehavior(registry *wsrp.BehaviorRegistry) *ModifyingMarkupBehavior {
	b := &ModifyingMarkupBehavior{}
	b.BaseMarkupBehavior = wsrp.NewBaseMarkupBehavior(registry, b)
	b.RegisterHandle(ModifyingPortletHandle)
	return b
}

func (b *ModifyingMarkupBehavior) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	return BasicMarkup, nil
}

func (b *ModifyingMarkupBehavior) ModifyResponseIfNeeded(resp *wsrp.MarkupResponse) {
	resp.MarkupContext.RequiresRewriting = false
	resp.MarkupContext.PreferredTitle = ModifiedTitle
}

package behaviors

import (
	"fmt"

	"github.com/telemetrytv/wsrp"
)

const (
	InteractionPortletHandle = "interaction"
	// SymbolFormParameter is the form field carrying the interaction input.
	SymbolFormParameter = "symbol"
)

// InteractionMarkupBehavior stores the submitted form value in the
// navigational state during a blocking interaction and renders it back.
type InteractionMarkupBehavior struct {
	*wsrp.BaseMarkupBehavior
}

func NewInteractionMarkupBehavior(registry *wsrp.BehaviorRegistry) *InteractionMarkupBehavior {
	b := &InteractionMarkupBehavior{}
	b.BaseMarkupBehavior = wsrp.NewBaseMarkupBehavior(registry, b)
	b.RegisterHandle(InteractionPortletHandle)
	return b
}

func (b *InteractionMarkupBehavior) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	if navigationalState == "" {
		return "<form><input name='symbol'/></form>", nil
	}
	return fmt.Sprintf("The symbol is %s", navigationalState), nil
}

func (b *InteractionMarkupBehavior) PerformBlockingInteraction(req *wsrp.PerformBlockingInteraction) (*wsrp.BlockingInteractionResponse, error) {
	b.IncrementCallCount()

	for _, param := range req.InteractionParams.FormParameters {
		if param.Name == SymbolFormParameter {
			return &wsrp.BlockingInteractionResponse{
				UpdateResponse: &wsrp.UpdateResponse{
					NavigationalState: param.Value,
					NewMode:           wsrp.ModeView,
					NewWindowState:    req.MarkupParams.WindowState,
				},
			}, nil
		}
	}
	return nil, wsrp.NewFault(wsrp.MissingParameters, "form parameter %q is required", SymbolFormParameter)
}

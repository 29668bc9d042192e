package behaviors

import (
	"github.com/telemetrytv/wsrp"
)

const (
	ErrorPortletHandle = "error"
	ErrorMessage       = "Error message"
)

// ErrorMarkupBehavior fails every markup call. The fault is picked from the
// requested mode so one portlet can exercise several consumer error paths;
// the navigational state, when it names a fault code, selects it directly.
type ErrorMarkupBehavior struct {
	*wsrp.BaseMarkupBehavior
}

func NewErrorMarkupBehavior(registry *wsrp.BehaviorRegistry) *ErrorMarkupBehavior {
	b := &ErrorMarkupBehavior{}
	b.BaseMarkupBehavior = wsrp.NewBaseMarkupBehavior(registry, b)
	b.RegisterHandle(ErrorPortletHandle)
	return b
}

func (b *ErrorMarkupBehavior) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	if navigationalState != "" {
		code, ok := wsrp.ParseFaultCode(navigationalState)
		if !ok {
			code = wsrp.OperationFailed
		}
		return "", wsrp.NewFault(code, ErrorMessage)
	}
	switch mode {
	case wsrp.ModeEdit:
		return "", wsrp.NewFault(wsrp.AccessDenied, ErrorMessage)
	case wsrp.ModeHelp:
		return "", wsrp.NewFault(wsrp.UnsupportedMode, ErrorMessage)
	case wsrp.ModePreview:
		return "", wsrp.NewFault(wsrp.UnsupportedWindowState, ErrorMessage)
	}
	return "", wsrp.NewFault(wsrp.OperationFailed, ErrorMessage)
}

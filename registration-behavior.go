package wsrp

// RegistrationHandle is the handle every registration behavior hands out.
const RegistrationHandle = "registration"

type RegistrationBehavior interface {
	RegistrationCapability
	CallCount() int
}

// BaseRegistrationBehavior accepts every registration. Lifetime operations
// are not stubbed.
type BaseRegistrationBehavior struct {
	CallCounter
}

var _ RegistrationBehavior = &BaseRegistrationBehavior{}

func NewBaseRegistrationBehavior() *BaseRegistrationBehavior {
	return &BaseRegistrationBehavior{}
}

func (b *BaseRegistrationBehavior) Register(req *Register) (*RegistrationContext, error) {
	b.IncrementCallCount()
	return &RegistrationContext{RegistrationHandle: RegistrationHandle}, nil
}

func (b *BaseRegistrationBehavior) Deregister(req *Deregister) (*ReturnAny, error) {
	b.IncrementCallCount()
	return &ReturnAny{}, nil
}

func (b *BaseRegistrationBehavior) ModifyRegistration(req *ModifyRegistration) (*RegistrationState, error) {
	b.IncrementCallCount()
	return &RegistrationState{}, nil
}

func (b *BaseRegistrationBehavior) GetRegistrationLifetime(req *GetRegistrationLifetime) (*Lifetime, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpGetRegistrationLifetime)
}

func (b *BaseRegistrationBehavior) SetRegistrationLifetime(req *SetRegistrationLifetime) (*Lifetime, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpSetRegistrationLifetime)
}

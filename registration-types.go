package wsrp

type Property struct {
	Name        string `msgpack:"name"`
	Lang        string `msgpack:"lang"`
	StringValue string `msgpack:"stringValue"`
}

type RegistrationData struct {
	ConsumerName           string        `msgpack:"consumerName"`
	ConsumerAgent          string        `msgpack:"consumerAgent"`
	MethodGetSupported     bool          `msgpack:"methodGetSupported"`
	ConsumerModes          []Mode        `msgpack:"consumerModes"`
	ConsumerWindowStates   []WindowState `msgpack:"consumerWindowStates"`
	RegistrationProperties []Property    `msgpack:"registrationProperties"`
}

type Register struct {
	RegistrationData RegistrationData `msgpack:"registrationData"`
	Lifetime         *Lifetime        `msgpack:"lifetime"`
}

type Deregister struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
}

type ModifyRegistration struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	RegistrationData    RegistrationData     `msgpack:"registrationData"`
}

type RegistrationState struct {
	RegistrationState    []byte    `msgpack:"registrationState"`
	ScheduledDestruction *Lifetime `msgpack:"scheduledDestruction"`
}

type GetRegistrationLifetime struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
}

type SetRegistrationLifetime struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	Lifetime            *Lifetime            `msgpack:"lifetime"`
}

// ReturnAny is the empty acknowledgement of operations that have no result.
type ReturnAny struct {
	Extensions []Extension `msgpack:"extensions"`
}

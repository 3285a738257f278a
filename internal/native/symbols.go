package native

// symbol indexes the function table.
type symbol int

const (
	symGetTypesPlatform symbol = iota
	symGetVersion
	symSetDebugLogging
	symInstantiate
	symFreeInstance
	symSetupExperiment
	symEnterInitializationMode
	symExitInitializationMode
	symTerminate
	symReset
	symGetReal
	symGetInteger
	symGetBoolean
	symGetString
	symSetReal
	symSetInteger
	symSetBoolean
	symSetString
	symGetFMUstate
	symSetFMUstate
	symFreeFMUstate
	symSerializedFMUstateSize
	symSerializeFMUstate
	symDeSerializeFMUstate
	symGetDirectionalDerivative
	symEnterEventMode
	symNewDiscreteStates
	symEnterContinuousTimeMode
	symCompletedIntegratorStep
	symSetTime
	symSetContinuousStates
	symGetDerivatives
	symGetEventIndicators
	symGetContinuousStates
	symGetNominalsOfContinuousStates
	symSetRealInputDerivatives
	symGetRealOutputDerivatives
	symDoStep
	symCancelStep
	symGetStatus
	symGetRealStatus
	symGetIntegerStatus
	symGetBooleanStatus
	symGetStringStatus

	numSymbols
)

// symbolNames are the exported names, in table order. The serialized size
// entry uses the FMI 2.0 standard spelling.
var symbolNames = [numSymbols]string{
	symGetTypesPlatform:              "fmi2GetTypesPlatform",
	symGetVersion:                    "fmi2GetVersion",
	symSetDebugLogging:               "fmi2SetDebugLogging",
	symInstantiate:                   "fmi2Instantiate",
	symFreeInstance:                  "fmi2FreeInstance",
	symSetupExperiment:               "fmi2SetupExperiment",
	symEnterInitializationMode:       "fmi2EnterInitializationMode",
	symExitInitializationMode:        "fmi2ExitInitializationMode",
	symTerminate:                     "fmi2Terminate",
	symReset:                         "fmi2Reset",
	symGetReal:                       "fmi2GetReal",
	symGetInteger:                    "fmi2GetInteger",
	symGetBoolean:                    "fmi2GetBoolean",
	symGetString:                     "fmi2GetString",
	symSetReal:                       "fmi2SetReal",
	symSetInteger:                    "fmi2SetInteger",
	symSetBoolean:                    "fmi2SetBoolean",
	symSetString:                     "fmi2SetString",
	symGetFMUstate:                   "fmi2GetFMUstate",
	symSetFMUstate:                   "fmi2SetFMUstate",
	symFreeFMUstate:                  "fmi2FreeFMUstate",
	symSerializedFMUstateSize:        "fmi2SerializedFMUstateSize",
	symSerializeFMUstate:             "fmi2SerializeFMUstate",
	symDeSerializeFMUstate:           "fmi2DeSerializeFMUstate",
	symGetDirectionalDerivative:      "fmi2GetDirectionalDerivative",
	symEnterEventMode:                "fmi2EnterEventMode",
	symNewDiscreteStates:             "fmi2NewDiscreteStates",
	symEnterContinuousTimeMode:       "fmi2EnterContinuousTimeMode",
	symCompletedIntegratorStep:       "fmi2CompletedIntegratorStep",
	symSetTime:                       "fmi2SetTime",
	symSetContinuousStates:           "fmi2SetContinuousStates",
	symGetDerivatives:                "fmi2GetDerivatives",
	symGetEventIndicators:            "fmi2GetEventIndicators",
	symGetContinuousStates:           "fmi2GetContinuousStates",
	symGetNominalsOfContinuousStates: "fmi2GetNominalsOfContinuousStates",
	symSetRealInputDerivatives:       "fmi2SetRealInputDerivatives",
	symGetRealOutputDerivatives:      "fmi2GetRealOutputDerivatives",
	symDoStep:                        "fmi2DoStep",
	symCancelStep:                    "fmi2CancelStep",
	symGetStatus:                     "fmi2GetStatus",
	symGetRealStatus:                 "fmi2GetRealStatus",
	symGetIntegerStatus:              "fmi2GetIntegerStatus",
	symGetBooleanStatus:              "fmi2GetBooleanStatus",
	symGetStringStatus:               "fmi2GetStringStatus",
}

func (s symbol) String() string {
	if s < 0 || s >= numSymbols {
		return "unknown"
	}
	return symbolNames[s]
}

// lookupSymbol maps an exported name back to its table slot.
func lookupSymbol(name string) (symbol, bool) {
	for i, n := range symbolNames {
		if n == name {
			return symbol(i), true
		}
	}
	return 0, false
}

// SymbolNames lists every entry point a binding tries to resolve.
func SymbolNames() []string {
	out := make([]string, len(symbolNames))
	copy(out, symbolNames[:])
	return out
}

// table holds the resolved entry points. It is filled once by Bind and never
// written afterwards.
type table [numSymbols]uintptr

func (t *table) has(s symbol) bool { return t[s] != 0 }

func (t *table) resolved() []string {
	var out []string
	for i, addr := range t {
		if addr != 0 {
			out = append(out, symbolNames[i])
		}
	}
	return out
}

func (t *table) missing() []string {
	var out []string
	for i, addr := range t {
		if addr == 0 {
			out = append(out, symbolNames[i])
		}
	}
	return out
}

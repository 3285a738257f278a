package fmu

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrModelDescription reports a missing or malformed modelDescription.xml.
	ErrModelDescription = errors.New("fmu: invalid model description")

	// ErrUnsupportedVersion reports a model description for another FMI
	// version.
	ErrUnsupportedVersion = errors.New("fmu: unsupported FMI version")

	// ErrNoInterface reports that the unit does not implement the requested
	// interface type.
	ErrNoInterface = errors.New("fmu: interface not provided by unit")

	// ErrUnknownVariable reports a lookup of a variable the unit does not
	// declare.
	ErrUnknownVariable = errors.New("fmu: unknown variable")
)

// ModelDescription is the subset of modelDescription.xml the wrapper uses.
type ModelDescription struct {
	XMLName                 xml.Name           `xml:"fmiModelDescription"`
	FMIVersion              string             `xml:"fmiVersion,attr"`
	ModelName               string             `xml:"modelName,attr"`
	GUID                    string             `xml:"guid,attr"`
	Description             string             `xml:"description,attr"`
	GenerationTool          string             `xml:"generationTool,attr"`
	NumberOfEventIndicators int                `xml:"numberOfEventIndicators,attr"`
	CoSimulation            *Interface         `xml:"CoSimulation"`
	ModelExchange           *Interface         `xml:"ModelExchange"`
	DefaultExperiment       *DefaultExperiment `xml:"DefaultExperiment"`
	Variables               []Variable         `xml:"ModelVariables>ScalarVariable"`
}

// Interface describes one of the CoSimulation and ModelExchange elements.
type Interface struct {
	ModelIdentifier                        string `xml:"modelIdentifier,attr"`
	CanHandleVariableCommunicationStepSize bool   `xml:"canHandleVariableCommunicationStepSize,attr"`
	CanGetAndSetFMUstate                   bool   `xml:"canGetAndSetFMUstate,attr"`
	CanSerializeFMUstate                   bool   `xml:"canSerializeFMUstate,attr"`
	ProvidesDirectionalDerivative          bool   `xml:"providesDirectionalDerivative,attr"`
}

// DefaultExperiment holds the unit's suggested experiment settings.
type DefaultExperiment struct {
	StartTime *float64 `xml:"startTime,attr"`
	StopTime  *float64 `xml:"stopTime,attr"`
	Tolerance *float64 `xml:"tolerance,attr"`
	StepSize  *float64 `xml:"stepSize,attr"`
}

// Kind is the type element of a scalar variable.
type Kind int

const (
	KindUnknown Kind = iota
	KindReal
	KindInteger
	KindBoolean
	KindString
	KindEnumeration
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "Real"
	case KindInteger:
		return "Integer"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindEnumeration:
		return "Enumeration"
	default:
		return "Unknown"
	}
}

// Variable is one ScalarVariable element.
type Variable struct {
	Name           string     `xml:"name,attr"`
	ValueReference uint32     `xml:"valueReference,attr"`
	Description    string     `xml:"description,attr"`
	Causality      string     `xml:"causality,attr"`
	Variability    string     `xml:"variability,attr"`
	Initial        string     `xml:"initial,attr"`
	Real           *typeStart `xml:"Real"`
	Integer        *typeStart `xml:"Integer"`
	Boolean        *typeStart `xml:"Boolean"`
	String         *typeStart `xml:"String"`
	Enumeration    *typeStart `xml:"Enumeration"`
}

type typeStart struct {
	Start *string `xml:"start,attr"`
}

// Kind reports which type element the variable carries.
func (v Variable) Kind() Kind {
	switch {
	case v.Real != nil:
		return KindReal
	case v.Integer != nil:
		return KindInteger
	case v.Boolean != nil:
		return KindBoolean
	case v.String != nil:
		return KindString
	case v.Enumeration != nil:
		return KindEnumeration
	default:
		return KindUnknown
	}
}

// Start returns the declared start value, if any.
func (v Variable) Start() (string, bool) {
	for _, t := range []*typeStart{v.Real, v.Integer, v.Boolean, v.String, v.Enumeration} {
		if t != nil && t.Start != nil {
			return *t.Start, true
		}
	}
	return "", false
}

// ParseModelDescription decodes and checks a modelDescription.xml document.
func ParseModelDescription(r io.Reader) (*ModelDescription, error) {
	var md ModelDescription
	if err := xml.NewDecoder(r).Decode(&md); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelDescription, err)
	}
	if !strings.HasPrefix(md.FMIVersion, "2.") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, md.FMIVersion)
	}
	if md.GUID == "" {
		return nil, fmt.Errorf("%w: missing guid", ErrModelDescription)
	}
	if md.CoSimulation == nil && md.ModelExchange == nil {
		return nil, fmt.Errorf("%w: neither CoSimulation nor ModelExchange declared", ErrModelDescription)
	}
	return &md, nil
}

// Variable returns the variable with the given name.
func (md *ModelDescription) Variable(name string) (Variable, error) {
	for _, v := range md.Variables {
		if v.Name == name {
			return v, nil
		}
	}
	return Variable{}, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
}

// ModelIdentifier returns the library base name for the co-simulation
// (coSimulation true) or model exchange interface.
func (md *ModelDescription) ModelIdentifier(coSimulation bool) (string, error) {
	iface, name := md.ModelExchange, "ModelExchange"
	if coSimulation {
		iface, name = md.CoSimulation, "CoSimulation"
	}
	if iface == nil || iface.ModelIdentifier == "" {
		return "", fmt.Errorf("%w: %s", ErrNoInterface, name)
	}
	return iface.ModelIdentifier, nil
}

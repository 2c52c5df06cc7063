package descriptor

import "fmt"

// RiskKind classifies non-fatal findings.
type RiskKind string

const (
	// SigningConfigurationRisk is raised when a release build reuses a
	// non-production signing identity.
	SigningConfigurationRisk RiskKind = "SigningConfigurationRisk"
	// SdkWindowRisk is raised when targetSdk is above compileSdk.
	SdkWindowRisk RiskKind = "SdkWindowRisk"
	// PluginInputRisk is raised when a plugin runs without its usual inputs.
	PluginInputRisk RiskKind = "PluginInputRisk"
	// UnknownPluginRisk is raised for plugin IDs nothing in the registry knows.
	UnknownPluginRisk RiskKind = "UnknownPluginRisk"
)

// Risk is a warning surfaced to the operator. It never fails resolution on
// its own.
type Risk struct {
	Kind    RiskKind `json:"kind" yaml:"kind"`
	Subject string   `json:"subject" yaml:"subject"`
	Message string   `json:"message" yaml:"message"`
}

func (r Risk) String() string {
	return fmt.Sprintf("%s: %s: %s", r.Kind, r.Subject, r.Message)
}

// RiskError wraps the risks found when the operator asked for them to be fatal.
type RiskError struct {
	Risks []Risk
}

func (e *RiskError) Error() string {
	return fmt.Sprintf("%d risk(s) found and -fail-on-risk is set, first: %s", len(e.Risks), e.Risks[0])
}

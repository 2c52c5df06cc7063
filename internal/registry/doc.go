// Package registry holds the build plugins known to an application
// instance. A plugin contributes three things to a descriptor: a namespace
// of values that expressions can reference (flutter.minSdkVersion), the
// blocks it owns (a descriptor may only use them when the plugin is
// applied), and an optional check run against the resolved result.
//
// Plugins register themselves through the Module interface.
package registry

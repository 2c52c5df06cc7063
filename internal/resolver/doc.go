// Package resolver turns a config.Model into a descriptor.Resolved.
//
// Resolution runs in one synchronous pass:
//
//  1. collect the applied plugins and check block ownership,
//  2. build the hcl.EvalContext from plugin values and builtins
//     (java.VERSION_*, signing_configs.*, platform()),
//  3. evaluate and validate the android settings and the BuildTarget,
//  4. resolve signing references and build types,
//  5. flatten, deduplicate and conflict-check the dependency coordinates,
//  6. run the plugin checks.
//
// Every problem found along the way is collected, so a single run reports
// all configuration errors at once. Risks never fail resolution.
package resolver

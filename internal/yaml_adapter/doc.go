// Package yaml_adapter loads build descriptors written in YAML into the
// format-agnostic config.Model.
//
// Scalars containing `${...}` are parsed as HCL templates, so a YAML
// descriptor references plugin values exactly like an HCL one:
//
//	android:
//	  compileSdk: ${flutter.compileSdkVersion}
//	  buildTypes:
//	    release:
//	      signingConfig: ${signing_configs.debug}
//	dependencies:
//	  implementation:
//	    - platform: com.google.firebase:firebase-bom:32.7.2
//	    - com.google.firebase:firebase-auth
package yaml_adapter

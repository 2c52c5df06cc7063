// Package hcl_adapter loads build descriptors written in HCL into the
// format-agnostic config.Model.
//
// A descriptor looks like:
//
//	plugin "com.android.application" {}
//	plugin "dev.flutter.flutter-gradle-plugin" {}
//
//	android {
//	  namespace   = "com.example.app"
//	  compile_sdk = flutter.compileSdkVersion
//
//	  default_config {
//	    application_id = "com.example.app"
//	    min_sdk        = flutter.minSdkVersion
//	    target_sdk     = 34
//	    version_code   = 1
//	    version_name   = "1.0"
//	  }
//
//	  build_type "release" {
//	    signing_config = signing_configs.debug
//	  }
//	}
//
//	flutter {
//	  source = "../.."
//	}
//
//	dependencies {
//	  implementation = [
//	    platform("com.google.firebase:firebase-bom:32.7.2"),
//	    "com.google.firebase:firebase-auth",
//	  ]
//	}
//
// Attribute values stay unevaluated; the resolver evaluates them once every
// plugin has contributed its values.
package hcl_adapter

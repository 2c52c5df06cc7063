package resolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/hcl_adapter"
	"github.com/specialistvlad/appdescriptor/internal/registry"
	"github.com/specialistvlad/appdescriptor/internal/resolver"
	"github.com/specialistvlad/appdescriptor/modules/android"
	"github.com/specialistvlad/appdescriptor/modules/flutter"
	"github.com/specialistvlad/appdescriptor/modules/kotlin"
	"github.com/stretchr/testify/require"
)

const plugins = `
plugin "com.android.application" {}
plugin "org.jetbrains.kotlin.android" {}
plugin "dev.flutter.flutter-gradle-plugin" {}
`

const baseDescriptor = plugins + `
android {
  namespace   = "com.example.app"
  compile_sdk = flutter.compileSdkVersion

  default_config {
    application_id = "com.example.app"
    min_sdk        = flutter.minSdkVersion
    target_sdk     = 34
    version_code   = 1
    version_name   = "1.0"
  }

  compile_options {
    source_compatibility = java.VERSION_11
    target_compatibility = java.VERSION_11
  }

  kotlin_options {
    jvm_target = java.VERSION_11
  }

  aapt_options {
    no_compress = ["tflite"]
  }

  build_type "release" {
    signing_config = signing_configs.debug
  }
}

flutter {
  source = "../.."
}

dependencies {
  implementation = [
    platform("com.google.firebase:firebase-bom:32.7.2"),
    "com.google.firebase:firebase-auth",
    "com.google.firebase:firebase-firestore",
    "com.google.android.gms:play-services-base:18.3.0",
  ]
}
`

// androidWith returns a descriptor whose android block holds body.
func androidWith(body string, extra string) string {
	return plugins + "\nandroid {\n" + body + "\n}\n" + extra
}

const minimalDefaultConfig = `
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
    version_code   = 1
    version_name   = "1.0"
  }
`

func newRegistry() *registry.Registry {
	reg := registry.New()
	for _, m := range []registry.Module{&android.Module{}, &kotlin.Module{}, &flutter.Module{}} {
		m.Register(reg)
	}
	return reg
}

func load(t *testing.T, src string) *config.Model {
	t.Helper()
	l := hcl_adapter.NewLoader("flutter")
	model, err := l.LoadSource(context.Background(), "app.hcl", []byte(src))
	require.NoError(t, err)
	return model
}

func resolve(t *testing.T, src string, opts resolver.Options) (*descriptor.Resolved, error) {
	t.Helper()
	if opts.BaseDir == "" {
		// Keeps the flutter plugin from finding a pubspec.yaml two levels up.
		opts.BaseDir = filepath.Join(t.TempDir(), "android", "app")
	}
	return resolver.Resolve(context.Background(), load(t, src), newRegistry(), opts)
}

func errorsOf(t *testing.T, err error) []error {
	t.Helper()
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "expected a *multierror.Error, got %T: %v", err, err)
	return merr.Errors
}

func TestResolve_BaseDescriptor(t *testing.T) {
	res, err := resolve(t, baseDescriptor, resolver.Options{})
	require.NoError(t, err)

	require.Equal(t, descriptor.BuildTarget{
		ApplicationID: "com.example.app",
		MinSdk:        21,
		TargetSdk:     34,
		VersionCode:   1,
		VersionName:   "1.0",
	}, res.Target)

	require.Equal(t, []string{
		"com.android.application",
		"dev.flutter.flutter-gradle-plugin",
		"org.jetbrains.kotlin.android",
	}, res.Plugins)

	require.Equal(t, "com.example.app", res.Android.Namespace)
	require.Equal(t, 35, res.Android.CompileSdk)
	require.Equal(t, "11", res.Android.SourceCompatibility)
	require.Equal(t, "11", res.Android.TargetCompatibility)
	require.Equal(t, "11", res.Android.JvmTarget)
	require.Equal(t, []string{"tflite"}, res.Android.NoCompress)

	require.Equal(t, map[string]string{
		"flutter.compileSdkVersion": "35",
		"flutter.minSdkVersion":     "21",
	}, res.PluginValues)

	bom := "com.google.firebase:firebase-bom:32.7.2"
	require.Equal(t, []descriptor.DependencyCoordinate{
		{Configuration: "implementation", Group: "com.google.firebase", Artifact: "firebase-bom", Version: "32.7.2", Platform: true},
		{Configuration: "implementation", Group: "com.google.android.gms", Artifact: "play-services-base", Version: "18.3.0"},
		{Configuration: "implementation", Group: "com.google.firebase", Artifact: "firebase-auth", ManagedBy: bom},
		{Configuration: "implementation", Group: "com.google.firebase", Artifact: "firebase-firestore", ManagedBy: bom},
	}, res.Dependencies)
}

func TestResolve_ReleaseSignedWithDebugIsRisk(t *testing.T) {
	res, err := resolve(t, baseDescriptor, resolver.Options{})
	require.NoError(t, err, "a debug-signed release must still resolve")

	release, ok := res.BuildType("release")
	require.True(t, ok)
	require.Equal(t, "debug", release.Signing.Name)
	require.True(t, release.Signing.Debug)
	require.False(t, release.Debuggable)

	debug, ok := res.BuildType("debug")
	require.True(t, ok)
	require.True(t, debug.Debuggable)

	require.Len(t, res.Risks, 1)
	require.Equal(t, descriptor.SigningConfigurationRisk, res.Risks[0].Kind)
	require.Equal(t, "buildTypes.release", res.Risks[0].Subject)
}

func TestResolve_Deterministic(t *testing.T) {
	first, err := resolve(t, baseDescriptor, resolver.Options{})
	require.NoError(t, err)
	second, err := resolve(t, baseDescriptor, resolver.Options{})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestResolve_MissingPlugin(t *testing.T) {
	src := `
plugin "com.android.application" {}

android {
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = flutter.minSdkVersion
    version_code   = 1
    version_name   = "1.0"
  }
}
`
	_, err := resolve(t, src, resolver.Options{})
	require.Error(t, err)

	var missing *descriptor.MissingPluginError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, flutter.ID, missing.PluginID)
	require.Equal(t, "flutter.minSdkVersion", missing.Reference)
}

func TestResolve_BrokenPluginInput(t *testing.T) {
	root := t.TempDir()
	baseDir := filepath.Join(root, "android", "app")
	require.NoError(t, os.MkdirAll(baseDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pubspec.yaml"), []byte("version: 1.0.0+abc\n"), 0o644))

	_, err := resolve(t, baseDescriptor, resolver.Options{BaseDir: baseDir})
	errs := errorsOf(t, err)
	require.Len(t, errs, 1, "references to the plugin's namespace must not add errors: %v", err)

	var cfgErr *descriptor.ConfigurationError
	require.True(t, errors.As(errs[0], &cfgErr))
	require.Equal(t, "plugin "+flutter.ID, cfgErr.Subject)
	require.Contains(t, cfgErr.Message, "non-numeric build number")

	var missing *descriptor.MissingPluginError
	require.False(t, errors.As(err, &missing))
}

func TestResolve_ExtensionBlockWithoutPlugin(t *testing.T) {
	src := `
plugin "com.android.application" {}

android {` + minimalDefaultConfig + `}

flutter {
  source = "../.."
}
`
	_, err := resolve(t, src, resolver.Options{})

	var missing *descriptor.MissingPluginError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, flutter.ID, missing.PluginID)
	require.Equal(t, "flutter block", missing.Reference)
}

func TestResolve_UnresolvedReferences(t *testing.T) {
	testCases := []struct {
		name string
		expr string
		want string
	}{
		{name: "attribute the plugin does not supply", expr: "flutter.fooVersion", want: "flutter.fooVersion"},
		{name: "unknown root", expr: "gradle.minSdk", want: "gradle.minSdk"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := androidWith(`
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = `+tc.expr+`
    version_code   = 1
    version_name   = "1.0"
  }
`, "")
			_, err := resolve(t, src, resolver.Options{})
			require.Error(t, err, "an undefined reference must fail rather than default")

			var unresolved *descriptor.UnresolvedReferenceError
			require.True(t, errors.As(err, &unresolved))
			require.Equal(t, tc.want, unresolved.Reference)
			require.NotNil(t, unresolved.Range)

			for _, e := range errorsOf(t, err) {
				var cfgErr *descriptor.ConfigurationError
				if errors.As(e, &cfgErr) {
					require.NotEqual(t, "defaultConfig.minSdk", cfgErr.Subject, "a failed reference must not be reported twice")
				}
			}
		})
	}
}

func TestResolve_UnknownFunction(t *testing.T) {
	src := androidWith(minimalDefaultConfig, `
dependencies {
  implementation = [enforcedPlatform("com.google.firebase:firebase-bom:32.7.2")]
}
`)
	_, err := resolve(t, src, resolver.Options{})

	var cfgErr *descriptor.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Contains(t, cfgErr.Message, `unknown function "enforcedPlatform"`)
}

func TestResolve_Dependencies(t *testing.T) {
	testCases := []struct {
		name     string
		deps     string
		validate func(t *testing.T, res *descriptor.Resolved, err error)
	}{
		{
			name: "conflicting versions",
			deps: `
  testImplementation        = ["junit:junit:4.13.2"]
  androidTestImplementation = ["junit:junit:4.12"]
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var conflict *descriptor.DependencyConflictError
				require.True(t, errors.As(err, &conflict))
				require.Equal(t, "junit:junit", conflict.Module)
				require.Equal(t, []string{"4.12", "4.13.2"}, conflict.Versions)
			},
		},
		{
			name: "identical duplicates collapse",
			deps: `
  testImplementation        = ["junit:junit:4.13.2"]
  androidTestImplementation = ["junit:junit:4.13.2"]
`,
			validate: func(t *testing.T, res *descriptor.Resolved, err error) {
				require.NoError(t, err)
				require.Equal(t, []descriptor.DependencyCoordinate{
					{Configuration: "androidTestImplementation,testImplementation", Group: "junit", Artifact: "junit", Version: "4.13.2"},
				}, res.Dependencies)
			},
		},
		{
			name: "explicit version against BOM",
			deps: `
  implementation = [
    platform("com.google.firebase:firebase-bom:32.7.2"),
    "com.google.firebase:firebase-auth",
  ]
  testImplementation = ["com.google.firebase:firebase-auth:22.3.0"]
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var conflict *descriptor.DependencyConflictError
				require.True(t, errors.As(err, &conflict))
				require.Equal(t, "com.google.firebase:firebase-auth", conflict.Module)
				require.Equal(t, []string{"22.3.0", "managed by com.google.firebase:firebase-bom:32.7.2"}, conflict.Versions)
			},
		},
		{
			name: "no version and no BOM",
			deps: `
  implementation = ["com.google.firebase:firebase-auth"]
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var cfgErr *descriptor.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				require.Contains(t, cfgErr.Message, "no platform BOM manages group")
			},
		},
		{
			name: "platform without version",
			deps: `
  implementation = [platform("com.google.firebase:firebase-bom")]
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var cfgErr *descriptor.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				require.Contains(t, cfgErr.Message, "needs a version")
			},
		},
		{
			name: "malformed coordinate",
			deps: `
  implementation = ["firebase-auth"]
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var cfgErr *descriptor.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				require.Contains(t, cfgErr.Message, "expected group:artifact[:version]")
			},
		},
		{
			name: "whitespace in segment",
			deps: `
  implementation = [
    "com.google.firebase:firebase-auth:23.0.0",
    "com.google.firebase: firebase-auth:22.3.0",
  ]
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var cfgErr *descriptor.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				require.Contains(t, cfgErr.Message, `segment " firebase-auth" contains whitespace`)
			},
		},
		{
			name: "malformed version",
			deps: `
  implementation = ["com.example:lib:not-a-version"]
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var cfgErr *descriptor.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				require.Contains(t, cfgErr.Message, "malformed version")
			},
		},
		{
			name: "dynamic version",
			deps: `
  implementation = ["com.example:lib:1.+"]
`,
			validate: func(t *testing.T, res *descriptor.Resolved, err error) {
				require.NoError(t, err)
				require.Equal(t, "1.+", res.Dependencies[0].Version)
			},
		},
		{
			name: "not a list",
			deps: `
  implementation = "com.example:lib:1.0.0"
`,
			validate: func(t *testing.T, _ *descriptor.Resolved, err error) {
				var cfgErr *descriptor.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				require.Contains(t, cfgErr.Message, "must be a list of coordinates")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := androidWith(minimalDefaultConfig, "dependencies {\n"+tc.deps+"}\n")
			res, err := resolve(t, src, resolver.Options{})
			tc.validate(t, res, err)
		})
	}
}

func TestResolve_DeclarationOrderIrrelevant(t *testing.T) {
	a := androidWith(minimalDefaultConfig, `
dependencies {
  implementation = ["b.group:lib:1.0.0", platform("a.group:bom:2.0.0"), "a.group:lib"]
}
`)
	b := androidWith(minimalDefaultConfig, `
dependencies {
  implementation = ["a.group:lib", platform("a.group:bom:2.0.0"), "b.group:lib:1.0.0"]
}
`)
	first, err := resolve(t, a, resolver.Options{})
	require.NoError(t, err)
	second, err := resolve(t, b, resolver.Options{})
	require.NoError(t, err)
	require.Equal(t, first.Dependencies, second.Dependencies)
}

func TestResolve_Signing(t *testing.T) {
	t.Run("declared release identity", func(t *testing.T) {
		src := androidWith(minimalDefaultConfig+`
  signing_config "upload" {
    store_file = "upload.jks"
    key_alias  = "upload"
  }
  build_type "release" {
    signing_config = signing_configs.upload
    minify_enabled = true
  }
`, "")
		res, err := resolve(t, src, resolver.Options{})
		require.NoError(t, err)

		release, ok := res.BuildType("release")
		require.True(t, ok)
		require.Equal(t, descriptor.SigningReference{Name: "upload", StoreFile: "upload.jks", KeyAlias: "upload"}, release.Signing)
		require.True(t, release.MinifyEnabled)
		require.Empty(t, res.Risks)
	})

	t.Run("undeclared identity", func(t *testing.T) {
		src := androidWith(minimalDefaultConfig+`
  build_type "release" {
    signing_config = signing_configs.upload
  }
`, "")
		_, err := resolve(t, src, resolver.Options{})

		var unresolved *descriptor.UnresolvedReferenceError
		require.True(t, errors.As(err, &unresolved))
		require.Equal(t, "signing_configs.upload", unresolved.Reference)
	})

	t.Run("undeclared identity by name", func(t *testing.T) {
		src := androidWith(minimalDefaultConfig+`
  build_type "release" {
    signing_config = "upload"
  }
`, "")
		_, err := resolve(t, src, resolver.Options{})

		var unresolved *descriptor.UnresolvedReferenceError
		require.True(t, errors.As(err, &unresolved))
		require.Equal(t, "signing_configs.upload", unresolved.Reference)
	})

	t.Run("store file required", func(t *testing.T) {
		src := androidWith(minimalDefaultConfig+`
  signing_config "upload" {
    key_alias = "upload"
  }
`, "")
		_, err := resolve(t, src, resolver.Options{})

		var cfgErr *descriptor.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		require.Equal(t, "signingConfigs.upload.storeFile", cfgErr.Subject)
	})

	t.Run("unsigned release", func(t *testing.T) {
		res, err := resolve(t, androidWith(minimalDefaultConfig, ""), resolver.Options{})
		require.NoError(t, err)

		release, ok := res.BuildType("release")
		require.True(t, ok)
		require.Empty(t, release.Signing.Name)
		require.Len(t, res.Risks, 1)
		require.Equal(t, descriptor.SigningConfigurationRisk, res.Risks[0].Kind)
	})
}

func TestResolve_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		opts        resolver.Options
		wantSubject string
		wantMessage string
	}{
		{
			name: "missing version code",
			body: `
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    version_name   = "1.0"
  }
`,
			wantSubject: "defaultConfig.versionCode",
			wantMessage: "is required",
		},
		{
			name: "bad application id",
			body: `
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "example"
    min_sdk        = 21
    version_code   = 1
    version_name   = "1.0"
  }
`,
			wantSubject: "defaultConfig.applicationId",
			wantMessage: "not a valid Java package name",
		},
		{
			name: "target below min",
			body: `
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 19
    version_code   = 1
    version_name   = "1.0"
  }
`,
			wantSubject: "defaultConfig.targetSdk",
			wantMessage: "must be greater than or equal to minSdk",
		},
		{
			name: "version code too large",
			body: `
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    version_code   = 2100000001
    version_name   = "1.0"
  }
`,
			wantSubject: "defaultConfig.versionCode",
			wantMessage: "must be at most 2100000000",
		},
		{
			name: "malformed version name",
			body: `
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    version_code   = 1
    version_name   = "one"
  }
`,
			wantSubject: "defaultConfig.versionName",
			wantMessage: "malformed version",
		},
		{
			name: "fractional sdk",
			body: `
  namespace   = "com.example.app"
  compile_sdk = 34.5
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    version_code   = 1
    version_name   = "1.0"
  }
`,
			wantSubject: "android.compileSdk",
			wantMessage: "must be a whole number",
		},
		{
			name: "malformed ndk version",
			body: minimalDefaultConfig + `
  ndk_version = "r27"
`,
			wantSubject: "android.ndkVersion",
			wantMessage: "malformed version",
		},
		{
			name: "unsupported java level",
			body: minimalDefaultConfig + `
  compile_options {
    source_compatibility = "9"
  }
`,
			wantSubject: "compileOptions.sourceCompatibility",
			wantMessage: "unsupported Java level",
		},
		{
			name:        "version code not above last release",
			body:        minimalDefaultConfig,
			opts:        resolver.Options{LastVersionCode: 1},
			wantSubject: "defaultConfig.versionCode",
			wantMessage: "must be greater than the last released version code 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolve(t, androidWith(tc.body, ""), tc.opts)
			require.Error(t, err)

			var found bool
			for _, e := range errorsOf(t, err) {
				var cfgErr *descriptor.ConfigurationError
				if errors.As(e, &cfgErr) && cfgErr.Subject == tc.wantSubject {
					require.Contains(t, cfgErr.Message, tc.wantMessage)
					found = true
				}
			}
			require.True(t, found, "no configuration error for %s in: %v", tc.wantSubject, err)
		})
	}
}

func TestResolve_ReportsAllErrors(t *testing.T) {
	src := androidWith(`
  namespace   = "not a package"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = flutter.fooVersion
    version_name   = "1.0"
  }
`, "")
	_, err := resolve(t, src, resolver.Options{})
	require.Len(t, errorsOf(t, err), 3)
}

func TestResolve_MissingAndroidBlock(t *testing.T) {
	_, err := resolve(t, plugins, resolver.Options{})

	var cfgErr *descriptor.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Contains(t, cfgErr.Message, "android block is required")
}

func TestResolve_TargetDefaultsToMin(t *testing.T) {
	src := androidWith(`
  namespace   = "com.example.app"
  compile_sdk = 35
  default_config {
    application_id = "com.example.app"
    min_sdk        = 23
    version_code   = 1
    version_name   = "1.0"
  }
`, "")
	res, err := resolve(t, src, resolver.Options{})
	require.NoError(t, err)
	require.Equal(t, 23, res.Target.TargetSdk)
}

func TestResolve_SdkWindowRisk(t *testing.T) {
	src := androidWith(`
  namespace   = "com.example.app"
  compile_sdk = 34
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 35
    version_code   = 1
    version_name   = "1.0"
  }
`, "")
	res, err := resolve(t, src, resolver.Options{})
	require.NoError(t, err)

	var kinds []descriptor.RiskKind
	for _, r := range res.Risks {
		kinds = append(kinds, r.Kind)
	}
	require.Contains(t, kinds, descriptor.SdkWindowRisk)
}

func TestResolve_KotlinJvmTargetMismatch(t *testing.T) {
	src := androidWith(minimalDefaultConfig+`
  compile_options {
    target_compatibility = java.VERSION_11
  }
  kotlin_options {
    jvm_target = java.VERSION_17
  }
`, "")
	_, err := resolve(t, src, resolver.Options{})

	var cfgErr *descriptor.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "kotlinOptions.jvmTarget", cfgErr.Subject)
}

func TestResolve_PluginValueOverrides(t *testing.T) {
	res, err := resolve(t, baseDescriptor, resolver.Options{
		Overrides: map[string]map[string]any{"flutter": {"minSdkVersion": 24}},
	})
	require.NoError(t, err)
	require.Equal(t, 24, res.Target.MinSdk)
	require.Equal(t, "24", res.PluginValues["flutter.minSdkVersion"])
}

func TestResolve_UnknownPlugin(t *testing.T) {
	src := `plugin "com.example.custom" {}` + androidWith(minimalDefaultConfig, "")
	res, err := resolve(t, src, resolver.Options{})
	require.NoError(t, err)

	require.Contains(t, res.Plugins, "com.example.custom")
	var found bool
	for _, r := range res.Risks {
		if r.Kind == descriptor.UnknownPluginRisk {
			found = true
		}
	}
	require.True(t, found)
}

func TestResolve_DuplicatePlugin(t *testing.T) {
	src := `plugin "com.android.application" {}` + androidWith(minimalDefaultConfig, "")
	_, err := resolve(t, src, resolver.Options{})

	var cfgErr *descriptor.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Contains(t, cfgErr.Message, "declared more than once")
}

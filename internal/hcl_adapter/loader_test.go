package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const fullDescriptor = `
plugin "com.android.application" {}
plugin "dev.flutter.flutter-gradle-plugin" {
  version = "1.0.0"
}
plugin "com.google.gms.google-services" {
  apply = false
}

android {
  namespace   = "com.example.urinalysis_app"
  compile_sdk = flutter.compileSdkVersion
  ndk_version = "27.0.12077973"

  aapt_options {
    no_compress = ["tflite"]
  }

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
  ]
  testImplementation = ["junit:junit:4.13.2"]
}
`

func TestLoader_LoadSource_FullDescriptor(t *testing.T) {
	l := NewLoader("flutter")
	model, err := l.LoadSource(context.Background(), "app.hcl", []byte(fullDescriptor))
	require.NoError(t, err)

	require.Equal(t, []string{"app.hcl"}, model.Files)

	require.Len(t, model.Plugins, 3)
	require.Equal(t, "com.android.application", model.Plugins[0].ID)
	require.True(t, model.Plugins[0].Apply)
	require.Equal(t, "1.0.0", model.Plugins[1].Version)
	require.False(t, model.Plugins[2].Apply)

	a := model.Android
	require.NotNil(t, a)
	require.NotNil(t, a.Namespace)
	require.NotNil(t, a.CompileSdk)
	require.NotNil(t, a.NdkVersion)
	require.NotNil(t, a.DefaultConfig)
	require.NotNil(t, a.DefaultConfig.MinSdk)
	require.NotNil(t, a.CompileOptions)
	require.NotNil(t, a.KotlinOptions)
	require.NotNil(t, a.AaptOptions)
	require.Empty(t, a.SigningConfigs)
	require.Len(t, a.BuildTypes, 1)
	require.Equal(t, "release", a.BuildTypes[0].Name)
	require.NotNil(t, a.BuildTypes[0].SigningConfig)
	require.Nil(t, a.BuildTypes[0].MinifyEnabled, "omitted attributes must translate to nil")

	vars := a.DefaultConfig.MinSdk.Variables()
	require.Len(t, vars, 1)
	require.Equal(t, "flutter", vars[0].RootName())

	require.Contains(t, model.Extensions, "flutter")
	src, diags := model.Extensions["flutter"].Attributes["source"].Value(nil)
	require.False(t, diags.HasErrors())
	require.Equal(t, cty.StringVal("../.."), src)

	require.Len(t, model.Dependencies, 2)
	require.Equal(t, "implementation", model.Dependencies[0].Configuration)
	require.Equal(t, "testImplementation", model.Dependencies[1].Configuration)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "syntax error",
			src:  "android {\n  namespace = \"x\"\n",
			want: "failed to parse",
		},
		{
			name: "duplicate android block",
			src:  "android {}\nandroid {}\n",
			want: "failed to decode",
		},
		{
			name: "unknown top-level block",
			src:  "gradle {}\n",
			want: "failed to decode",
		},
		{
			name: "unknown android attribute",
			src:  "android {\n  compile_sdk_version = 34\n}\n",
			want: "failed to decode",
		},
		{
			name: "duplicate extension block",
			src:  "flutter {}\nflutter {}\n",
			want: "duplicate flutter block",
		},
		{
			name: "nested block in dependencies",
			src:  "dependencies {\n  implementation {}\n}\n",
			want: "failed to decode dependencies",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader("flutter").LoadSource(context.Background(), "bad.hcl", []byte(tc.src))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoader_Load_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`plugin "com.android.application" {}`), 0600))

	l := NewLoader()
	require.True(t, l.Supports(path))
	require.False(t, l.Supports("app.yaml"))

	model, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Plugins, 1)
	require.Equal(t, path, model.Plugins[0].DefRange.Filename)

	_, err = l.Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorContains(t, err, "failed to read")
}

func TestDefRange_NilBody(t *testing.T) {
	require.Equal(t, hcl.Range{}, defRange(nil))
}

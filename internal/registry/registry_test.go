package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func noValues(context.Context, *Env) (map[string]cty.Value, error) { return nil, nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	r.RegisterPlugin(&RegisteredPlugin{ID: "com.android.application", Owns: []string{"android"}})
	r.RegisterPlugin(&RegisteredPlugin{ID: "dev.flutter.flutter-gradle-plugin", Namespace: "flutter", Extension: "flutter", Values: noValues})

	p, ok := r.Lookup("dev.flutter.flutter-gradle-plugin")
	require.True(t, ok)
	require.Equal(t, "flutter", p.Namespace)

	p, ok = r.PluginForNamespace("flutter")
	require.True(t, ok)
	require.Equal(t, "dev.flutter.flutter-gradle-plugin", p.ID)

	p, ok = r.OwnerOf("android")
	require.True(t, ok)
	require.Equal(t, "com.android.application", p.ID)

	_, ok = r.OwnerOf("kotlin_options")
	require.False(t, ok)

	require.Equal(t, []string{"flutter"}, r.ExtensionBlocks())
	require.Equal(t, []string{"com.android.application", "dev.flutter.flutter-gradle-plugin"}, r.IDs())
}

func TestRegistry_RegisterPanicsOnCollisions(t *testing.T) {
	tests := []struct {
		name   string
		second *RegisteredPlugin
	}{
		{"same id", &RegisteredPlugin{ID: "a"}},
		{"same namespace", &RegisteredPlugin{ID: "b", Namespace: "ns", Values: noValues}},
		{"same owned block", &RegisteredPlugin{ID: "c", Owns: []string{"block"}}},
		{"empty id", &RegisteredPlugin{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			r.RegisterPlugin(&RegisteredPlugin{ID: "a", Namespace: "ns", Owns: []string{"block"}, Values: noValues})
			require.Panics(t, func() { r.RegisterPlugin(tc.second) })
		})
	}
}

func TestRegistry_ValidateRegistry(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := New()
		r.RegisterPlugin(&RegisteredPlugin{ID: "flutter", Namespace: "flutter", Values: noValues})
		require.NoError(t, r.ValidateRegistry(context.Background(), "java"))
	})

	t.Run("reserved namespace and missing values", func(t *testing.T) {
		r := New()
		r.RegisterPlugin(&RegisteredPlugin{ID: "bad", Namespace: "java"})
		r.RegisterPlugin(&RegisteredPlugin{ID: "orphan", Values: noValues})

		err := r.ValidateRegistry(context.Background(), "java")
		require.Error(t, err)
		require.Contains(t, err.Error(), "namespace 'java' is reserved")
		require.Contains(t, err.Error(), "has no values function")
		require.Contains(t, err.Error(), "no namespace to expose it under")
	})
}

func TestEnv_MergeValues(t *testing.T) {
	env := &Env{Overrides: map[string]any{"minSdkVersion": 23}}

	values, err := env.MergeValues(map[string]any{
		"minSdkVersion":     21,
		"compileSdkVersion": 35,
		"ndkVersion":        "26.3.11579264",
	})
	require.NoError(t, err)
	require.True(t, values["minSdkVersion"].Equals(cty.NumberIntVal(23)).True())
	require.True(t, values["compileSdkVersion"].Equals(cty.NumberIntVal(35)).True())
	require.True(t, values["ndkVersion"].Equals(cty.StringVal("26.3.11579264")).True())
}

func TestEnv_ExtensionString(t *testing.T) {
	env := &Env{Extension: map[string]cty.Value{"source": cty.StringVal("../app")}}
	require.Equal(t, "../app", env.ExtensionString("source", "../.."))
	require.Equal(t, "x", env.ExtensionString("missing", "x"))

	var nilEnv *Env
	require.Equal(t, "d", nilEnv.ExtensionString("source", "d"))
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flutter:\n  minSdkVersion: 23\n"), 0600))

	out, err := LoadOverrides(path)
	require.NoError(t, err)
	require.Equal(t, 23, out["flutter"]["minSdkVersion"])

	none, err := LoadOverrides("")
	require.NoError(t, err)
	require.Nil(t, none)

	_, err = LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read plugin values file")
}

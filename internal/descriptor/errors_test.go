package descriptor

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	rng := &hcl.Range{
		Filename: "app.hcl",
		Start:    hcl.Pos{Line: 3, Column: 5, Byte: 20},
		End:      hcl.Pos{Line: 3, Column: 26, Byte: 41},
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "configuration with range",
			err:  &ConfigurationError{Subject: "android.namespace", Message: "is required", Range: rng},
			want: "app.hcl:3,5-26: configuration error in android.namespace: is required",
		},
		{
			name: "unresolved without range",
			err:  &UnresolvedReferenceError{Reference: "flutter.fooVersion", Detail: "not supplied"},
			want: `unresolved reference "flutter.fooVersion": not supplied`,
		},
		{
			name: "missing plugin",
			err:  &MissingPluginError{PluginID: "dev.flutter.flutter-gradle-plugin", Reference: "flutter.minSdkVersion"},
			want: `flutter.minSdkVersion requires plugin "dev.flutter.flutter-gradle-plugin", which is not applied`,
		},
		{
			name: "conflict",
			err:  &DependencyConflictError{Module: "com.google.firebase:firebase-auth", Versions: []string{"22.0.0", "23.0.0"}},
			want: "conflicting versions for com.google.firebase:firebase-auth: 22.0.0 vs 23.0.0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestDependencyCoordinate_String(t *testing.T) {
	c := DependencyCoordinate{Group: "com.google.firebase", Artifact: "firebase-auth"}
	require.Equal(t, "com.google.firebase:firebase-auth", c.String())

	c.Version = "23.0.0"
	require.Equal(t, "com.google.firebase:firebase-auth:23.0.0", c.String())
}

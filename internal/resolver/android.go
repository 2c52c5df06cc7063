package resolver

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/hclutil"
)

// resolveAndroid fills the Android settings and the BuildTarget.
func (r *resolver) resolveAndroid(a *config.Android) {
	out := &r.out.Android

	if r.required(a.Namespace, "android.namespace", a.DefRange) {
		out.Namespace, _ = r.evalString(a.Namespace, "android.namespace")
	}
	if r.required(a.CompileSdk, "android.compileSdk", a.DefRange) {
		out.CompileSdk, _ = r.evalInt(a.CompileSdk, "android.compileSdk")
	}
	if ndk, ok := r.evalString(a.NdkVersion, "android.ndkVersion"); ok {
		if err := checkVersion(ndk); err != nil {
			r.fail(&descriptor.ConfigurationError{Subject: "android.ndkVersion", Message: err.Error(), Range: hclutil.RangePtr(a.NdkVersion)})
		}
		out.NdkVersion = ndk
	}

	if co := a.CompileOptions; co != nil {
		out.SourceCompatibility = r.javaLevel(co.SourceCompatibility, "compileOptions.sourceCompatibility")
		out.TargetCompatibility = r.javaLevel(co.TargetCompatibility, "compileOptions.targetCompatibility")
	}
	if ko := a.KotlinOptions; ko != nil {
		out.JvmTarget = r.javaLevel(ko.JvmTarget, "kotlinOptions.jvmTarget")
	}
	if ao := a.AaptOptions; ao != nil {
		out.NoCompress, _ = r.evalStringList(ao.NoCompress, "aaptOptions.noCompress")
	}
	r.validateStruct(out, "android", a.DefRange)

	if a.DefaultConfig == nil {
		r.fail(&descriptor.ConfigurationError{Subject: "android.defaultConfig", Message: "is required", Range: a.DefRange.Ptr()})
		return
	}
	r.resolveTarget(a.DefaultConfig)
}

func (r *resolver) resolveTarget(dc *config.DefaultConfig) {
	t := &r.out.Target

	if r.required(dc.ApplicationID, "defaultConfig.applicationId", dc.DefRange) {
		t.ApplicationID, _ = r.evalString(dc.ApplicationID, "defaultConfig.applicationId")
	}
	if r.required(dc.MinSdk, "defaultConfig.minSdk", dc.DefRange) {
		t.MinSdk, _ = r.evalInt(dc.MinSdk, "defaultConfig.minSdk")
	}
	if dc.TargetSdk == nil {
		t.TargetSdk = t.MinSdk
		r.logger.Debug("targetSdk not set, defaulting to minSdk.", "min_sdk", t.MinSdk)
	} else if v, ok := r.evalInt(dc.TargetSdk, "defaultConfig.targetSdk"); ok {
		t.TargetSdk = v
	}
	if r.required(dc.VersionCode, "defaultConfig.versionCode", dc.DefRange) {
		t.VersionCode, _ = r.evalInt(dc.VersionCode, "defaultConfig.versionCode")
	}
	if r.required(dc.VersionName, "defaultConfig.versionName", dc.DefRange) {
		if name, ok := r.evalString(dc.VersionName, "defaultConfig.versionName"); ok {
			if err := checkVersion(name); err != nil {
				r.fail(&descriptor.ConfigurationError{Subject: "defaultConfig.versionName", Message: err.Error(), Range: hclutil.RangePtr(dc.VersionName)})
				r.failed["defaultConfig.versionName"] = true
			}
			t.VersionName = name
		}
	}
	// A failed minSdk would make every targetSdk look wrong.
	if r.failed["defaultConfig.minSdk"] {
		r.failed["defaultConfig.targetSdk"] = true
	}
	r.validateStruct(t, "defaultConfig", dc.DefRange)

	if last := r.opts.LastVersionCode; last > 0 && !r.failed["defaultConfig.versionCode"] && t.VersionCode <= last {
		r.fail(&descriptor.ConfigurationError{
			Subject: "defaultConfig.versionCode",
			Message: fmt.Sprintf("must be greater than the last released version code %d, got %d", last, t.VersionCode),
			Range:   hclutil.RangePtr(dc.VersionCode),
		})
	}

	if compile := r.out.Android.CompileSdk; compile > 0 && t.TargetSdk > compile {
		r.warn(descriptor.SdkWindowRisk, "defaultConfig.targetSdk",
			fmt.Sprintf("targetSdk %d is above compileSdk %d", t.TargetSdk, compile))
	}
}

// javaLevel resolves a Java language level such as java.VERSION_11 or "11".
func (r *resolver) javaLevel(expr hcl.Expression, subject string) string {
	level, ok := r.evalString(expr, subject)
	if !ok {
		return ""
	}
	if !isJavaLevel(level) {
		r.fail(&descriptor.ConfigurationError{
			Subject: subject,
			Message: fmt.Sprintf("unsupported Java level %q, expected one of %s", level, strings.Join(javaLevels(), ", ")),
			Range:   hclutil.RangePtr(expr),
		})
		r.failed[subject] = true
		return ""
	}
	return level
}

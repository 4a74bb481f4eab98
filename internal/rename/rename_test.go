package rename

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

const gradle = `android {
    defaultConfig {
        applicationId "com.example.old"
        minSdkVersion 21
    }
    flavorDimensions "env"
    productFlavors {
        dev { applicationId 'com.example.old.dev' }
    }
}
`

const pbxproj = `		buildSettings = {
				PRODUCT_BUNDLE_IDENTIFIER = com.example.old;
		};
		buildSettings = {
				PRODUCT_BUNDLE_IDENTIFIER = "com.example.old.RunnerTests";
		};
`

const pubspec = `name: old
description: A new Flutter project.
dependencies:
  name: not_this_one
`

func writeFile(t *testing.T, root, rel, content string, perm os.FileMode) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func fullProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, GradlePath, gradle, 0644)
	writeFile(t, root, PbxprojPath, pbxproj, 0644)
	writeFile(t, root, PubspecPath, pubspec, 0644)
	return root
}

func TestRename_AllFiles(t *testing.T) {
	root := fullProject(t)

	res, err := Rename(root, "io.acme.shop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Edited) != 3 || len(res.Missing) != 0 {
		t.Errorf("Result = %+v", res)
	}

	g := readFile(t, root, GradlePath)
	if !strings.Contains(g, `applicationId "io.acme.shop"`) {
		t.Errorf("gradle not rewritten:\n%s", g)
	}
	if !strings.Contains(g, `applicationId 'com.example.old.dev'`) {
		t.Errorf("only the first applicationId should change:\n%s", g)
	}

	p := readFile(t, root, PbxprojPath)
	if strings.Count(p, "PRODUCT_BUNDLE_IDENTIFIER = io.acme.shop;") != 2 {
		t.Errorf("every bundle identifier should change:\n%s", p)
	}

	s := readFile(t, root, PubspecPath)
	if !strings.HasPrefix(s, "name: shop\n") {
		t.Errorf("pubspec name not rewritten:\n%s", s)
	}
	if !strings.Contains(s, "  name: not_this_one") {
		t.Errorf("indented name keys must be left alone:\n%s", s)
	}
}

func TestRename_ManifestOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, PubspecPath, pubspec, 0644)

	res, err := Rename(root, "io.acme.shop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Edited, []string{PubspecPath}) {
		t.Errorf("Edited = %v", res.Edited)
	}
	if !reflect.DeepEqual(res.Missing, []string{GradlePath, PbxprojPath}) {
		t.Errorf("Missing = %v", res.Missing)
	}
	if _, err := os.Stat(filepath.Join(root, "android")); !os.IsNotExist(err) {
		t.Error("missing files must not be created")
	}
}

func TestRename_Kotlin(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, GradleKtsPath, "defaultConfig {\n    applicationId = \"com.example.old\"\n}\n", 0644)

	if got := DetectPackageID(root); got != "com.example.old" {
		t.Errorf("DetectPackageID() = %q", got)
	}
	res, err := Rename(root, "io.acme.shop")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Edited) != 1 || res.Edited[0] != GradleKtsPath {
		t.Errorf("Edited = %v", res.Edited)
	}
	if !strings.Contains(readFile(t, root, GradleKtsPath), `applicationId = "io.acme.shop"`) {
		t.Error("kts not rewritten")
	}
}

func TestRename_AggregatesFailures(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	root := fullProject(t)
	for _, rel := range []string{GradlePath, PbxprojPath} {
		if err := os.Chmod(filepath.Join(root, rel), 0444); err != nil {
			t.Fatal(err)
		}
	}

	res, err := Rename(root, "io.acme.shop")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, rel := range []string{GradlePath, PbxprojPath} {
		if !strings.Contains(err.Error(), rel) {
			t.Errorf("error should mention %s: %v", rel, err)
		}
	}
	if !reflect.DeepEqual(res.Edited, []string{PubspecPath}) {
		t.Errorf("successful edits should be kept, Edited = %v", res.Edited)
	}
}

func TestRename_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced")
	}
	root := t.TempDir()
	writeFile(t, root, PubspecPath, pubspec, 0600)

	if _, err := Rename(root, "io.acme.shop"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filepath.Join(root, PubspecPath))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestDetectPackageID(t *testing.T) {
	if got := DetectPackageID(t.TempDir()); got != DefaultPackageID {
		t.Errorf("empty project: %q", got)
	}
	if got := DetectPackageID(fullProject(t)); got != "com.example.old" {
		t.Errorf("DetectPackageID() = %q", got)
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"com.example.app", false},
		{"io.acme_co.Shop2", false},
		{"app", true},
		{"com..app", true},
		{"com.1app", true},
		{"com.example-app", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if err := ValidateIdentifier(tt.id); (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) = %v", tt.id, err)
			}
		})
	}
}

func TestLastSegment(t *testing.T) {
	if got := LastSegment("com.example.shop"); got != "shop" {
		t.Errorf("LastSegment() = %q", got)
	}
	if got := LastSegment("shop"); got != "shop" {
		t.Errorf("LastSegment() = %q", got)
	}
}

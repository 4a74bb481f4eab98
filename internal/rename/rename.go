// Package rename rewrites a Flutter project's application identifier across
// the Android build script, the Xcode project and the package manifest.
//
// The three edits are independent and not atomic: a failure in one file
// leaves earlier edits in place and is reported with the others.
package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultPackageID is reported when no Android identifier can be found.
const DefaultPackageID = "com.example.myapp"

// Project-relative paths of the rewritten files.
var (
	GradlePath    = filepath.Join("android", "app", "build.gradle")
	GradleKtsPath = filepath.Join("android", "app", "build.gradle.kts")
	PbxprojPath   = filepath.Join("ios", "Runner.xcodeproj", "project.pbxproj")
	PubspecPath   = "pubspec.yaml"
)

var (
	gradleID    = regexp.MustCompile(`applicationId\s+["']([^"']+)["']`)
	gradleKtsID = regexp.MustCompile(`applicationId\s*=\s*"([^"]+)"`)
	bundleID    = regexp.MustCompile(`PRODUCT_BUNDLE_IDENTIFIER\s*=\s*[^;]+;`)
	pubspecName = regexp.MustCompile(`(?m)^name:[ \t]*.+$`)
	segment     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// Result lists the files touched by Rename, relative to the project root.
type Result struct {
	Edited  []string
	Missing []string
}

// ValidateIdentifier checks that id has at least two dot-separated segments,
// each starting with a letter.
func ValidateIdentifier(id string) error {
	parts := strings.Split(id, ".")
	if len(parts) < 2 {
		return fmt.Errorf("invalid package ID %q: expected at least two segments (e.g. com.example.app)", id)
	}
	for _, p := range parts {
		if !segment.MatchString(p) {
			return fmt.Errorf("invalid package ID %q: segment %q must start with a letter and contain only letters, digits or underscores", id, p)
		}
	}
	return nil
}

// DetectPackageID returns the applicationId from the Android build script,
// or DefaultPackageID when neither script declares one.
func DetectPackageID(root string) string {
	if data, err := os.ReadFile(filepath.Join(root, GradlePath)); err == nil {
		if m := gradleID.FindSubmatch(data); m != nil {
			return string(m[1])
		}
	}
	if data, err := os.ReadFile(filepath.Join(root, GradleKtsPath)); err == nil {
		if m := gradleKtsID.FindSubmatch(data); m != nil {
			return string(m[1])
		}
	}
	return DefaultPackageID
}

// edit is one file rewrite.
type edit struct {
	path    string
	rewrite func(content, newID string) string
}

// Rename applies newID to every project file that exists under root.
// Missing files are recorded in Result.Missing. Write failures are joined
// into the returned error; successful edits are kept.
func Rename(root, newID string) (Result, error) {
	gradle := edit{path: GradlePath, rewrite: rewriteGradle}
	if !exists(filepath.Join(root, GradlePath)) && exists(filepath.Join(root, GradleKtsPath)) {
		gradle = edit{path: GradleKtsPath, rewrite: rewriteGradleKts}
	}
	edits := []edit{
		gradle,
		{path: PbxprojPath, rewrite: rewritePbxproj},
		{path: PubspecPath, rewrite: rewritePubspec},
	}

	var res Result
	var errs []error
	for _, e := range edits {
		changed, err := apply(filepath.Join(root, e.path), func(s string) string { return e.rewrite(s, newID) })
		switch {
		case errors.Is(err, os.ErrNotExist):
			res.Missing = append(res.Missing, e.path)
		case err != nil:
			errs = append(errs, fmt.Errorf("updating %s: %w", e.path, err))
		case changed:
			res.Edited = append(res.Edited, e.path)
		}
	}
	return res, errors.Join(errs...)
}

// apply read-modify-writes path, keeping its permission bits. It reports
// whether the content changed.
func apply(path string, rewrite func(string) string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	updated := rewrite(string(data))
	if updated == string(data) {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func rewriteGradle(content, newID string) string {
	return replaceFirst(gradleID, content, `applicationId "`+newID+`"`)
}

func rewriteGradleKts(content, newID string) string {
	return replaceFirst(gradleKtsID, content, `applicationId = "`+newID+`"`)
}

func rewritePbxproj(content, newID string) string {
	return bundleID.ReplaceAllLiteralString(content, "PRODUCT_BUNDLE_IDENTIFIER = "+newID+";")
}

func rewritePubspec(content, newID string) string {
	return replaceFirst(pubspecName, content, "name: "+LastSegment(newID))
}

// LastSegment returns the final dot-separated part of id.
func LastSegment(id string) string {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[i+1:]
	}
	return id
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

package fvm

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Record is one SDK version entry from the version-manager listing.
type Record struct {
	Name string `json:"name"`
	// Channel is empty when the tool reports no channel.
	Channel  string `json:"channel,omitempty"`
	IsGlobal bool   `json:"isGlobal"`
}

// Channels lists the release channels fvm accepts in place of a version,
// in display order.
var Channels = []string{"stable", "beta", "dev", "master", "main"}

var commitPattern = regexp.MustCompile(`^[0-9a-f]{7,40}$`)

// FindGlobal returns the first record marked global.
func FindGlobal(records []Record) (Record, bool) {
	for _, r := range records {
		if r.IsGlobal {
			return r, true
		}
	}
	return Record{}, false
}

// Label returns the name followed by the channel and global marker when
// present, e.g. "3.24.0 (stable, global)".
func (r Record) Label() string {
	var tags []string
	if r.Channel != "" && r.Channel != r.Name {
		tags = append(tags, r.Channel)
	}
	if r.IsGlobal {
		tags = append(tags, "global")
	}
	if len(tags) == 0 {
		return r.Name
	}
	return r.Name + " (" + strings.Join(tags, ", ") + ")"
}

// Labels returns Label for each record in order.
func Labels(records []Record) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Label()
	}
	return labels
}

// IsChannel reports whether s names a release channel.
func IsChannel(s string) bool {
	for _, c := range Channels {
		if s == c {
			return true
		}
	}
	return false
}

// channelRank returns the display position of a channel, or -1.
func channelRank(s string) int {
	for i, c := range Channels {
		if s == c {
			return i
		}
	}
	return -1
}

// parseVersion parses a release name such as "3.24.0", "v3.24.0" or
// "3.24.0@beta".
func parseVersion(s string) (*semver.Version, error) {
	s, _, _ = strings.Cut(s, "@")
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}

// looksLikeVersion reports whether tok can name an SDK: a channel, a full
// major.minor.patch release, or a commit hash. Bare numbers such as "2" or
// "1.5" are rejected.
func looksLikeVersion(tok string) bool {
	if IsChannel(tok) || commitPattern.MatchString(tok) {
		return true
	}
	tok, _, _ = strings.Cut(tok, "@")
	_, err := semver.StrictNewVersion(strings.TrimPrefix(tok, "v"))
	return err == nil
}

// ValidateVersionSpec checks a user-entered version before it is handed to
// fvm. Forked SDKs ("fork/3.24.0") and custom builds ("custom_x") are
// accepted as fvm accepts them.
func ValidateVersionSpec(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("version must not be empty")
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return fmt.Errorf("invalid version %q: must not contain whitespace", s)
	}
	if strings.HasPrefix(s, "custom_") {
		return nil
	}
	if fork, rest, ok := strings.Cut(s, "/"); ok && fork != "" {
		s = rest
	}
	if !looksLikeVersion(s) {
		return fmt.Errorf("invalid version %q: expected a release (e.g. 3.24.0), a channel (%s) or a commit hash",
			s, strings.Join(Channels[:4], ", "))
	}
	return nil
}

// SortByVersion returns a copy of records ordered channels first, then
// releases newest first, then anything else alphabetically.
func SortByVersion(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	type key struct {
		group   int
		rank    int
		version *semver.Version
	}
	keyOf := func(r Record) key {
		if rank := channelRank(r.Name); rank >= 0 {
			return key{group: 0, rank: rank}
		}
		if v, err := parseVersion(r.Name); err == nil {
			return key{group: 1, version: v}
		}
		return key{group: 2}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := keyOf(sorted[i]), keyOf(sorted[j])
		if ki.group != kj.group {
			return ki.group < kj.group
		}
		switch ki.group {
		case 0:
			return ki.rank < kj.rank
		case 1:
			return ki.version.GreaterThan(kj.version)
		default:
			return sorted[i].Name < sorted[j].Name
		}
	})
	return sorted
}

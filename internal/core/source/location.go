package source

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
)

// Kind tells how a repository location is reached.
type Kind int

const (
	KindLocalPath Kind = iota
	KindRemoteURL
	KindSCP // git@host:path shorthand
)

func (k Kind) String() string {
	switch k {
	case KindRemoteURL:
		return "remote-url"
	case KindSCP:
		return "scp"
	default:
		return "local-path"
	}
}

// remotePrefixes route a location to the remote branch.
var remotePrefixes = []string{"http://", "https://", "git@"}

// scpPattern matches the ssh shorthand accepted by git, e.g. git@github.com:owner/repo.git.
var scpPattern = regexp.MustCompile(`^git@([^/:@\s]+):(\S+)$`)

// ErrNotExist is wrapped by CheckExists when a local path is missing.
var ErrNotExist = errors.New("repository path does not exist")

// RepoLocation holds the details extracted from a repository location string.
type RepoLocation struct {
	Raw  string
	Kind Kind
	Host string // empty for local paths
	Path string // path on the host, or the filesystem path
}

// IsRemote reports whether s must be validated as a remote location rather than a local path.
func IsRemote(s string) bool {
	for _, p := range remotePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ParseRepoLocation classifies s. Remote locations are checked syntactically only,
// nothing is resolved over the network. Local paths are not touched here; see Exists.
func ParseRepoLocation(s string) (*RepoLocation, error) {
	if !IsRemote(s) {
		return &RepoLocation{Raw: s, Kind: KindLocalPath, Path: s}, nil
	}

	if m := scpPattern.FindStringSubmatch(s); m != nil {
		return &RepoLocation{Raw: s, Kind: KindSCP, Host: m[1], Path: m[2]}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse repository URL '%s': %w", s, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("repository URL '%s' has no scheme", s)
	}
	// The network location is the whole authority, so userinfo alone counts.
	if u.Host == "" && u.User == nil {
		return nil, fmt.Errorf("repository URL '%s' has no host", s)
	}

	return &RepoLocation{Raw: s, Kind: KindRemoteURL, Host: u.Host, Path: u.Path}, nil
}

// Exists reports whether a local path location names an existing file or directory.
// Remote locations always report true.
func (l *RepoLocation) Exists() bool {
	if l.Kind != KindLocalPath {
		return true
	}
	_, err := os.Stat(l.Path)
	return err == nil
}

// CheckExists is Exists with an error carrying the path.
func (l *RepoLocation) CheckExists() error {
	if l.Exists() {
		return nil
	}
	return fmt.Errorf("'%s': %w", l.Path, ErrNotExist)
}

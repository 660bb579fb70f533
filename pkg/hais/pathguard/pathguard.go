// Package pathguard maps request targets onto the served directory tree.
//
// A target is percent-decoded, joined onto the root and checked for
// containment before the filesystem is consulted. Two containment policies
// exist:
//
//   - PolicyStrict canonicalizes the decoded target so that no ".." segment
//     survives, and rejects any joined path that is not inside the root.
//   - PolicyLegacy keeps the historical behavior: ".." is left in place and
//     containment is only a string-prefix comparison with the root minus its
//     final byte. Targets such as "/../etc/passwd" pass this check.
package pathguard

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/watt-toolkit/hais/pkg/hais/fsys"
	"github.com/watt-toolkit/hais/pkg/hais/urlcodec"
)

// Kind classifies a resolved path.
type Kind uint8

const (
	Missing Kind = iota
	Directory
	File
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	}
	return "missing"
}

// Policy selects the containment check.
type Policy uint8

const (
	PolicyStrict Policy = iota
	PolicyLegacy
)

func (p Policy) String() string {
	if p == PolicyLegacy {
		return "legacy"
	}
	return "strict"
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	// Path is the decoded host path the target maps to.
	Path string

	// Contained reports whether Path passed the containment check.
	// Uncontained paths are never probed and are always Missing.
	Contained bool

	Kind Kind
}

// Resolver resolves targets against Root.
type Resolver struct {
	Root   string
	FS     fsys.FileSystem
	Policy Policy
}

// New returns a Resolver for root. A nil fs means the host filesystem.
func New(root string, fs fsys.FileSystem, policy Policy) *Resolver {
	if fs == nil {
		fs = fsys.OS{}
	}
	return &Resolver{Root: root, FS: fs, Policy: policy}
}

// Resolve decodes the raw target, builds its host path, checks containment
// and classifies what is there.
func (r *Resolver) Resolve(target string) Resolved {
	decoded := urlcodec.Decode(target)

	var res Resolved
	if r.Policy == PolicyLegacy {
		res.Path = Combine(r.Root, filepath.FromSlash(decoded))
		res.Contained = legacyContained(res.Path, r.Root)
	} else {
		res.Path, res.Contained = r.strict(decoded)
	}

	if res.Contained {
		res.Kind = r.classify(res.Path)
	}
	return res
}

func (r *Resolver) strict(decoded string) (string, bool) {
	if strings.IndexByte(decoded, 0) >= 0 {
		return "", false
	}
	clean := path.Clean("/" + strings.ReplaceAll(decoded, "\\", "/"))
	p := filepath.Join(r.Root, filepath.FromSlash(clean))
	return p, Within(r.Root, p)
}

func (r *Resolver) classify(p string) Kind {
	info, err := r.FS.Stat(p)
	if err != nil {
		return Missing
	}
	switch {
	case info.IsDir():
		return Directory
	case info.Mode().IsRegular():
		return File
	}
	return Missing
}

// Within reports whether p lies in root's subtree (root itself included).
func Within(root, p string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(p))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Combine concatenates lp and rp, inserting a separator only when neither
// side provides one.
func Combine(lp, rp string) string {
	const sep = os.PathSeparator
	if lp == "" {
		return rp
	}
	if lp[len(lp)-1] != sep && (rp == "" || rp[0] != sep) {
		return lp + string(sep) + rp
	}
	return lp + rp
}

// legacyContained compares p with root minus its last byte. Nothing is
// stripped from p first.
func legacyContained(p, root string) bool {
	if root == "" {
		return false
	}
	return strings.HasPrefix(p, root[:len(root)-1])
}

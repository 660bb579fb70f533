package autoindex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/watt-toolkit/hais/pkg/hais/fsys"
)

func TestListingKeepsEnumerationOrderDirsFirst(t *testing.T) {
	mem := fsys.NewMem("/srv").
		AddDir("/srv/b").
		AddFile("/srv/y.txt", []byte("yy"), time.Time{}).
		AddDir("/srv/a").
		AddFile("/srv/x.txt", []byte("x"), time.Time{})

	g := New(mem, "utf-8")
	entries, err := g.Listing("/srv", "/")
	if err != nil {
		t.Fatalf("Listing failed: %v", err)
	}

	want := []Entry{
		{Name: "b/", IsDir: true, Href: "/b/"},
		{Name: "a/", IsDir: true, Href: "/a/"},
		{Name: "y.txt", Size: 2, Href: "/y.txt"},
		{Name: "x.txt", Size: 1, Href: "/x.txt"},
	}
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}

	page := string(g.Render("/", entries))
	order := []string{`>b/<`, `>a/<`, `>y.txt<`, `>x.txt<`}
	last := -1
	for _, s := range order {
		i := strings.Index(page, s)
		if i < 0 {
			t.Fatalf("page is missing %s", s)
		}
		if i < last {
			t.Errorf("%s rendered out of order", s)
		}
		last = i
	}
}

func TestRenderExactMarkup(t *testing.T) {
	g := New(nil, "gbk")
	entries := []Entry{
		{Name: "sub/", IsDir: true, Href: "/docs/sub/"},
		{Name: "a.txt", Size: 12, Href: "/docs/a.txt"},
	}

	got := string(g.Render("/docs/", entries))
	want := ` <!DOCTYPE html><html><head><title>Index of /docs/</title><meta charset="gbk"/></head>` +
		`<body><h1>Index of /docs/</h1><hr>` +
		`<a href="/docs/sub/">sub/</a><br/><hr>` +
		`<table><tr><th>File Name</th><th>Size</th></tr>` +
		`<tr><td><a href="/docs/a.txt">a.txt</a></td><td align="right">12</td></tr>` +
		`</table></body></html>`
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderEmptyDirectory(t *testing.T) {
	got := string(New(nil, "utf-8").Render("/empty/", nil))
	if strings.Contains(got, "<th>") {
		t.Error("header row rendered without files")
	}
	if strings.Count(got, "<hr>") != 1 {
		t.Errorf("want a single <hr> without directories, got %q", got)
	}
	if !strings.HasSuffix(got, "<table></table></body></html>") {
		t.Errorf("unexpected tail: %q", got)
	}
}

func TestRenderOnlyDirectories(t *testing.T) {
	got := string(New(nil, "utf-8").Render("/", []Entry{{Name: "d/", IsDir: true, Href: "/d/"}}))
	if strings.Contains(got, "<th>") {
		t.Error("header row rendered without files")
	}
	if strings.Count(got, "<hr>") != 2 {
		t.Errorf("want two <hr> with directories, got %q", got)
	}
}

func TestListingEncodesHrefsAndEscapesNames(t *testing.T) {
	mem := fsys.NewMem("/srv").
		AddDir("/srv/my docs").
		AddDir("/srv/my docs/in").
		AddFile("/srv/my docs/<b>&.txt", []byte("1"), time.Time{})

	g := New(mem, "utf-8")
	page, err := g.Page("/srv/my docs", "/my docs")
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	s := string(page)

	for _, want := range []string{
		`<a href="/my%20docs/in/">in/</a>`,
		`<a href="/my%20docs/%3Cb%3E%26.txt">&lt;b&gt;&amp;.txt</a>`,
		`<title>Index of /my docs</title>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("page is missing %q\n%s", want, s)
		}
	}
}

func TestListingMissingDirectory(t *testing.T) {
	g := New(fsys.NewMem("/srv"), "utf-8")
	if _, err := g.Listing("/srv/nope", "/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

type brokenEntry struct{ name string }

func (b brokenEntry) Name() string               { return b.name }
func (b brokenEntry) IsDir() bool                { return false }
func (b brokenEntry) Type() fs.FileMode          { return 0 }
func (b brokenEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrPermission }

type brokenFS struct{ fsys.FileSystem }

func (brokenFS) ReadDir(string) ([]fs.DirEntry, error) {
	return []fs.DirEntry{brokenEntry{"gone"}}, nil
}

func TestListingSkipsUnreadableEntries(t *testing.T) {
	var logged []string
	g := New(brokenFS{}, "utf-8")
	g.Logf = func(format string, args ...interface{}) { logged = append(logged, format) }

	entries, err := g.Listing("/srv", "/")
	if err != nil {
		t.Fatalf("Listing failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
	if len(logged) != 1 {
		t.Errorf("logged %d lines, want 1", len(logged))
	}
}

func TestListingOnDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "f.bin"), make([]byte, 42), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := New(nil, "utf-8").Listing(dir, "/")
	if err != nil {
		t.Fatalf("Listing failed: %v", err)
	}
	if len(entries) != 2 || !entries[0].IsDir || entries[1].Size != 42 {
		t.Errorf("entries = %+v", entries)
	}
}

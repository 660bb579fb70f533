// Package autoindex renders HTML listings of a directory's immediate
// children.
//
// Entries keep the order the filesystem enumerates them in. Directories and
// files are collected separately and rendered directories first; nothing is
// sorted.
package autoindex

import (
	"log"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/watt-toolkit/hais/pkg/hais/fsys"
	"github.com/watt-toolkit/hais/pkg/hais/urlcodec"
)

// Entry is one row of a listing.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64

	// Href is the percent-encoded URL path of the entry. Directory hrefs
	// end with '/'.
	Href string
}

// Generator builds listings from FS.
type Generator struct {
	FS fsys.FileSystem

	// Codec encodes hrefs. It must let '/' through.
	Codec *urlcodec.Table

	// Charset is written into the page's meta tag.
	Charset string

	// Logf reports entries that had to be skipped. Defaults to log.Printf.
	Logf func(format string, args ...interface{})
}

// New returns a Generator whose codec keeps the path separator.
func New(fs fsys.FileSystem, charset string) *Generator {
	if fs == nil {
		fs = fsys.OS{}
	}
	return &Generator{
		FS:      fs,
		Codec:   urlcodec.NewTable().Allow('/'),
		Charset: charset,
	}
}

// Listing enumerates dir, whose URL path is urlPath. Directories come first,
// then files, each group in enumeration order. Entries whose metadata cannot
// be read are skipped.
func (g *Generator) Listing(dir, urlPath string) ([]Entry, error) {
	children, err := g.FS.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	base := urlPath
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	var dirs, files []Entry
	for _, c := range children {
		name := c.Name()
		if name == "." || name == ".." {
			continue
		}
		info, err := c.Info()
		if err != nil {
			g.logf("autoindex: can't stat %s: %v", filepath.Join(dir, name), err)
			continue
		}

		if info.IsDir() {
			dirs = append(dirs, Entry{
				Name:  name + "/",
				IsDir: true,
				Href:  g.Codec.Encode(path.Join(base, name) + "/"),
			})
			continue
		}
		files = append(files, Entry{
			Name: name,
			Size: info.Size(),
			Href: g.Codec.Encode(path.Join(base, name)),
		})
	}
	return append(dirs, files...), nil
}

// Page lists dir and renders it.
func (g *Generator) Page(dir, urlPath string) ([]byte, error) {
	entries, err := g.Listing(dir, urlPath)
	if err != nil {
		return nil, err
	}
	return g.Render(urlPath, entries), nil
}

// Render serializes a listing. The returned slice is owned by the caller.
func (g *Generator) Render(urlPath string, entries []Entry) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	title := escape(urlPath)
	buf.WriteString(` <!DOCTYPE html><html><head><title>Index of `)
	buf.WriteString(title)
	buf.WriteString(`</title><meta charset="`)
	buf.WriteString(escape(g.Charset))
	buf.WriteString(`"/></head><body><h1>Index of `)
	buf.WriteString(title)
	buf.WriteString(`</h1><hr>`)

	hasDirs, hasFiles := false, false
	for _, e := range entries {
		if !e.IsDir {
			hasFiles = true
			continue
		}
		hasDirs = true
		buf.WriteString(`<a href="`)
		buf.WriteString(e.Href)
		buf.WriteString(`">`)
		buf.WriteString(escape(e.Name))
		buf.WriteString(`</a><br/>`)
	}
	if hasDirs {
		buf.WriteString(`<hr>`)
	}

	buf.WriteString(`<table>`)
	if hasFiles {
		buf.WriteString(`<tr><th>File Name</th><th>Size</th></tr>`)
	}
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		buf.WriteString(`<tr><td><a href="`)
		buf.WriteString(e.Href)
		buf.WriteString(`">`)
		buf.WriteString(escape(e.Name))
		buf.WriteString(`</a></td><td align="right">`)
		buf.WriteString(strconv.FormatInt(e.Size, 10))
		buf.WriteString(`</td></tr>`)
	}
	buf.WriteString(`</table></body></html>`)

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out
}

func (g *Generator) logf(format string, args ...interface{}) {
	if g.Logf != nil {
		g.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func escape(s string) string { return htmlEscaper.Replace(s) }

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;")

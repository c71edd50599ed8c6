// Package fontscan recovers candidate characters from font files by probing
// each font's glyph coverage across the basic CJK block.
package fontscan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/hanworks/hanset/pkg/charset"
)

// fontExts are the file extensions scanned under the font directory.
var fontExts = map[string]bool{
	".ttf": true,
	".otf": true,
}

// Coverage returns the basic-CJK code points f has glyphs for. Code points
// outside the block are never probed.
func Coverage(f *sfnt.Font) charset.Set {
	out := make(charset.Set)
	var buf sfnt.Buffer
	for r := rune(0x4E00); r <= 0x9FFF; r++ {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			continue
		}
		out[r] = struct{}{}
	}
	return out
}

// File parses a single font file and returns its CJK coverage.
func File(path string) (charset.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return Coverage(f), nil
}

// Scan walks dir recursively and unions the CJK coverage of every .ttf and
// .otf file found. A font that cannot be opened or parsed is reported through
// warn and skipped; the remaining fonts still contribute. An empty dir means
// no font source; an unreadable dir is itself a per-item failure, not fatal.
// warn may be nil.
func Scan(dir string, warn func(format string, args ...any)) charset.Set {
	out := make(charset.Set)
	if dir == "" {
		return out
	}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if warn != nil {
				warn("skipping font path %s: %v", path, err)
			}
			return nil
		}
		if d.IsDir() || !fontExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		cov, err := File(path)
		if err != nil {
			if warn != nil {
				warn("skipping font %s: %v", path, err)
			}
			return nil
		}
		out = charset.UnionAll(out, cov)
		return nil
	})
	if err != nil && warn != nil {
		warn("font scan aborted under %s: %v", dir, err)
	}
	return out
}

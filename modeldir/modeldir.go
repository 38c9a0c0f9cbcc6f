// Package modeldir loads a directory of trigram model files.
//
// Each regular file in the directory holds the model of one language in the
// format read by package trigramfile; the file name is the language code.
// Names are lower-cased, so "pt_BR" and "pt_br" denote the same model.
package modeldir

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/npillmayer/langguess"
	"github.com/npillmayer/langguess/trigramfile"
)

// Load reads every model file in directory dir of fsys and returns the
// frozen model set.
//
// Example usage:
//
//	models, err := modeldir.Load(os.DirFS("/usr/share/langguess"), "trigrams")
//	...
//	guesser := langguess.New(models)
//
// Sub-directories and hidden files are skipped. fsys may as well be an
// embed.FS.
func Load(fsys fs.FS, dir string) (*langguess.ModelSet, error) {
	models := langguess.NewModelSet()
	if err := LoadInto(models, fsys, dir); err != nil {
		return nil, err
	}
	models.Freeze()
	return models, nil
}

// LoadInto reads every model file in directory dir of fsys into models.
func LoadInto(models *langguess.ModelSet, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("reading model directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if err = loadFile(models, fsys, path.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(models *langguess.ModelSet, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	code := langguess.Code(strings.ToLower(path.Base(name)))
	if err = trigramfile.LoadModel(models, code, f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Package jsondb implements a simple database of JSON documents, keyed by
// name, stored in a directory. Reads and writes are atomic at the level of
// a whole document.
package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
)

type JSONDatabase struct {
	dir  string
	perm os.FileMode
}

// New creates a new JSONDatabase backed by `dir`. Documents are written
// with permissions `perm`.
func New(dir string, perm os.FileMode) *JSONDatabase {
	return &JSONDatabase{dir, perm}
}

// Read reads the document named `name` into `document`, returning whether
// it exists. If `document` is nil, only the existence check is performed.
func (db *JSONDatabase) Read(name string, document interface{}) (bool, error) {
	f, err := os.Open(path.Join(db.dir, name+".json"))
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	defer f.Close()

	if document != nil {
		err = json.NewDecoder(f).Decode(document)
		if err != nil {
			return false, fmt.Errorf("error parsing %s.json: %v", name, err)
		}
	}

	return true, nil
}

// Write writes `document` to the database, overwriting a possibly existing
// document with the same name. The write is atomic: concurrent readers
// see either the old or the new document, never a partial one.
func (db *JSONDatabase) Write(name string, document interface{}) error {
	return writeFileAtomically(db.dir, name+".json", db.perm, func(f *os.File) error {
		return json.NewEncoder(f).Encode(document)
	})
}

func writeFileAtomically(dir, filename string, perm os.FileMode, writer func(*os.File) error) error {
	tmpfile, err := os.CreateTemp(dir, filename+"-*.tmp")
	if err != nil {
		return err
	}

	// remove the temporary file on any failure path
	abort := func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
	}

	if err := writer(tmpfile); err != nil {
		abort()
		return err
	}

	if err := tmpfile.Chmod(perm); err != nil {
		abort()
		return err
	}

	if err := tmpfile.Close(); err != nil {
		abort()
		return err
	}

	if err := os.Rename(tmpfile.Name(), path.Join(dir, filename)); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}

	return nil
}

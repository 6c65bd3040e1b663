package loader

import (
	"compress/gzip"
	"goQuickLookCSV/pkg/utils"
	"io"
	"os"

	"github.com/pkg/errors"
)

type reader struct {
	fd       *os.File
	zr       *gzip.Reader
	reader   io.Reader
	mode     string
	filename string
}

// newReader opens filename, or standard input when filename is empty.
func newReader(filename string) (*reader, error) {
	var fd *os.File
	var err error
	if filename == "" {
		fd = os.Stdin
	} else {
		if !utils.PathExist(filename) {
			return nil, errors.Errorf("%s: %s", cErrPathNotExists, filename)
		}
		fd, err = os.OpenFile(filename, os.O_RDONLY, 0644)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	lr := new(reader)
	lr.fd = fd
	lr.filename = filename
	if utils.IsGzipPath(filename) {
		lr.mode = cModeGZip
	} else {
		lr.mode = cModePlain
	}

	if lr.mode == cModeGZip {
		zr, err := gzip.NewReader(fd)
		if err != nil {
			lr.close()
			return nil, errors.WithStack(err)
		}
		lr.zr = zr
		lr.reader = zr
	} else {
		lr.reader = fd
	}
	return lr, nil
}

func (lr *reader) readAll() ([]byte, error) {
	data, err := io.ReadAll(lr.reader)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", lr.name())
	}
	return data, nil
}

func (lr *reader) name() string {
	if lr.filename == "" {
		return "stdin"
	}
	return lr.filename
}

func (lr *reader) close() {
	if lr.zr != nil {
		lr.zr.Close()
		lr.zr = nil
	}
	if lr.fd != nil && lr.fd != os.Stdin {
		lr.fd.Close()
	}
	lr.fd = nil
}

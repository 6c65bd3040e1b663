package loader

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads filename (standard input when empty, gunzipped for .gz/.gzip)
// and decodes it to a UTF-8 string.
func Load(filename, encoding string) (string, error) {
	r, err := newReader(filename)
	if err != nil {
		return "", err
	}
	defer r.close()

	data, err := r.readAll()
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"file":  r.name(),
		"mode":  r.mode,
		"bytes": len(data),
	}).Debug("Loaded file")
	return LoadBytes(data, encoding)
}

// LoadBytes decodes data from the named encoding. The empty name means
// UTF-8; a UTF-8 or UTF-16 byte order mark overrides it.
func LoadBytes(data []byte, encoding string) (string, error) {
	t, err := decoder(encoding)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", errors.Wrapf(err, "decode %s", encoding)
	}
	return string(out), nil
}

func decoder(encoding string) (transform.Transformer, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8", "utf-8-sig":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "utf-16", "utf16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "macintosh", "macroman", "mac-roman":
		return charmap.Macintosh.NewDecoder(), nil
	}
	return nil, errors.Errorf("unsupported encoding %s", encoding)
}

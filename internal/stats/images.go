package stats

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StdinArg names standard input in an image list
const StdinArg = "-"

// Image is one screenshot sent for extraction
type Image struct {
	Name string
	MIME string
	Data []byte
}

// LoadImage reads an image file. The MIME type comes from the extension and
// falls back to content sniffing.
func LoadImage(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	return Image{Name: filepath.Base(path), MIME: detectMIME(path, data), Data: data}, nil
}

func detectMIME(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); strings.HasPrefix(t, "image/") {
		return t
	}
	return http.DetectContentType(data)
}

// Collect loads the images named in args. The StdinArg entry is copied from
// stdin to a temporary file first; the returned cleanup removes every staged
// file and is safe to call whatever the error.
func Collect(args []string, stdin io.Reader) ([]Image, func(), error) {
	var staged []string
	cleanup := func() {
		for _, p := range staged {
			_ = os.Remove(p)
		}
	}

	images := make([]Image, 0, len(args))
	usedStdin := false
	for _, arg := range args {
		path := arg
		if arg == StdinArg {
			if usedStdin {
				return nil, cleanup, errors.New("standard input can be used only once")
			}
			usedStdin = true
			p, err := stage(stdin)
			if err != nil {
				return nil, cleanup, err
			}
			staged = append(staged, p)
			path = p
		}
		img, err := LoadImage(path)
		if err != nil {
			return nil, cleanup, err
		}
		if arg == StdinArg {
			img.Name = "stdin"
		}
		images = append(images, img)
	}
	return images, cleanup, nil
}

func stage(r io.Reader) (string, error) {
	f, err := os.CreateTemp("", "gemwiki-image-*")
	if err != nil {
		return "", fmt.Errorf("stage image: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("stage image: %w", err)
	}
	return f.Name(), nil
}

package knowledge

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxBaseFileSize = 4 * 1024 * 1024 // 4MB

//go:embed data/*.yaml
var embedded embed.FS

var (
	defaultOnce sync.Once
	defaultBase *Base
	defaultErr  error
)

// Default returns the knowledge base embedded in the binary. It is parsed
// and validated once; later calls share the same immutable instance.
func Default() (*Base, error) {
	defaultOnce.Do(func() {
		defaultBase, defaultErr = loadEmbedded()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultBase, nil
}

func loadEmbedded() (*Base, error) {
	k := koanf.New(".")

	names, err := fs.Glob(embedded, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate embedded base: %w", err)
	}
	for _, name := range names {
		content, err := embedded.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", name, err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse embedded %s: %w", name, err)
		}
	}

	return finish(k)
}

// LoadFile loads a substitute knowledge base from a single YAML file that
// carries the same top-level sections as the embedded data files combined.
// The file is validated exactly like the embedded base.
func LoadFile(path string) (*Base, error) {
	// Open once and stat through the descriptor to avoid a TOCTOU race.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge base file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat knowledge base file: %w", err)
	}
	if info.Size() > maxBaseFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrBaseFileTooLarge, path, info.Size())
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base file %s: %w", path, err)
	}

	return finish(k)
}

func finish(k *koanf.Koanf) (*Base, error) {
	var b Base
	if err := k.Unmarshal("", &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal knowledge base: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("knowledge base validation failed: %w", err)
	}
	return &b, nil
}

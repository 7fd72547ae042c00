package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/webedit"
)

var (
	// ErrDuplicateID is returned when two elements share an id.
	ErrDuplicateID = errors.New("duplicate element id")
	// ErrInvalidSize is returned for negative widths or heights.
	ErrInvalidSize = errors.New("invalid element size")
)

// Defaults used when a scene file omits the viewport size: an 80x24
// terminal at the default cell size.
const (
	DefaultWidth  = 80 * DefaultCellWidth
	DefaultHeight = 24 * DefaultCellHeight
)

// File is the YAML scene format. Sizes and positions are in px.
type File struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	CellWidth  int           `yaml:"cell_width"`
	CellHeight int           `yaml:"cell_height"`
	Elements   []ElementSpec `yaml:"elements"`
}

// ElementSpec describes one element and its children.
type ElementSpec struct {
	ID         string        `yaml:"id"`
	Label      string        `yaml:"label"`
	Left       int           `yaml:"left"`
	Top        int           `yaml:"top"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Border     *bool         `yaml:"border"`
	Editable   bool          `yaml:"editable"`
	Scrollable bool          `yaml:"scrollable"`
	Children   []ElementSpec `yaml:"children"`
}

// LoadFile reads a scene from a YAML file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Load decodes a YAML scene. Elements without an id get a generated one.
func Load(r io.Reader) (*Scene, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return Build(file)
}

// Build creates a scene from a decoded file.
func Build(file File) (*Scene, error) {
	width, height := file.Width, file.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	s := New(width, height)
	s.SetCellSize(file.CellWidth, file.CellHeight)
	for _, spec := range file.Elements {
		if err := s.build(s.root, spec); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scene) build(parent *Element, spec ElementSpec) error {
	id := spec.ID
	if id == "" {
		id = generateID()
	}
	if _, ok := s.byID[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	if spec.Width < 0 || spec.Height < 0 {
		return fmt.Errorf("%w: %q is %dx%d", ErrInvalidSize, id, spec.Width, spec.Height)
	}

	label := spec.Label
	if label == "" {
		label = id
	}
	e := s.add(parent, id, label)
	e.box = webedit.Box{Left: spec.Left, Top: spec.Top, Width: spec.Width, Height: spec.Height}
	if spec.Border == nil || *spec.Border {
		e.border = 1
	}
	e.scrollable = spec.Scrollable
	if spec.Editable {
		e.classes[webedit.ClassTarget] = true
	}

	for _, child := range spec.Children {
		if err := s.build(e, child); err != nil {
			return err
		}
	}
	return nil
}

func generateID() string {
	return "el-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
}

package descriptor

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shadergrid/internal/shaders"
)

// Load reads a scene file and resolves its shader references. Shader file
// paths are relative to the scene file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read scene file: %w", err)
	}
	t, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return Table{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a scene document and resolves shaders against baseDir.
func Parse(data []byte, baseDir string) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("parse: %w", err)
	}
	if len(t.Meshes) == 0 {
		return Table{}, fmt.Errorf("%w: no meshes", ErrInvalidDescriptor)
	}
	if err := t.Resolve(baseDir); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Resolve fills Shader.Source for every mesh. A built-in name wins over
// file paths only when no paths are given. Relative shader paths become
// absolute, resolved against baseDir.
func (t *Table) Resolve(baseDir string) error {
	for i := range t.Meshes {
		m := &t.Meshes[i]
		src, err := m.Shader.resolve(baseDir)
		if err != nil {
			return fmt.Errorf("mesh %d (%s): %w", i, m.Label(i), err)
		}
		m.Shader.Source = src
		m.Shader.VertexPath = rebase(baseDir, m.Shader.VertexPath)
		m.Shader.FragmentPath = rebase(baseDir, m.Shader.FragmentPath)
	}
	return nil
}

func rebase(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if abs, err := filepath.Abs(filepath.Join(baseDir, p)); err == nil {
		return abs
	}
	return filepath.Join(baseDir, p)
}

// relativeTo rewrites absolute shader paths relative to dir where possible.
func relativeTo(dir string, t Table) Table {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return t
	}
	rel := func(p string) string {
		if p == "" {
			return p
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return p
		}
		if r, err := filepath.Rel(absDir, abs); err == nil {
			return filepath.ToSlash(r)
		}
		return abs
	}

	out := Table{Meshes: make([]Mesh, len(t.Meshes))}
	for i, m := range t.Meshes {
		m.Shader.VertexPath = rel(m.Shader.VertexPath)
		m.Shader.FragmentPath = rel(m.Shader.FragmentPath)
		out.Meshes[i] = m
	}
	return out
}

func (s Shader) resolve(baseDir string) (shaders.Pair, error) {
	if s.VertexPath == "" && s.FragmentPath == "" {
		if s.Name == "" {
			if s.Source.Vertex != "" && s.Source.Fragment != "" {
				return s.Source, nil
			}
			return shaders.Pair{}, fmt.Errorf("%w: no shader given", ErrInvalidDescriptor)
		}
		return shaders.Lookup(s.Name)
	}
	if s.VertexPath == "" || s.FragmentPath == "" {
		return shaders.Pair{}, fmt.Errorf("%w: vertex and fragment paths must be given together", ErrInvalidDescriptor)
	}

	read := func(p string) (string, error) {
		b, err := os.ReadFile(rebase(baseDir, p))
		if err != nil {
			return "", fmt.Errorf("read shader: %w", err)
		}
		return string(b), nil
	}

	var pair shaders.Pair
	var err error
	if pair.Vertex, err = read(s.VertexPath); err != nil {
		return shaders.Pair{}, err
	}
	if pair.Fragment, err = read(s.FragmentPath); err != nil {
		return shaders.Pair{}, err
	}
	return pair, nil
}

// Save writes the table as a scene file. Shader sources are referenced,
// never inlined, by paths relative to the written file.
func Save(path string, t Table) error {
	data, err := Marshal(relativeTo(filepath.Dir(path), t))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create scene directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene file: %w", err)
	}
	return nil
}

// Marshal encodes the table in scene-file form.
func Marshal(t Table) ([]byte, error) {
	data, err := yaml.Marshal(&t)
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	header := []byte("# shadergrid scene\n")
	return append(header, data...), nil
}

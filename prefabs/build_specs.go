package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type CarComponentSpec struct {
	Slot int    `yaml:"slot"`
	Name string `yaml:"name"`
}

type AnchorComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

// SpriteComponentSpec describes a generated car body: a filled rectangle with
// a nose strip on the +X edge marking the heading.
type SpriteComponentSpec struct {
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"`
	Color     YAMLColor `yaml:"color"`
	NoseColor YAMLColor `yaml:"nose_color"`
	NoseWidth int       `yaml:"nose_width"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

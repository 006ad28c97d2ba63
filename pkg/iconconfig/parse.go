package iconconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/logging"
	"github.com/arthur-debert/iconshift/pkg/types"
)

// Parse turns a serialized icon configuration document into a
// Configuration. The top level may contain a default_icon scalar and an
// icons mapping. Each icon entry is either short form (a bare string
// image path) or long form (a mapping with path and optional sizes,
// label, description). The shape is decided here, once.
func Parse(data []byte) (*Configuration, error) {
	logger := logging.GetLogger("iconconfig")

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse icon configuration")
	}

	cfg := &Configuration{icons: make(map[string]Definition)}

	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty document: zero icons, no default. Valid.
		return cfg, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrConfigInvalidShape, "top level must be a mapping")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		switch key.Value {
		case "default_icon":
			if value.Kind != yaml.ScalarNode {
				return nil, errors.New(errors.ErrConfigInvalidShape, "default_icon must be a string")
			}
			cfg.defaultIcon = value.Value
		case "icons":
			if value.Kind != yaml.MappingNode {
				return nil, errors.New(errors.ErrConfigInvalidShape, "icons must be a mapping")
			}
			if err := parseIcons(value, cfg); err != nil {
				return nil, err
			}
		default:
			// Unknown top-level keys are ignored so the document can
			// carry tool-specific extensions.
			logger.Debug().Str("key", key.Value).Msg("ignoring unknown top-level key")
		}
	}

	logger.Debug().
		Int("icons", len(cfg.icons)).
		Str("default", cfg.defaultIcon).
		Msg("parsed icon configuration")
	return cfg, nil
}

// parseIcons walks the icons mapping node, dispatching each entry on its
// node kind. Redefined keys follow yaml semantics; no special casing.
func parseIcons(node *yaml.Node, cfg *Configuration) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		def, err := parseEntry(key.Value, value)
		if err != nil {
			return err
		}
		cfg.icons[key.Value] = def
	}
	return nil
}

// longForm mirrors the long-form document shape
type longForm struct {
	Path        string            `yaml:"path"`
	Sizes       map[string]string `yaml:"sizes"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description"`
}

func parseEntry(identifier string, node *yaml.Node) (Definition, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return Definition{}, errors.Newf(errors.ErrConfigInvalidShape,
				"icon %q must be a string path or a mapping, got %s", identifier, node.Tag).
				WithDetail("identifier", identifier)
		}
		return Definition{
			Identifier: identifier,
			ImagePath:  node.Value,
			Form:       FormShort,
		}, nil

	case yaml.MappingNode:
		var long longForm
		if err := node.Decode(&long); err != nil {
			return Definition{}, errors.Wrapf(err, errors.ErrConfigInvalidShape,
				"icon %q has an unexpected shape", identifier).
				WithDetail("identifier", identifier)
		}
		if long.Path == "" {
			return Definition{}, errors.Newf(errors.ErrConfigMissingField,
				"icon %q is missing required field path", identifier).
				WithDetail("identifier", identifier).
				WithDetail("field", "path")
		}
		def := Definition{
			Identifier:  identifier,
			ImagePath:   long.Path,
			Label:       long.Label,
			Description: long.Description,
			Form:        FormLong,
		}
		if len(long.Sizes) > 0 {
			def.SizeOverrides = make(map[Density]string, len(long.Sizes))
			for tag, path := range long.Sizes {
				if !IsDensity(tag) {
					return Definition{}, errors.Newf(errors.ErrConfigInvalidShape,
						"icon %q uses unknown density tag %q", identifier, tag).
						WithDetail("identifier", identifier).
						WithDetail("density", tag)
				}
				def.SizeOverrides[Density(tag)] = path
			}
		}
		return def, nil

	default:
		return Definition{}, errors.Newf(errors.ErrConfigInvalidShape,
			"icon %q must be a string path or a mapping", identifier).
			WithDetail("identifier", identifier)
	}
}

// Load resolves path to document text via fs, then delegates to Parse.
// A path that cannot be read reports CONFIG_SOURCE_NOT_FOUND.
func Load(fs types.FS, path string) (*Configuration, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigSourceNotFound,
				"icon configuration not found at %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigSourceNotFound,
			"cannot read icon configuration at %s", path)
	}
	return Parse(data)
}

package pipeline

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/onionring/pkg/errors"
)

// OptionsFromTOML reads run options from TOML. Unset keys keep their
// zero value so ValidateAndSetDefaults fills them in later; unknown
// keys are rejected to catch typos in config files.
//
//	threshold = 0.05
//	rel_percent = true
//	basecolormap = "tab20"
//	formats = ["svg", "png"]
func OptionsFromTOML(r io.Reader) (Options, error) {
	var opts Options
	meta, err := toml.NewDecoder(r).Decode(&opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse options")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown option: %s", undecoded[0])
	}
	return opts, nil
}

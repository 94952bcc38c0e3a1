package refdata

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Overrides supplements the compiled-in tables from a YAML file. Entries
// are merged on top of the built-ins, so a file can add newly assigned
// area codes or correct a country name without a rebuild.
type Overrides struct {
	CountryCodes map[string]struct {
		Name   string `yaml:"name"`
		Format string `yaml:"format"`
	} `yaml:"country_codes"`
	AreaCodes map[string]string `yaml:"area_codes"`
}

// Load reads an override file and merges it into the package tables.
// A missing path is not an error; the built-ins stand alone.
func Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrap(err, "refdata: read overrides")
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return eris.Wrap(err, "refdata: parse overrides")
	}

	for code, info := range ov.CountryCodes {
		CountryCodes[code] = CountryInfo{Name: info.Name, Format: info.Format}
	}
	for code, region := range ov.AreaCodes {
		USAreaCodes[code] = region
	}
	return nil
}

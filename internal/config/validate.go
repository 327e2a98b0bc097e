package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Validate ensures category names describe directories inside the organized
// root. Extension syntax is deliberately not checked.
func (c *Config) Validate() error {
	var problems []string
	for name := range c.FileCategories {
		if err := validateCategoryName(name); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrMalformed, strings.Join(problems, "; "))
}

func validateCategoryName(name string) error {
	if name == "" {
		return errors.New("file_categories: empty category name")
	}
	slashed := filepath.ToSlash(name)
	if path.IsAbs(slashed) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return fmt.Errorf("file_categories: %q must be a relative path", name)
	}
	cleaned := path.Clean(slashed)
	if cleaned != slashed || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("file_categories: %q must be a clean path inside the target directory", name)
	}
	return nil
}

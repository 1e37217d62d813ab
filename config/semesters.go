package config

import (
	"fmt"
	"os"

	"exam-results/internal/entities"

	"gopkg.in/yaml.v3"
)

type semestersFile struct {
	Semesters []entities.Semester `yaml:"semesters"`
}

// DefaultSemesters is the built-in semester to spreadsheet mapping.
func DefaultSemesters() []entities.Semester {
	return []entities.Semester{
		{Key: "1", Label: "Semester 1", File: "1stsemrslts.xlsx"},
		{Key: "2", Label: "Semester 2", File: "2ndsemrslts.xlsx"},
		{Key: "3", Label: "Semester 3", File: "3rdsemrslts.xlsx"},
		{Key: "4", Label: "Semester 4", File: "4thsemrslts.xlsx"},
		{Key: "5", Label: "Semester 5", File: "5thsemrslts.xlsx"},
		{Key: "6", Label: "Semester 6", File: "6thsemrslts.xlsx"},
	}
}

// LoadSemesters reads the semester mapping from a YAML file.
func LoadSemesters(path string) ([]entities.Semester, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read semesters file: %w", err)
	}

	var f semestersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse semesters file: %w", err)
	}
	if len(f.Semesters) == 0 {
		return nil, fmt.Errorf("semesters file %s: no semesters defined", path)
	}

	for i := range f.Semesters {
		if f.Semesters[i].Label == "" {
			f.Semesters[i].Label = "Semester " + f.Semesters[i].Key
		}
	}
	return f.Semesters, nil
}

package manifest

// Manifest is the launcher manifest.
type Manifest struct {
	Banner         string      `yaml:"banner" json:"banner"`
	Synopsis       []string    `yaml:"synopsis" json:"synopsis"`
	Parameters     []Parameter `yaml:"parameters" json:"parameters"`
	Planners       []Planner   `yaml:"planners" json:"planners"`
	OptionsHeading string      `yaml:"options_heading" json:"options_heading"`
	Note           string      `yaml:"note" json:"note"`
}

// Parameter documents one positional argument forwarded to a demo.
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	Placeholder string `yaml:"placeholder" json:"placeholder"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
}

// Planner maps a planner id accepted on the command line to its name.
type Planner struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Parameter type constants.
const (
	ParamInt     = "int"
	ParamString  = "string"
	ParamBool    = "bool"
	ParamPlanner = "planner"
)

package swe

// Config describes how to bring the library up. The zero value selects the
// library's default data path and no JPL file.
type Config struct {
	// EphePath is the directory holding the ephemeris data files.
	EphePath string `mapstructure:"ephe_path" yaml:"ephe_path" json:"ephe_path"`

	// JPLFile is a JPL ephemeris file name inside EphePath, e.g. de431.eph.
	JPLFile string `mapstructure:"jpl_file" yaml:"jpl_file" json:"jpl_file"`
}

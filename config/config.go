// Package config holds the settings of a run: where the sources are, how to clean them and
// where the results go.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invertedv/housing"
	"github.com/invertedv/housing/store"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfig is wrapped by every validation failure.
var ErrConfig = errors.New("invalid configuration")

// environment variables read by LoadEnv
const (
	EnvHost     = "HOUSING_DB_HOST"
	EnvUser     = "HOUSING_DB_USER"
	EnvPassword = "HOUSING_DB_PASSWORD"
	EnvName     = "HOUSING_DB_NAME"
)

type Config struct {
	Sources        Sources  `yaml:"sources"`
	Policy         string   `yaml:"policy"`
	Separator      string   `yaml:"separator"`
	ZeroAssessment bool     `yaml:"zero_assessment"`
	Threshold      float64  `yaml:"threshold"`
	Output         Output   `yaml:"output"`
	Database       Database `yaml:"database"`
	LogLevel       string   `yaml:"log_level"`
}

type Sources struct {
	Census     string `yaml:"census"`
	Assessment string `yaml:"assessment"`
	Ward       string `yaml:"ward"`
}

type Output struct {
	Dir      string `yaml:"dir"`
	CSV      string `yaml:"csv"`
	Workbook string `yaml:"workbook"`
	Panel    string `yaml:"panel"`
	Charts   string `yaml:"charts"` // directory of the html figures, under Dir

	FloatFormat string `yaml:"float_format"` // fmt verb for csv floats, "" is exact
}

type Database struct {
	Dialect   string `yaml:"dialect"`
	Host      string `yaml:"host"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	Name      string `yaml:"name"`
	Path      string `yaml:"path"`
	Table     string `yaml:"table"`
	Overwrite bool   `yaml:"overwrite"`
	BufferMB  int    `yaml:"buffer_mb"` // size of each INSERT
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Sources: Sources{
			Census:     "Civic_Census_by_Community_and_Dwelling_Structure_20250829.csv",
			Assessment: "Assessments_by_Community_20250829.csv",
			Ward:       "Communities_by_Ward_20250829.csv",
		},
		Policy:    housing.PolicyStructure.String(),
		Separator: ",",
		Threshold: housing.DefaultThreshold,
		Output: Output{
			Dir:      ".",
			CSV:      "calgary_housing_cleaned.csv",
			Workbook: "calgary_housing_analysis.xlsx",
			Panel:    "calgary_housing_analysis.png",
			Charts:   "charts",
		},
		Database: Database{
			Dialect:  store.Lite,
			Path:     "calgary_housing.db",
			Table:    store.DefaultTable,
			BufferMB: 1,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. Settings missing from the file keep their default.
func Load(path string) (*Config, error) {
	c := Default()

	data, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, e)
	}

	if e = yaml.Unmarshal(data, c); e != nil {
		return nil, fmt.Errorf("parsing config %s: %w: %w", path, ErrConfig, e)
	}

	return c, nil
}

// LoadEnv loads envFile, if it exists, and fills the database credentials from the environment.
// Values already in the environment win over the file.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if e := godotenv.Load(envFile); e != nil && !errors.Is(e, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, e)
		}
	}

	for env, field := range map[string]*string{
		EnvHost:     &c.Database.Host,
		EnvUser:     &c.Database.User,
		EnvPassword: &c.Database.Password,
		EnvName:     &c.Database.Name,
	} {
		if v, ok := os.LookupEnv(env); ok {
			*field = v
		}
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Sources.Census == "" || c.Sources.Assessment == "" || c.Sources.Ward == "" {
		return fmt.Errorf("all three sources are required: %w", ErrConfig)
	}

	if _, e := housing.ParsePolicy(c.Policy); e != nil {
		return fmt.Errorf("%w: %w", ErrConfig, e)
	}

	if _, e := c.Sep(); e != nil {
		return e
	}

	if c.Threshold < 0 {
		return fmt.Errorf("negative threshold: %w", ErrConfig)
	}

	switch c.Database.Dialect {
	case store.Lite:
		if c.Database.Path == "" {
			return fmt.Errorf("sqlite needs a path: %w", ErrConfig)
		}
	case store.CH, store.PG:
		if c.Database.Host == "" {
			return fmt.Errorf("%s needs a host: %w", c.Database.Dialect, ErrConfig)
		}
	default:
		return fmt.Errorf("database dialect %q: %w", c.Database.Dialect, ErrConfig)
	}

	if c.Database.Table == "" {
		return fmt.Errorf("no database table: %w", ErrConfig)
	}

	if c.Database.BufferMB < 0 {
		return fmt.Errorf("negative buffer_mb: %w", ErrConfig)
	}

	if _, e := housing.NewFiles(housing.FileFloatFormat(c.Output.FloatFormat)); e != nil {
		return fmt.Errorf("%w: %w", ErrConfig, e)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrConfig)
	}

	return nil
}

// Sep is the field separator of the sources.
func (c *Config) Sep() (rune, error) {
	r := []rune(c.Separator)
	if len(r) != 1 {
		return 0, fmt.Errorf("separator %q must be one character: %w", c.Separator, ErrConfig)
	}

	return r[0], nil
}

// Options are the pipeline options of c.
func (c *Config) Options() (housing.Options, error) {
	policy, e := housing.ParsePolicy(c.Policy)
	if e != nil {
		return housing.Options{}, fmt.Errorf("%w: %w", ErrConfig, e)
	}

	sep, e := c.Sep()
	if e != nil {
		return housing.Options{}, e
	}

	return housing.Options{Policy: policy, Sep: sep, ZeroAssessment: c.ZeroAssessment}, nil
}

func (c *Config) Pipeline() housing.Sources {
	return housing.Sources{Census: c.Sources.Census, Assessment: c.Sources.Assessment, Ward: c.Sources.Ward}
}

// Conn is the database connection of c.
func (c *Config) Conn() store.Conn {
	return store.Conn{
		Dialect:  c.Database.Dialect,
		Host:     c.Database.Host,
		User:     c.Database.User,
		Password: c.Database.Password,
		Database: c.Database.Name,
		Path:     c.Database.Path,
	}
}

// CSVOptions are the file options of the csv export.
func (c *Config) CSVOptions() []housing.FileOpt {
	return []housing.FileOpt{housing.FileFloatFormat(c.Output.FloatFormat)}
}

// OutputPath is name under the output directory.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.Output.Dir, name)
}

package manifest

// Dependency names contributed by each feature toggle.
const (
	DepSQLAlchemy    = "SQLAlchemy"
	DepRedis         = "redis"
	DepYUICompressor = "yuicompressor"
	DepWebassets     = "webassets"
	DepRoutes        = "Routes"
)

// ProjectConfig is the input record for manifest generation. Fields are
// passed through verbatim; validation, if any, belongs to whatever tool
// consumes the generated manifest.
type ProjectConfig struct {
	Package string `yaml:"package" json:"package"`
	Version string `yaml:"version" json:"version"`
	Author  string `yaml:"author" json:"author"`
	Email   string `yaml:"email" json:"email"`

	UseSQLAlchemy     bool `yaml:"use_sqlalchemy" json:"use_sqlalchemy"`
	UseRedis          bool `yaml:"use_redis" json:"use_redis"`
	UseWebassets      bool `yaml:"use_webassets" json:"use_webassets"`
	UseRESTController bool `yaml:"use_rest_controller" json:"use_rest_controller"`

	// Driver names a pluggable database client dependency (e.g. "psycopg2").
	// Empty means no driver entry is appended.
	Driver string `yaml:"driver,omitempty" json:"driver,omitempty"`
}

// Dependencies derives the ordered dependency list from the toggles.
// Each toggle is tested independently; order is fixed for reproducible
// output, with the driver entry always last. Entries are not deduplicated.
func (c ProjectConfig) Dependencies() []string {
	var deps []string

	if c.UseSQLAlchemy {
		deps = append(deps, DepSQLAlchemy)
	}
	if c.UseRedis {
		deps = append(deps, DepRedis)
	}
	if c.UseWebassets {
		deps = append(deps, DepYUICompressor, DepWebassets)
	}
	if c.UseRESTController {
		deps = append(deps, DepRoutes)
	}
	if c.Driver != "" {
		deps = append(deps, c.Driver)
	}

	return deps
}

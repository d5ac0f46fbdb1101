package template

import "time"

// ScaffoldContext provides data for skeleton rendering during project
// creation. All fields are exported for use with Go's text/template
// package.
type ScaffoldContext struct {
	// Project
	ProjectName string
	Package     string
	Version     string

	// Author
	Author string
	Email  string

	// Subsystem toggles
	UseController     bool
	UseRESTController bool
	UseJinja2         bool
	UseWebassets      bool
	UseRedis          bool
	UseSQLAlchemy     bool

	// Database settings
	Driver        string
	SQLAlchemyURL string

	// Meta
	CurrentYear int
	ToolVersion string
}

// ContextOption configures a ScaffoldContext.
type ContextOption func(*ScaffoldContext)

// NewScaffoldContext creates a ScaffoldContext with sensible defaults,
// then applies any provided options.
func NewScaffoldContext(opts ...ContextOption) *ScaffoldContext {
	ctx := &ScaffoldContext{
		UseController: true,
		UseJinja2:     true,
		UseWebassets:  true,
		UseSQLAlchemy: true,
		SQLAlchemyURL: "sqlite://",
		CurrentYear:   time.Now().Year(),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	// Jinja2 and webassets ride on the templating controllers.
	if !ctx.UseController {
		ctx.UseJinja2 = false
		ctx.UseWebassets = false
	}
	if !ctx.UseSQLAlchemy {
		ctx.Driver = ""
		ctx.SQLAlchemyURL = ""
	}

	return ctx
}

// WithProject sets the project name, package name and version.
func WithProject(name, pkg, version string) ContextOption {
	return func(c *ScaffoldContext) {
		c.ProjectName = name
		c.Package = pkg
		c.Version = version
	}
}

// WithAuthor sets the author name and email.
func WithAuthor(name, email string) ContextOption {
	return func(c *ScaffoldContext) {
		c.Author = name
		c.Email = email
	}
}

// WithControllers sets the controller toggles.
func WithControllers(templating, rest bool) ContextOption {
	return func(c *ScaffoldContext) {
		c.UseController = templating
		c.UseRESTController = rest
	}
}

// WithTemplating sets the jinja2 and webassets toggles.
func WithTemplating(jinja2, webassets bool) ContextOption {
	return func(c *ScaffoldContext) {
		c.UseJinja2 = jinja2
		c.UseWebassets = webassets
	}
}

// WithRedis sets the redis session toggle.
func WithRedis(use bool) ContextOption {
	return func(c *ScaffoldContext) {
		c.UseRedis = use
	}
}

// WithSQLAlchemy sets the ORM toggle, driver and connection URL.
func WithSQLAlchemy(use bool, driver, url string) ContextOption {
	return func(c *ScaffoldContext) {
		c.UseSQLAlchemy = use
		c.Driver = driver
		c.SQLAlchemyURL = url
	}
}

// WithToolVersion sets the generator tool version.
func WithToolVersion(version string) ContextOption {
	return func(c *ScaffoldContext) {
		c.ToolVersion = version
	}
}

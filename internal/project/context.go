package project

// SiteNameKey is the placeholder key templates use for the app name.
const SiteNameKey = "site_name"

// Context holds the answers collected for one run. It is created once and
// passed by value; nothing modifies it afterwards.
type Context struct {
	AppName string
}

// NewContext creates a Context for appName. The name is used as given;
// an empty name is allowed.
func NewContext(appName string) Context {
	return Context{AppName: appName}
}

// Vars returns the placeholder values templates are rendered with.
func (c Context) Vars() map[string]string {
	return map[string]string{SiteNameKey: c.AppName}
}

package selector

// Toggler is the platform capability that enables and disables named
// launcher components within the current application package. Component
// names are package-relative (".MainActivity", ".christmasActivity").
//
// Implementations signal two failure modes distinctly: a component that
// does not exist reports COMPONENT_NOT_FOUND (callers treat it as
// best-effort and move on), while the absence of any execution context
// able to perform the call reports NO_CONTEXT (fatal to the operation).
type Toggler interface {
	// Enable makes the component available and visible to the launcher
	Enable(component string) error
	// Disable hides the component from the launcher
	Disable(component string) error
	// State reports whether the component is currently enabled
	State(component string) (bool, error)
}

package selector

import (
	"sort"
	"sync"

	"github.com/arthur-debert/iconshift/pkg/android"
	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
	"github.com/arthur-debert/iconshift/pkg/logging"
)

// Selector decides which single launcher component is enabled for a
// fixed universe of components: the baseline plus one alias per
// available icon identifier.
//
// The disable-all/enable-one sequence has no platform-level atomicity;
// Select serializes itself with an internal mutex so concurrent callers
// cannot interleave and leave more than one component enabled. The
// identifier lists are immutable after construction and safe to share.
type Selector struct {
	mu          sync.Mutex
	toggler     Toggler
	available   []string
	defaultIcon string
}

// New creates a selector over an explicit set of available alias
// identifiers and a default identifier. An empty default falls back to
// the baseline sentinel.
func New(toggler Toggler, available []string, defaultIcon string) *Selector {
	if defaultIcon == "" {
		defaultIcon = iconconfig.BaselineIdentifier
	}
	ids := make([]string, 0, len(available))
	for _, id := range available {
		if id != iconconfig.BaselineIdentifier {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return &Selector{
		toggler:     toggler,
		available:   ids,
		defaultIcon: defaultIcon,
	}
}

// FromConfiguration creates a selector for a parsed icon configuration
func FromConfiguration(toggler Toggler, cfg *iconconfig.Configuration) *Selector {
	return New(toggler, cfg.Identifiers(), cfg.DefaultIcon())
}

// Select enables exactly the component for the requested identifier and
// disables every other one. Empty and unknown identifiers degrade to
// the default rather than erroring, so a bad runtime argument can never
// leave the app without a launch icon; the only propagated failure is
// the absence of an execution context.
func (s *Selector) Select(requested string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := logging.GetLogger("selector")

	resolved := s.resolve(requested)

	// Disable everything first, best-effort: components missing from the
	// installed manifest are skipped, not fatal.
	components := append([]string{android.BaselineActivity}, s.aliasComponents()...)
	for _, component := range components {
		if err := s.toggler.Disable(component); err != nil {
			if errors.IsCode(err, errors.ErrComponentNotFound) {
				logger.Debug().Str("component", component).Msg("skipping absent component")
				continue
			}
			return false, err
		}
	}

	target := android.BaselineActivity
	if resolved != iconconfig.BaselineIdentifier && s.isAvailable(resolved) {
		target = android.AliasActivity(resolved)
	}
	if err := s.toggler.Enable(target); err != nil {
		return false, err
	}

	logger.Info().Str("icon", resolved).Str("component", target).Msg("icon selected")
	return true, nil
}

// resolve normalizes a requested identifier against the available set,
// substituting the default for empty or unknown requests.
func (s *Selector) resolve(requested string) string {
	resolved := requested
	if resolved == "" {
		resolved = s.defaultIcon
	}
	if resolved != iconconfig.BaselineIdentifier && !s.isAvailable(resolved) {
		logger := logging.GetLogger("selector")
		logger.Warn().
			Str("requested", requested).Str("default", s.defaultIcon).
			Msg("requested icon is not available, falling back to default")
		resolved = s.defaultIcon
	}
	return resolved
}

// Current probes the baseline and each alias in deterministic order and
// reports the identifier of the first component observed enabled. When
// none is observed enabled (a transient state during a selection
// change) it reports the baseline sentinel rather than failing.
func (s *Selector) Current() (string, error) {
	enabled, err := s.probe(android.BaselineActivity)
	if err != nil {
		return "", err
	}
	if enabled {
		return iconconfig.BaselineIdentifier, nil
	}

	for _, id := range s.available {
		enabled, err := s.probe(android.AliasActivity(id))
		if err != nil {
			return "", err
		}
		if enabled {
			return id, nil
		}
	}
	return iconconfig.BaselineIdentifier, nil
}

// DevelopmentReset enables the baseline and every alias unconditionally
// so a misconfigured device/app combination remains launchable. Never
// used in the production selection path.
func (s *Selector) DevelopmentReset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	components := append([]string{android.BaselineActivity}, s.aliasComponents()...)
	for _, component := range components {
		if err := s.toggler.Enable(component); err != nil {
			if errors.IsCode(err, errors.ErrComponentNotFound) {
				continue
			}
			return err
		}
	}
	return nil
}

// Available returns the alias identifiers the selector manages
func (s *Selector) Available() []string {
	out := make([]string, len(s.available))
	copy(out, s.available)
	return out
}

func (s *Selector) probe(component string) (bool, error) {
	enabled, err := s.toggler.State(component)
	if err != nil {
		if errors.IsCode(err, errors.ErrComponentNotFound) {
			return false, nil
		}
		return false, err
	}
	return enabled, nil
}

func (s *Selector) isAvailable(identifier string) bool {
	for _, id := range s.available {
		if id == identifier {
			return true
		}
	}
	return false
}

func (s *Selector) aliasComponents() []string {
	out := make([]string, len(s.available))
	for i, id := range s.available {
		out[i] = android.AliasActivity(id)
	}
	return out
}

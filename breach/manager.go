package breach

import (
	"fmt"
	"sort"
	"sync"
)

// Manager is a thread-safe registry and dispatcher for [Deriver]s.
//
// Register one or more named Derivers, nominate a default, and call
// [Manager.Derive] for day-to-day key derivation.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use.  A [sync.RWMutex]
// serialises writes (RegisterDriver, SetDefaultDriver) while allowing
// concurrent reads.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Deriver
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered before [Manager.Derive] is called.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Deriver),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with all built-in drivers registered
// using opts.  The default driver is [DriverSHA1].
func NewDefaultManager(opts Options) (*Manager, error) {
	m := NewManager(DriverSHA1)
	for _, name := range []DriverName{DriverSHA1, DriverSHA256, DriverBlake2b, DriverSHA3} {
		d, err := NewDigestDeriver(name, opts)
		if err != nil {
			return nil, fmt.Errorf("breach: failed to create default %s deriver: %w", name, err)
		}
		_ = m.RegisterDriver(name, d)
	}
	return m, nil
}

// RegisterDriver adds or replaces a named deriver.
func (m *Manager) RegisterDriver(name DriverName, d Deriver) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if d == nil {
		return ErrNilDeriver
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = d
	return nil
}

// Driver returns the [Deriver] registered under name, or
// [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Deriver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return d, nil
}

// SetDefaultDriver changes the driver used by [Manager.Derive].  The named
// driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the current default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Drivers returns the registered driver names in sorted order.
func (m *Manager) Drivers() []DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]DriverName, 0, len(m.drivers))
	for n := range m.drivers {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Derive derives a key for password using the default driver.
func (m *Manager) Derive(password string) (Key, error) {
	d, err := m.resolveDefault()
	if err != nil {
		return Key{}, err
	}
	return d.Derive(password), nil
}

func (m *Manager) resolveDefault() (Deriver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return d, nil
}

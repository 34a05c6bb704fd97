package vantage

// ComponentConfig is a configuration object from which a component can be
// constructed by type tag. Passing a config to a construct-and-own
// attachment entry point (e.g. Mesh.CreateMaterial) builds the component via
// the factory registry and binds its lifecycle to the attaching slot.
type ComponentConfig interface {
	// ComponentType returns the type tag the factory registry resolves.
	ComponentType() string
}

// Factory constructs a component of one type from its config.
type Factory func(scene *Scene, owner Entity, cfg ComponentConfig) Entity

// factories maps type tags to constructors. Populated at process start by
// the init functions of the concrete component files; RegisterType lets
// applications add their own component types.
var factories = map[string]Factory{}

// RegisterType registers a factory for a component type tag. Registering a
// tag twice replaces the earlier factory; built-in tags can be overridden.
// Not safe for concurrent use; call during program initialization.
func RegisterType(typ string, f Factory) {
	factories[typ] = f
}

// newByConfig constructs a component from cfg via the factory registry.
// Returns nil when no factory is registered for the config's type tag.
func newByConfig(scene *Scene, cfg ComponentConfig) Entity {
	f := factories[cfg.ComponentType()]
	if f == nil {
		return nil
	}
	return f(scene, nil, cfg)
}

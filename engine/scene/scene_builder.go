package scene

import "go.uber.org/zap"

// SceneBuilderOption is a functional option for configuring a scene.
type SceneBuilderOption func(*scene)

// WithProps seeds the scene with props.
//
// Parameters:
//   - props: the initial props
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithProps(props ...Prop) SceneBuilderOption {
	return func(s *scene) {
		s.props = append(s.props, props...)
	}
}

// WithLogger sets the logger used when the scene is built.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

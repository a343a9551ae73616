package config

// Load builds the configuration from the built-in defaults and the launch
// arguments. Only the first argument is used, it replaces the prompt.
func Load(args []string) (*Configuration, error) {
	out := defaultConfig()
	if len(args) > 0 {
		out.Prompt = args[0]
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

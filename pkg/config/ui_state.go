package config

// UIState captures UI-related state.
type UIState struct {
	Welcome       WelcomeState `json:"welcome"`
	DefaultTheory string       `json:"default_theory"`
}

// WelcomeState stores welcome overlay visibility.
type WelcomeState struct {
	Shown bool `json:"shown"`
}

// GetWelcomeShownState returns whether the welcome overlay has been shown
func GetWelcomeShownState() (bool, error) {
	state, err := LoadState()
	if err != nil {
		return false, err
	}
	return state.UI.Welcome.Shown, nil
}

// SetWelcomeShown sets the welcome shown state
func SetWelcomeShown(shown bool) error {
	state, err := LoadState()
	if err != nil {
		return err
	}

	state.UI.Welcome.Shown = shown
	return SaveState(state)
}

// GetDefaultTheory returns the theory name used when the app starts.
// An empty string means the application default.
func GetDefaultTheory() (string, error) {
	state, err := LoadState()
	if err != nil {
		return "", err
	}
	return state.UI.DefaultTheory, nil
}

// SetDefaultTheory persists the theory to use on the next start
func SetDefaultTheory(name string) error {
	state, err := LoadState()
	if err != nil {
		return err
	}

	state.UI.DefaultTheory = name
	return SaveState(state)
}

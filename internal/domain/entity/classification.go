package entity

type SubIntent string

const (
	SubIntentExtract SubIntent = "extract"
	SubIntentGeneral SubIntent = "general"
)

// Classification is the outcome of inspecting one user message.
// URL and Selector are empty when not detected; absence is a valid
// outcome, not an error.
type Classification struct {
	IsBrowserTask bool
	SubIntent     SubIntent
	URL           string
	Selector      string
}

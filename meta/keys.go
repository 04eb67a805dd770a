package meta

// Names of the dataset fields and model output tensors. Saved models and
// datasets refer to these exact strings.
const (
	MainData      = "main_data"
	ExpectedScore = "expected_score"
	WinTrickProb  = "win_trick_prob"
	MoonProb      = "moon_prob"
)
